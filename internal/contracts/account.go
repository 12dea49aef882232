package contracts

import "github.com/dmogiovanni/teugestor-backend/internal/domain/account"

type BankAccountCreateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	IsDefault bool   `json:"is_default"`
}

type BankAccountUpdateRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	IsDefault *bool   `json:"is_default"`
}

type BankAccountResponse struct {
	Message string               `json:"message,omitempty"`
	Account *account.BankAccount `json:"account"`
}

type BankAccountListResponse struct {
	Accounts []*account.BankAccount `json:"accounts"`
	Total    int                    `json:"total"`
}
