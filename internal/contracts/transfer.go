package contracts

import (
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"

	"github.com/shopspring/decimal"
)

type TransferCreateRequest struct {
	FromAccountID string          `json:"from_account_id" binding:"required"`
	ToAccountID   string          `json:"to_account_id" binding:"required,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount"`
	TransferDate  string          `json:"transfer_date" binding:"omitempty,datetime=2006-01-02"`
	Description   string          `json:"description" binding:"omitempty,max=255"`
}

type TransferUpdateRequest struct {
	FromAccountID *string          `json:"from_account_id"`
	ToAccountID   *string          `json:"to_account_id"`
	Amount        *decimal.Decimal `json:"amount"`
	TransferDate  *string          `json:"transfer_date" binding:"omitempty,datetime=2006-01-02"`
	Description   *string          `json:"description" binding:"omitempty,max=255"`
}

type TransferResponse struct {
	Message  string             `json:"message,omitempty"`
	Transfer *transfer.Transfer `json:"transfer"`
}

type TransferListResponse struct {
	Transfers []*transfer.Transfer `json:"transfers"`
	Total     int                  `json:"total"`
}
