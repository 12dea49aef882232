package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"

	"github.com/gin-gonic/gin"
)

// ListBankAccounts godoc
// @Summary Lista contas bancárias ativas
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.BankAccountListResponse
// @Failure 401 {object} contracts.ErrorResponse
// @Router /bank-accounts [get]
func (h *Handler) ListBankAccounts(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	accounts, err := h.AccountService.ListAccounts(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BankAccountListResponse{Accounts: accounts, Total: len(accounts)})
}

// CreateBankAccount godoc
// @Summary Cria conta bancária
// @Tags bank-accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.BankAccountCreateRequest true "Conta"
// @Success 201 {object} contracts.BankAccountResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /bank-accounts [post]
func (h *Handler) CreateBankAccount(c *gin.Context) {
	var body contracts.BankAccountCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	acc, err := h.AccountService.CreateAccount(c.Request.Context(), actor, &account.CreateAccountRequest{
		Name:      body.Name,
		IsDefault: body.IsDefault,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BankAccountResponse{Message: "Conta bancária criada com sucesso", Account: acc})
}

// UpdateBankAccount godoc
// @Summary Atualiza conta bancária
// @Tags bank-accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da conta"
// @Param body body contracts.BankAccountUpdateRequest true "Alterações"
// @Success 200 {object} contracts.BankAccountResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /bank-accounts/{id} [put]
func (h *Handler) UpdateBankAccount(c *gin.Context) {
	accountID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.BankAccountUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	acc, err := h.AccountService.UpdateAccount(c.Request.Context(), actor, accountID, &account.UpdateAccountRequest{
		Name:      body.Name,
		IsDefault: body.IsDefault,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BankAccountResponse{Message: "Conta bancária atualizada com sucesso", Account: acc})
}

// DeleteBankAccount godoc
// @Summary Desativa conta bancária
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da conta"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /bank-accounts/{id} [delete]
func (h *Handler) DeleteBankAccount(c *gin.Context) {
	accountID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.AccountService.DeleteAccount(c.Request.Context(), actor, accountID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Conta bancária removida com sucesso"})
}

// GetDefaultBankAccount godoc
// @Summary Conta bancária padrão
// @Tags bank-accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.BankAccountResponse
// @Router /bank-accounts/default [get]
func (h *Handler) GetDefaultBankAccount(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	acc, err := h.AccountService.GetDefaultAccount(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.BankAccountResponse{Account: acc})
}
