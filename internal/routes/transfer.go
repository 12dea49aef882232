package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"

	"github.com/gin-gonic/gin"
)

// ListTransfers godoc
// @Summary Lista transferências entre contas
// @Tags transfers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.TransferListResponse
// @Router /transfers [get]
func (h *Handler) ListTransfers(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	transfers, err := h.TransferService.ListTransfers(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransferListResponse{Transfers: transfers, Total: len(transfers)})
}

// CreateTransfer godoc
// @Summary Registra transferência entre contas
// @Tags transfers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.TransferCreateRequest true "Transferência"
// @Success 201 {object} contracts.TransferResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /transfers [post]
func (h *Handler) CreateTransfer(c *gin.Context) {
	var body contracts.TransferCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &transfer.CreateTransferRequest{Amount: body.Amount, Description: body.Description}
	if req.FromAccountId, err = parseID("from_account_id", body.FromAccountID); err != nil {
		h.respondError(c, err)
		return
	}
	if req.ToAccountId, err = parseID("to_account_id", body.ToAccountID); err != nil {
		h.respondError(c, err)
		return
	}
	if req.TransferDate, err = parseDate("transfer_date", body.TransferDate); err != nil {
		h.respondError(c, err)
		return
	}

	t, err := h.TransferService.CreateTransfer(c.Request.Context(), actor, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransferResponse{Message: "Transferência realizada com sucesso", Transfer: t})
}

// UpdateTransfer godoc
// @Summary Atualiza transferência
// @Tags transfers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da transferência"
// @Param body body contracts.TransferUpdateRequest true "Alterações"
// @Success 200 {object} contracts.TransferResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /transfers/{id} [put]
func (h *Handler) UpdateTransfer(c *gin.Context) {
	transferID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.TransferUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &transfer.UpdateTransferRequest{Amount: body.Amount, Description: body.Description}
	if body.FromAccountID != nil {
		id, err := parseID("from_account_id", *body.FromAccountID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.FromAccountId = &id
	}
	if body.ToAccountID != nil {
		id, err := parseID("to_account_id", *body.ToAccountID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.ToAccountId = &id
	}
	if req.TransferDate, err = parseOptionalDate("transfer_date", body.TransferDate); err != nil {
		h.respondError(c, err)
		return
	}

	t, err := h.TransferService.UpdateTransfer(c.Request.Context(), actor, transferID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransferResponse{Message: "Transferência atualizada com sucesso", Transfer: t})
}

// DeleteTransfer godoc
// @Summary Remove transferência
// @Tags transfers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da transferência"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /transfers/{id} [delete]
func (h *Handler) DeleteTransfer(c *gin.Context) {
	transferID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.TransferService.DeleteTransfer(c.Request.Context(), actor, transferID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transferência removida com sucesso"})
}

// GetTransferStats godoc
// @Summary Estatísticas de transferências
// @Tags transfers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} transfer.Stats
// @Router /transfers/stats [get]
func (h *Handler) GetTransferStats(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats, err := h.TransferService.GetStats(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
