package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"

	"github.com/gin-gonic/gin"
)

// ListCreditCards godoc
// @Summary Lista cartões de crédito
// @Tags credit-cards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.CreditCardListResponse
// @Router /credit-cards [get]
func (h *Handler) ListCreditCards(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	cards, err := h.CreditCardService.ListCreditCards(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CreditCardListResponse{CreditCards: cards, Total: len(cards)})
}

// CreateCreditCard godoc
// @Summary Cria cartão de crédito
// @Tags credit-cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.CreditCardCreateRequest true "Cartão"
// @Success 201 {object} contracts.CreditCardResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /credit-cards [post]
func (h *Handler) CreateCreditCard(c *gin.Context) {
	var body contracts.CreditCardCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	card, err := h.CreditCardService.CreateCreditCard(c.Request.Context(), actor, &creditcard.CreateCreditCardRequest{
		Name:       body.Name,
		Brand:      body.Brand,
		CardLimit:  body.CardLimit,
		ClosingDay: body.ClosingDay,
		DueDay:     body.DueDay,
		IsDefault:  body.IsDefault,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CreditCardResponse{Message: "Cartão de crédito criado com sucesso", CreditCard: card})
}

// UpdateCreditCard godoc
// @Summary Atualiza cartão de crédito
// @Tags credit-cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do cartão"
// @Param body body contracts.CreditCardUpdateRequest true "Alterações"
// @Success 200 {object} contracts.CreditCardResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/{id} [put]
func (h *Handler) UpdateCreditCard(c *gin.Context) {
	cardID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.CreditCardUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	card, err := h.CreditCardService.UpdateCreditCard(c.Request.Context(), actor, cardID, &creditcard.UpdateCreditCardRequest{
		Name:       body.Name,
		Brand:      body.Brand,
		CardLimit:  body.CardLimit,
		ClosingDay: body.ClosingDay,
		DueDay:     body.DueDay,
		IsDefault:  body.IsDefault,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CreditCardResponse{Message: "Cartão de crédito atualizado com sucesso", CreditCard: card})
}

// DeleteCreditCard godoc
// @Summary Remove cartão de crédito com suas faturas
// @Tags credit-cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do cartão"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/{id} [delete]
func (h *Handler) DeleteCreditCard(c *gin.Context) {
	cardID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CreditCardService.DeleteCreditCard(c.Request.Context(), actor, cardID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cartão de crédito removido com sucesso"})
}

// GetCreditCardStats godoc
// @Summary Estatísticas dos cartões
// @Tags credit-cards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} creditcard.CardStats
// @Router /credit-cards/stats [get]
func (h *Handler) GetCreditCardStats(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats, err := h.CreditCardService.GetCreditCardStats(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
