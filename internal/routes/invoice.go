package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) parseInvoiceFilter(c *gin.Context) (creditcard.InvoiceFilter, error) {
	var filter creditcard.InvoiceFilter

	cardID, err := parseOptionalID("credit_card_id", c.Query("credit_card_id"))
	if err != nil {
		return filter, err
	}
	filter.CreditCardId = cardID

	if raw := c.Query("status"); raw != "" {
		status, ok := creditcard.ParseInvoiceStatus(raw)
		if !ok {
			return filter, appErrors.NewValidationError("status", "Status deve ser open, paid ou overdue")
		}
		filter.Status = &status
	}

	for field, target := range map[string]**int{"month": &filter.Month, "year": &filter.Year} {
		raw := c.Query(field)
		if raw == "" {
			continue
		}
		v, err := pkg.ParseInt(raw)
		if err != nil {
			return filter, appErrors.NewValidationError(field, "Deve ser um número")
		}
		*target = &v
	}

	return filter, nil
}

// ListInvoices godoc
// @Summary Lista faturas
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param credit_card_id query string false "Filtra por cartão"
// @Param status query string false "open, paid ou overdue"
// @Param month query int false "Mês"
// @Param year query int false "Ano"
// @Success 200 {object} contracts.InvoiceListResponse
// @Router /credit-cards/invoices [get]
func (h *Handler) ListInvoices(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filter, err := h.parseInvoiceFilter(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	invoices, err := h.CreditCardService.ListInvoices(c.Request.Context(), actor, filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceListResponse{Invoices: invoices, Total: len(invoices)})
}

// CreateInvoice godoc
// @Summary Cria fatura manualmente
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.InvoiceCreateRequest true "Fatura"
// @Success 201 {object} contracts.InvoiceResponse
// @Failure 409 {object} contracts.ErrorResponse
// @Router /credit-cards/invoices [post]
func (h *Handler) CreateInvoice(c *gin.Context) {
	var body contracts.InvoiceCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	cardID, err := parseID("credit_card_id", body.CreditCardID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	dueDate, err := parseOptionalDate("due_date", &body.DueDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	invoice, err := h.CreditCardService.CreateInvoice(c.Request.Context(), actor, &creditcard.CreateInvoiceRequest{
		CreditCardId: cardID,
		Month:        body.Month,
		Year:         body.Year,
		DueDate:      dueDate,
		Note:         body.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.InvoiceResponse{Message: "Fatura criada com sucesso", Invoice: invoice})
}

// GetInvoice godoc
// @Summary Detalha fatura com despesas
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da fatura"
// @Success 200 {object} contracts.InvoiceResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/invoices/{id} [get]
func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	invoice, err := h.CreditCardService.GetInvoice(c.Request.Context(), actor, invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Invoice: invoice})
}

// DeleteInvoice godoc
// @Summary Remove fatura e suas despesas
// @Tags invoices
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da fatura"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/invoices/{id} [delete]
func (h *Handler) DeleteInvoice(c *gin.Context) {
	invoiceID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CreditCardService.DeleteInvoice(c.Request.Context(), actor, invoiceID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Fatura removida com sucesso"})
}

// UpdateInvoiceStatus godoc
// @Summary Altera status da fatura
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da fatura"
// @Param body body contracts.InvoiceStatusRequest true "Status"
// @Success 200 {object} contracts.InvoiceResponse
// @Failure 409 {object} contracts.ErrorResponse
// @Router /credit-cards/invoices/{id}/status [put]
func (h *Handler) UpdateInvoiceStatus(c *gin.Context) {
	invoiceID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.InvoiceStatusRequest
	if !h.bindJSON(c, &body) {
		return
	}

	status, valid := creditcard.ParseInvoiceStatus(body.Status)
	if !valid {
		h.respondError(c, appErrors.NewValidationError("status", "Status deve ser open, paid ou overdue"))
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	invoice, err := h.CreditCardService.SetInvoiceStatus(c.Request.Context(), actor, invoiceID, status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Message: "Status da fatura atualizado com sucesso", Invoice: invoice})
}

// PayInvoice godoc
// @Summary Paga fatura a partir de uma conta bancária
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.InvoicePaymentRequest true "Pagamento"
// @Success 200 {object} contracts.InvoicePaymentResponse
// @Failure 409 {object} contracts.ErrorResponse
// @Router /credit-cards/invoices/pay [post]
func (h *Handler) PayInvoice(c *gin.Context) {
	var body contracts.InvoicePaymentRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &creditcard.PaymentRequest{}
	if req.InvoiceId, err = parseID("invoice_id", body.InvoiceID); err != nil {
		h.respondError(c, err)
		return
	}
	if req.BankAccountId, err = parseID("bank_account_id", body.BankAccountID); err != nil {
		h.respondError(c, err)
		return
	}
	if req.CategoryId, err = parseID("category_id", body.CategoryID); err != nil {
		h.respondError(c, err)
		return
	}
	if req.PaymentDate, err = parseDate("payment_date", body.PaymentDate); err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.CreditCardService.PayInvoice(c.Request.Context(), actor, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoicePaymentResponse{
		Message:     "Fatura paga com sucesso",
		Transaction: result.Transaction,
		Invoice:     result.Invoice,
	})
}
