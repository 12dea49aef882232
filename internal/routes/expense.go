package routes

import (
	"fmt"
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

func toPurchase(body *contracts.ExpenseCreateRequest) (creditcard.Purchase, error) {
	categoryID, err := parseID("category_id", body.CategoryID)
	if err != nil {
		return nil, err
	}
	details := creditcard.PurchaseDetails{
		Name:       body.Name,
		Amount:     body.Amount,
		CategoryId: categoryID,
		Note:       body.Note,
	}

	cardID, err := parseOptionalID("credit_card_id", body.CreditCardID)
	if err != nil {
		return nil, err
	}

	if body.IsInstallment {
		if cardID == nil {
			return nil, appErrors.NewValidationError("credit_card_id", "ID do cartão é obrigatório para compras parceladas")
		}
		first, err := parseDate("first_installment_date", body.FirstInstallmentDate)
		if err != nil {
			return nil, err
		}
		return creditcard.InstallmentPurchase{
			PurchaseDetails:      details,
			CreditCardId:         *cardID,
			Count:                body.InstallmentCount,
			FirstInstallmentDate: first,
		}, nil
	}

	invoiceID, err := parseOptionalID("invoice_id", body.InvoiceID)
	if err != nil {
		return nil, err
	}
	purchaseDate, err := parseDate("purchase_date", body.PurchaseDate)
	if err != nil {
		return nil, err
	}
	return creditcard.SinglePurchase{
		PurchaseDetails: details,
		PurchaseDate:    purchaseDate,
		CreditCardId:    cardID,
		InvoiceId:       invoiceID,
	}, nil
}

// CreateExpense godoc
// @Summary Lança despesa no cartão, à vista ou parcelada
// @Tags expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.ExpenseCreateRequest true "Despesa"
// @Success 201 {object} contracts.ExpenseResponse
// @Success 201 {object} contracts.InstallmentPlanResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /credit-cards/expenses [post]
func (h *Handler) CreateExpense(c *gin.Context) {
	var body contracts.ExpenseCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	purchase, err := toPurchase(&body)
	if err != nil {
		h.respondError(c, err)
		return
	}

	result, err := h.CreditCardService.CreateExpense(c.Request.Context(), actor, purchase)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if plan := result.Plan; plan != nil {
		c.JSON(http.StatusCreated, contracts.InstallmentPlanResponse{
			Message:          fmt.Sprintf("Compra parcelada em %d vezes registrada com sucesso", plan.Count),
			InstallmentCount: plan.Count,
			TotalAmount:      plan.Total,
			BaseAmount:       plan.Base,
			Remainder:        plan.Remainder,
			Expenses:         plan.Expenses,
		})
		return
	}

	c.JSON(http.StatusCreated, contracts.ExpenseResponse{Message: "Despesa criada com sucesso", Expense: result.Expense})
}

// UpdateExpense godoc
// @Summary Atualiza despesa
// @Tags expenses
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID da despesa"
// @Param body body contracts.ExpenseUpdateRequest true "Alterações"
// @Success 200 {object} contracts.ExpenseResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/expenses/{id} [put]
func (h *Handler) UpdateExpense(c *gin.Context) {
	expenseID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.ExpenseUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &creditcard.UpdateExpenseRequest{
		Name:   body.Name,
		Amount: body.Amount,
		Note:   body.Note,
	}
	if body.CategoryID != nil {
		id, err := parseID("category_id", *body.CategoryID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		req.CategoryId = &id
	}
	if req.PurchaseDate, err = parseOptionalDate("purchase_date", body.PurchaseDate); err != nil {
		h.respondError(c, err)
		return
	}

	expense, err := h.CreditCardService.UpdateExpense(c.Request.Context(), actor, expenseID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ExpenseResponse{Message: "Despesa atualizada com sucesso", Expense: expense})
}

// DeleteExpense godoc
// @Summary Remove despesa
// @Tags expenses
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID da despesa"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /credit-cards/expenses/{id} [delete]
func (h *Handler) DeleteExpense(c *gin.Context) {
	expenseID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.CreditCardService.DeleteExpense(c.Request.Context(), actor, expenseID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Despesa removida com sucesso"})
}
