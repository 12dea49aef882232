package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	ErrNotFound         = NewAppError("NOT_FOUND", "Recurso não encontrado", http.StatusNotFound)
	ErrNotAuthenticated = NewAppError("NOT_AUTHENTICATED", "Usuário não autenticado", http.StatusUnauthorized)
	ErrInvalidToken     = NewAppError("NOT_AUTHENTICATED", "Token inválido ou expirado", http.StatusUnauthorized)
	ErrForbidden        = NewAppError("FORBIDDEN", "Acesso negado", http.StatusForbidden)
	ErrViewOnly         = NewAppError("FORBIDDEN", "Você não tem permissão para alterar estes dados", http.StatusForbidden)
	ErrBadRequest       = NewAppError("BAD_REQUEST", "Requisição inválida", http.StatusBadRequest)
	ErrConflict         = NewAppError("CONFLICT", "Conflito de recursos", http.StatusConflict)
	ErrValidation       = NewAppError("VALIDATION_ERROR", "Erro de validação", http.StatusBadRequest)
	ErrStoreFailure     = NewAppError("STORE_FAILURE", "Erro ao acessar o armazenamento", http.StatusInternalServerError)

	ErrCardNotFound       = NewAppError("CARD_NOT_FOUND", "Cartão de crédito não encontrado", http.StatusNotFound)
	ErrInvoiceNotFound    = NewAppError("INVOICE_NOT_FOUND", "Fatura não encontrada", http.StatusNotFound)
	ErrExpenseNotFound    = NewAppError("EXPENSE_NOT_FOUND", "Despesa não encontrada", http.StatusNotFound)
	ErrAccountNotFound    = NewAppError("ACCOUNT_NOT_FOUND", "Conta bancária não encontrada", http.StatusNotFound)
	ErrCategoryNotFound   = NewAppError("CATEGORY_NOT_FOUND", "Categoria não encontrada", http.StatusNotFound)
	ErrTransferNotFound   = NewAppError("TRANSFER_NOT_FOUND", "Transferência não encontrada", http.StatusNotFound)
	ErrLinkedUserNotFound = NewAppError("LINKED_USER_NOT_FOUND", "Usuário vinculado não encontrado", http.StatusNotFound)

	ErrInvalidInstallmentCount = NewAppError("INVALID_INSTALLMENT_COUNT", "Número de parcelas deve ser entre 2 e 24", http.StatusBadRequest)
	ErrInvalidCategory         = NewAppError("INVALID_CATEGORY", "A categoria deve ser do tipo despesa", http.StatusBadRequest)
	ErrAlreadyPaid             = NewAppError("ALREADY_PAID", "Esta fatura já foi paga", http.StatusConflict)
	ErrDuplicateInvoice        = NewAppError("CONFLICT", "Já existe uma fatura para este mês/ano", http.StatusConflict)
)

type AppError struct {
	Code       string
	Message    string
	StatusCode int
	Details    map[string]interface{}
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Code so sentinel comparisons survive WithError/WithDetails clones.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code && e.StatusCode == t.StatusCode
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	clone := e.clone()
	if details == nil {
		clone.Details = make(map[string]interface{})
		return clone
	}
	clone.Details = make(map[string]interface{}, len(details))
	for k, v := range details {
		clone.Details[k] = v
	}
	return clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := e.clone()
	clone.Err = err
	return clone
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func WrapError(err error, code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) clone() *AppError {
	if e == nil {
		return nil
	}
	clone := *e
	if e.Details != nil {
		clone.Details = make(map[string]interface{}, len(e.Details))
		for k, v := range e.Details {
			clone.Details[k] = v
		}
	} else {
		clone.Details = make(map[string]interface{})
	}
	return &clone
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func FromError(err error) *AppError {
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if errors.Is(err, context.Canceled) {
		return WrapError(err, "REQUEST_CANCELED", "Requisição cancelada pelo cliente", http.StatusRequestTimeout)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return WrapError(err, "STORE_FAILURE", "Tempo de resposta do armazenamento excedido", http.StatusServiceUnavailable)
	}

	return WrapError(err, "UNKNOWN_ERROR", "Erro desconhecido", http.StatusInternalServerError)
}

func NewValidationError(field, message string) *AppError {
	appErr := ErrValidation.WithDetails(map[string]interface{}{"field": field})
	appErr.Message = message
	return appErr
}

// NewStoreError wraps a failed collaborator call; it is never swallowed.
func NewStoreError(err error) *AppError {
	return WrapError(err, "STORE_FAILURE", "Erro ao executar operação no armazenamento", http.StatusInternalServerError)
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s não encontrado", resource),
		StatusCode: http.StatusNotFound,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func NewConflictError(resource string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    fmt.Sprintf("%s já existe", resource),
		StatusCode: http.StatusConflict,
		Details: map[string]interface{}{
			"resource": resource,
		},
	}
}

func ParseValidationErrors(err error) *AppError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return ErrBadRequest.WithError(err)
	}

	fieldErrors := make([]map[string]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, map[string]string{
			"field":   translateFieldName(fieldErr.Field()),
			"message": translateValidationError(fieldErr),
		})
	}

	appErr := ErrValidation.WithDetails(map[string]interface{}{"fields": fieldErrors})
	appErr.Message = "Erro de validação nos campos"
	return appErr
}

func translateFieldName(field string) string {
	fieldMap := map[string]string{
		"amount":               "valor",
		"bankaccountid":        "conta bancária",
		"categoryid":           "categoria",
		"creditcardid":         "cartão",
		"invoiceid":            "fatura",
		"name":                 "nome",
		"email":                "email",
		"password":             "senha",
		"purchasedate":         "data da compra",
		"firstinstallmentdate": "data da primeira parcela",
		"installmentcount":     "número de parcelas",
		"closingday":           "dia de fechamento",
		"dueday":               "dia de vencimento",
		"cardlimit":            "limite",
		"permissiontype":       "tipo de permissão",
		"accessperioddays":     "período de acesso",
	}
	if translated, ok := fieldMap[strings.ToLower(strings.ReplaceAll(field, "_", ""))]; ok {
		return translated
	}
	return field
}

func translateValidationError(fe validator.FieldError) string {
	fieldName := translateFieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", fieldName)
	case "email":
		return "Email inválido"
	case "min":
		return fmt.Sprintf("%s deve ser no mínimo %s", fieldName, fe.Param())
	case "max":
		return fmt.Sprintf("%s deve ser no máximo %s", fieldName, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", fieldName, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", fieldName, fe.Param())
	case "gt":
		return fmt.Sprintf("%s deve ser maior que %s", fieldName, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser um dos valores: %s", fieldName, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s deve ser diferente de %s", fieldName, translateFieldName(fe.Param()))
	case "datetime":
		return fmt.Sprintf("%s deve ser uma data válida", fieldName)
	default:
		return fmt.Sprintf("Validação '%s' falhou para %s", fe.Tag(), fieldName)
	}
}
