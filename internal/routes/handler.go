package routes

import (
	"strings"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/account"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/creditcard"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/transfer"
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"
	"github.com/dmogiovanni/teugestor-backend/internal/logger"
	"github.com/dmogiovanni/teugestor-backend/internal/middleware"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	AccountService    *account.Service
	CategoryService   *category.Service
	CreditCardService *creditcard.Service
	TransferService   *transfer.Service
	LinkedUserService *linkeduser.Service
	AdminService      *admin.Service
}

func (h *Handler) GetActor(c *gin.Context) (shared.Actor, error) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return shared.Actor{}, appErrors.ErrNotAuthenticated
	}
	return actor, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "20")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 20
	}

	return pkg.NormalizePagination(&pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	})
}

func (h *Handler) bindJSON(c *gin.Context, body interface{}) bool {
	if err := c.ShouldBindJSON(body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return false
	}
	return true
}

func (h *Handler) parseParamID(c *gin.Context, name string) (ulid.ULID, bool) {
	id, err := pkg.ParseULID(c.Param(name))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError(name, "Formato inválido"))
		return ulid.ULID{}, false
	}
	return id, true
}

func parseID(field, raw string) (ulid.ULID, error) {
	id, err := pkg.ParseULID(strings.TrimSpace(raw))
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError(field, "Formato inválido")
	}
	return id, nil
}

func parseOptionalID(field, raw string) (*ulid.ULID, error) {
	id, err := pkg.ParseOptionalULID(raw)
	if err != nil {
		return nil, appErrors.NewValidationError(field, "Formato inválido")
	}
	return id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(contracts.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, appErrors.NewValidationError(field, "Data inválida, use AAAA-MM-DD")
	}
	return d, nil
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := parseDate(field, *raw)
	if err != nil || d.IsZero() {
		return nil, err
	}
	return &d, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error()
	if appErr.StatusCode < 500 {
		event = logger.Warn()
	}
	event = event.Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
