package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/admin"
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/gin-gonic/gin"
)

// ListUsers godoc
// @Summary Lista usuários provisionados
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param page query int false "Página"
// @Param limit query int false "Itens por página"
// @Success 200 {object} pkg.PaginatedResponse[admin.Profile]
// @Failure 403 {object} contracts.ErrorResponse
// @Router /admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)
	profiles, total, err := h.AdminService.ListUsers(c.Request.Context(), actor, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(profiles, pagination.Page, pagination.Limit, total))
}

// CreateUser godoc
// @Summary Provisiona usuário com período de acesso
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.AdminCreateUserRequest true "Usuário"
// @Success 201 {object} contracts.AdminUserResponse
// @Failure 403 {object} contracts.ErrorResponse
// @Router /admin/create-user [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var body contracts.AdminCreateUserRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	profile, err := h.AdminService.CreateUser(c.Request.Context(), actor, &admin.CreateUserRequest{
		Name:             body.Name,
		Email:            body.Email,
		Phone:            body.Whatsapp,
		Password:         body.Password,
		AccessPeriodDays: body.AccessPeriodDays,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AdminUserResponse{Message: "Usuário criado com sucesso", User: profile})
}
