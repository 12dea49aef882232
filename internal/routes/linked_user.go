package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/linkeduser"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/shared"

	"github.com/gin-gonic/gin"
)

// ListLinkedUsers godoc
// @Summary Lista usuários vinculados ativos
// @Tags linked-users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.LinkedUserListResponse
// @Failure 403 {object} contracts.ErrorResponse
// @Router /linked-users [get]
func (h *Handler) ListLinkedUsers(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	links, err := h.LinkedUserService.ListLinkedUsers(c.Request.Context(), actor)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LinkedUserListResponse{LinkedUsers: links, Total: len(links)})
}

// CreateLinkedUser godoc
// @Summary Cria usuário vinculado com acesso delegado
// @Tags linked-users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body contracts.LinkedUserCreateRequest true "Usuário vinculado"
// @Success 201 {object} contracts.LinkedUserResponse
// @Failure 400 {object} contracts.ErrorResponse
// @Router /linked-users [post]
func (h *Handler) CreateLinkedUser(c *gin.Context) {
	var body contracts.LinkedUserCreateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	link, err := h.LinkedUserService.CreateLinkedUser(c.Request.Context(), actor, &linkeduser.CreateLinkedUserRequest{
		Name:           body.Name,
		Email:          body.Email,
		Password:       body.Password,
		Phone:          body.Phone,
		PermissionType: shared.AccessLevel(body.PermissionType),
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.LinkedUserResponse{Message: "Usuário vinculado criado com sucesso", LinkedUser: link})
}

// UpdateLinkedUser godoc
// @Summary Atualiza usuário vinculado
// @Tags linked-users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID do vínculo"
// @Param body body contracts.LinkedUserUpdateRequest true "Alterações"
// @Success 200 {object} contracts.LinkedUserResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /linked-users/{id} [put]
func (h *Handler) UpdateLinkedUser(c *gin.Context) {
	linkID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	var body contracts.LinkedUserUpdateRequest
	if !h.bindJSON(c, &body) {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	req := &linkeduser.UpdateLinkedUserRequest{
		IsActive: body.IsActive,
		Name:     body.Name,
		Email:    body.Email,
		Phone:    body.Phone,
	}
	if body.PermissionType != nil {
		level := shared.AccessLevel(*body.PermissionType)
		req.PermissionType = &level
	}

	link, err := h.LinkedUserService.UpdateLinkedUser(c.Request.Context(), actor, linkID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LinkedUserResponse{Message: "Usuário vinculado atualizado com sucesso", LinkedUser: link})
}

// DeleteLinkedUser godoc
// @Summary Desativa usuário vinculado
// @Tags linked-users
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID do vínculo"
// @Success 200 {object} contracts.MessageResponse
// @Failure 404 {object} contracts.ErrorResponse
// @Router /linked-users/{id} [delete]
func (h *Handler) DeleteLinkedUser(c *gin.Context) {
	linkID, ok := h.parseParamID(c, "id")
	if !ok {
		return
	}

	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if err := h.LinkedUserService.DeactivateLinkedUser(c.Request.Context(), actor, linkID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Usuário vinculado removido com sucesso"})
}
