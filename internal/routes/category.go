package routes

import (
	"net/http"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"
	"github.com/dmogiovanni/teugestor-backend/internal/domain/category"

	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @Summary Lista categorias
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param type query string false "expense ou income"
// @Success 200 {object} contracts.CategoryListResponse
// @Router /categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	actor, err := h.GetActor(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var kind *category.Kind
	if raw := c.Query("type"); raw != "" {
		k := category.Kind(raw)
		kind = &k
	}

	categories, err := h.CategoryService.ListCategories(c.Request.Context(), actor, kind)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategoryListResponse{Categories: categories, Total: len(categories)})
}
