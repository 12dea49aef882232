package routes

import (
	"net/http"
	"time"

	"github.com/dmogiovanni/teugestor-backend/internal/contracts"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Verifica se a API está no ar
// @Tags health
// @Produce json
// @Success 200 {object} contracts.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.HealthResponse{
		Status: "OK",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
