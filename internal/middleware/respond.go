package middleware

import (
	appErrors "github.com/dmogiovanni/teugestor-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.AbortWithStatusJSON(appErr.StatusCode, payload)
}
