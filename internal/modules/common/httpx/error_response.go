package httpx

import (
	"log/slog"
	"net/http"

	"menu-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	serviceErr, ok := service.AsServiceError(err)
	if !ok {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMessage})
		return
	}

	status := serviceErrorStatus(serviceErr.Code)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"error": serviceErr.Message})
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
