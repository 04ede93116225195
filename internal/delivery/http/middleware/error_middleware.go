package middleware

import (
	"errors"
	"net/http"

	"go-email-backend/internal/delivery/http/response"
	"go-email-backend/pkg/apperror"
	"go-email-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors appended to the gin context as the uniform
// failure envelope. Known AppErrors keep their status code and message;
// anything else becomes a 500 with a processing-error description.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil && logger.Log != nil {
					logger.Log.Error("Request failed", "status", appErr.Code, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				if logger.Log != nil {
					logger.Log.Error("Unhandled request error", "error", err)
				}
				response.Error(c, http.StatusInternalServerError, "Error processing request: "+err.Error(), nil)
			}
		}
	}
}
