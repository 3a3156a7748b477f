package middleware

import (
	"errors"
	"net/http"

	"github.com/azkaafiq/consultant-api/internal/delivery/http/response"
	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/apperror"
	"github.com/azkaafiq/consultant-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		// Internal causes are logged, never sent
		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"request_id", reqID,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", appErr.Err,
			)
		}

		response.Error(c, appErr.Code, appErr.Message, appErr.Details)
	}
}
