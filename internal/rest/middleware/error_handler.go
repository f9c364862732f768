package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/netserve/catalog/internal/errors"
	"github.com/netserve/catalog/internal/logger"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Success bool        `json:"success"`
	Error   errorDetail `json:"error"`
}

type errorDetail struct {
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorHandlerMiddleware converts errors collected via c.Error into a JSON
// response. The hint, not the internal message, is what clients see.
func ErrorHandlerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)

		detail := errorDetail{Message: err.Error()}
		if ie, ok := ierr.AsInternalError(err); ok {
			if hint := ie.Hint(); hint != "" {
				detail.Message = hint
			}
			detail.Details = ie.ReportableDetails()
		}

		if status >= 500 {
			log.WithContext(c.Request.Context()).Errorw("request failed",
				"status", status,
				"error", err,
			)
			// Internal messages stay internal.
			detail.Message = "An unexpected error occurred"
			detail.Details = nil
		}

		c.JSON(status, errorResponse{Success: false, Error: detail})
	}
}
