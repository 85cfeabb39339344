package middleware

import (
	"fmt"
	"net/http"

	"ppa-valuation/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from handler panics and answers with the same error
// envelope the handlers use, so clients never see a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "unexpected internal error"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		default:
			if v != nil {
				msg = fmt.Sprint(v)
			}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
	})
}
