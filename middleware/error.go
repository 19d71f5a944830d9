package middleware

import (
	"github.com/aurumchit/agent_end/utils"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors collected during handling into responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// an error response was already written
		if c.Writer.Status() >= 400 {
			return
		}

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			utils.HandleError(c, err.Err)
			return
		}
	}
}
