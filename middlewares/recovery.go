// catches panics and returns 500 without crashing the server.

package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// Recovery responds 500 with the panic value. showStack adds the stack trace
// to the body and must be false in production.
func Recovery(showStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				log.Printf("[panic] %v\n%s", r, stack)
				body := gin.H{"message": "Server error", "error": fmt.Sprint(r)}
				if showStack {
					body["stack"] = stack
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
