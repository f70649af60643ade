package middlewares

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Outcome is the verdict of one access check.
type Outcome int

const (
	Authorized Outcome = iota
	Unauthenticated
	Forbidden
	Unavailable // the check itself failed (store down); not the caller's fault
)

// Decision is what a Check returns. Message is sent to the client on rejection.
type Decision struct {
	Outcome Outcome
	Message string
	Err     error // only for Unavailable
}

func allow() Decision { return Decision{Outcome: Authorized} }

// Check is an access predicate. It may attach data to the context for later
// checks and handlers (the auth check stores the resolved user).
type Check func(c *gin.Context) Decision

// Guard runs checks in order before the handler. The first rejection aborts
// the request and nothing after it (check or handler) runs.
func Guard(checks ...Check) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, check := range checks {
			d := check(c)
			switch d.Outcome {
			case Authorized:
				continue
			case Unauthenticated:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": d.Message})
			case Forbidden:
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": d.Message})
			default:
				detail := ""
				if d.Err != nil {
					detail = d.Err.Error()
				}
				log.Printf("[guard] %s %s: %s", c.Request.Method, c.Request.URL.Path, detail)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": detail})
			}
			return
		}
		c.Next()
	}
}
