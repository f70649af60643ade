// request logging: one stdout line per request, plus a redis audit entry.

package middlewares

import (
	"fmt"
	"log"
	"time"

	"github.com/Modassir22/dream-home-hub/global"
	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/gin-gonic/gin"
)

// RequestLogger prints method, path, status and duration for each request.
// rlog may be nil.
func RequestLogger(rlog *redislog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep it, handlers may rewrite the URL
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		log.Printf("%s %s %d %s", c.Request.Method, path, status, latency)

		meta := map[string]string{
			"method":  c.Request.Method,
			"path":    path,
			"status":  fmt.Sprint(status),
			"latency": latency.String(),
		}
		if uid, ok := c.Get(global.CtxUserIDKey); ok {
			meta["user_id"] = fmt.Sprint(uid)
		}
		switch {
		case status >= 500:
			rlog.Error("http request", meta)
		case status >= 400:
			rlog.Warn("http request", meta)
		default:
			rlog.Info("http request", meta)
		}
	}
}
