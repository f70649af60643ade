package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modassir22/dream-home-hub/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogger_DoesNotInterfere(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(nil))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "hi") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi", w.Body.String())
}

func TestRequestLogger_RedisFailureIgnored(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// no expectations set: every redis call errors and must be swallowed
	rlog, _, _ := mocks.NewRedisLoggerWithMock()

	r := gin.New()
	r.Use(RequestLogger(rlog))
	r.GET("/missing", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"message": "nope"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"nope"}`, w.Body.String())
}
