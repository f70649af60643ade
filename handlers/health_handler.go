package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Modassir22/dream-home-hub/global"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const pingTimeout = 2 * time.Second

// HealthHandler reports store connectivity. It always answers 200 so a
// monitor can read which dependency is down.
type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client // nil when redis is not configured
	now func() time.Time
}

func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, rdb: rdb, now: time.Now}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	database := "disconnected"
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil && sqlDB.PingContext(ctx) == nil {
			database = "connected"
		}
	}

	cache := "disabled"
	if h.rdb != nil {
		cache = "connected"
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			cache = "disconnected"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   global.AppName + " Backend is running",
		"version":   global.AppVersion,
		"database":  database,
		"cache":     cache,
		"timestamp": h.now().UTC().Format(time.RFC3339),
	})
}
