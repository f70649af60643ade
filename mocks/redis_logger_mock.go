package mocks

import (
	"time"

	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis client.
// This lets us check LPUSH/LTRIM/EXPIRE calls when Info/Warn/Error are used.
func NewRedisLoggerWithMock() (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, "logs:app", 100, 24*time.Hour)
	return logger, rc, mock
}

// NoopLogger drops every entry.
func NoopLogger() *redislog.Logger {
	return redislog.New(nil, "", 0, 0)
}
