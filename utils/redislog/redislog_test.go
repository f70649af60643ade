package redislog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestLogger_PushTrimExpire(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	l := New(rdb, "logs:app", 100, 24*time.Hour)
	fixed := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return fixed }

	want, _ := json.Marshal(Entry{
		Level: "info",
		Msg:   "wishlist add",
		Time:  "2026-10-15T08:00:00Z",
		Meta:  map[string]string{"plot_id": "3"},
	})
	mock.ExpectLPush("logs:app", want).SetVal(1)
	mock.ExpectLTrim("logs:app", 0, 99).SetVal("OK")
	mock.ExpectExpire("logs:app", 24*time.Hour).SetVal(true)

	l.Info("wishlist add", map[string]string{"plot_id": "3"})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_NoRetentionSkipsExpire(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	l := New(rdb, "logs:app", 10, 0)
	l.now = func() time.Time { return time.Unix(0, 0) }

	want, _ := json.Marshal(Entry{Level: "error", Msg: "boom", Time: "1970-01-01T00:00:00Z"})
	mock.ExpectLPush("logs:app", want).SetVal(1)
	mock.ExpectLTrim("logs:app", 0, 9).SetVal("OK")

	l.Error("boom", nil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_NilIsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Warn("x", nil) })
	assert.NotPanics(t, func() { New(nil, "", 0, 0).Info("x", nil) })
}
