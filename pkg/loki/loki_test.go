package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type mockLogger struct {
	mu     sync.Mutex
	errors []string
}

func (m *mockLogger) Error(msg string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &mockLogger{})
	assert.Error(t, err)

	cfg.Url = "http://loki.local/loki/api/v1/push"
	pusher, err := New(context.Background(), cfg, &mockLogger{})
	assert.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, cfg.Url, pusher.config.Url)
	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}

func Test_Pusher_WhenStopped_ShouldFlushStreamsPerLevel(t *testing.T) {

	var (
		mu       sync.Mutex
		received pushRequest
		user     string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reader, err := gzip.NewReader(r.Body)
		assert.NoError(t, err)
		mu.Lock()
		defer mu.Unlock()
		assert.NoError(t, json.NewDecoder(reader).Decode(&received))
		user, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := &mockLogger{}
	pusher, err := New(context.Background(), Config{
		Url:          server.URL,
		BatchMaxWait: time.Hour,
		Labels:       map[string]string{"app": "recruithub-bot"},
		Username:     "grafana",
		Password:     "secret",
	}, logger)
	assert.NoError(t, err)

	assert.NoError(t, pusher.Push(LogEntry{Level: "error", Message: "first", ErrorType: "db"}))
	assert.NoError(t, pusher.Push(LogEntry{Level: "info", Message: "second"}))
	assert.NoError(t, pusher.Push(LogEntry{Level: "error", Message: "third"}))
	pusher.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Empty(t, logger.errors)
	assert.Equal(t, "grafana", user)
	assert.Len(t, received.Streams, 2)
	assert.Equal(t, "error", received.Streams[0].Stream["level"])
	assert.Equal(t, "recruithub-bot", received.Streams[0].Stream["app"])
	assert.Len(t, received.Streams[0].Values, 2)
	assert.Len(t, received.Streams[1].Values, 1)
}

func Test_Pusher_Push_WhenStopped_ShouldFail(t *testing.T) {

	pusher, err := New(context.Background(), Config{Url: "http://loki.local/push"}, &mockLogger{})
	assert.NoError(t, err)
	pusher.Stop()

	assert.Error(t, pusher.Push(LogEntry{Level: "info", Message: "late"}))
}
