package elasticsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/infrastructure/retry"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already has http://", input: "http://elasticsearch:9200", expected: "http://elasticsearch:9200"},
		{name: "already has https://", input: "https://elasticsearch:9200", expected: "https://elasticsearch:9200"},
		{name: "missing protocol", input: "elasticsearch:9200", expected: "http://elasticsearch:9200"},
		{name: "empty string", input: "", expected: "http://localhost:9200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := normalizeURL(tt.input); got != tt.expected {
				t.Errorf("normalizeURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfig_SetDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{URL: "http://custom:9200"}
	cfg.SetDefaults()

	assert.Equal(t, "http://custom:9200", cfg.URL)
	assert.Equal(t, "thechief_content", cfg.Index)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.PingTimeout)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
}

func TestNewClient_RetriesUntilClusterAnswers(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), Config{
		URL:        srv.URL,
		MaxRetries: 1,
		Retry:      retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond},
	}, logger.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}
