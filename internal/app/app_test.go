package app

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/auth"
	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/config"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Addr:            "127.0.0.1:0",
			ReadTimeout:     5 * time.Second,
			IdleTimeout:     time.Minute,
			ShutdownTimeout: 2 * time.Second,
		},
		Logger:     config.LoggerConfig{Engine: "slog", Level: "error"},
		Gin:        config.GinConfig{Mode: "test"},
		Storage:    config.StorageConfig{Driver: config.StorageMemory},
		Redis:      config.RedisConfig{TTL: time.Minute},
		Auth:       config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour},
		Credential: config.CredentialConfig{TTL: 5 * time.Minute, Key: strings.Repeat("ab", 32)},
		Gate:       config.GateConfig{Timeout: time.Second},
		Scheduler:  config.SchedulerConfig{Interval: time.Hour},
		Hub:        config.HubConfig{Buffer: 8, SinkTimeout: time.Second, SinkQueue: 8},
	}
}

func operatorToken(t *testing.T) string {
	t.Helper()
	tokens, err := auth.NewTokens([]byte(testSecret), time.Hour, clock.Real())
	require.NoError(t, err)
	token, err := tokens.Issue(domain.Actor{ID: "op-1", Name: "Gate", Role: domain.RoleOperator})
	require.NoError(t, err)
	return token
}

func TestApp_ShutdownEndsOpenStreams(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)

	closed := make(chan struct{})
	a.closers = append(a.closers, namedCloser{"marker", func() error {
		close(closed)
		return nil
	}})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	served := make(chan error, 1)
	go func() { served <- a.serve(ctx, ln) }()

	req, err := http.NewRequest(http.MethodGet, "http://"+ln.Addr().String()+"/api/subscribe?topic=queue/abc", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+operatorToken(t))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event:ready", strings.TrimSpace(line))

	started := time.Now()
	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return")
	}
	assert.Less(t, time.Since(started), time.Second)

	select {
	case <-closed:
	default:
		t.Fatal("closers did not run")
	}
}

func TestApp_ShutdownRunsEveryCloser(t *testing.T) {
	a, err := New(testConfig())
	require.NoError(t, err)

	var order []string
	a.closers = []namedCloser{
		{"first", func() error { order = append(order, "first"); return nil }},
		{"broken", func() error { order = append(order, "broken"); return errors.New("boom") }},
		{"last", func() error { order = append(order, "last"); return nil }},
	}

	err = a.shutdown()

	require.ErrorContains(t, err, "close broken: boom")
	assert.Equal(t, []string{"last", "broken", "first"}, order)
}
