package main

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsapi/config"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func sqliteConfig(port string) *config.Config {
	return &config.Config{
		Environment:    "test",
		Port:           port,
		DBDriver:       config.DriverSQLite,
		DBUrl:          ":memory:",
		CacheTTL:       time.Minute,
		RequestTimeout: time.Second,
	}
}

func TestRun_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig("0")
	cfg.DBDriver = "mongo"

	err := run(context.Background(), cfg, testLogger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported driver "mongo"`)
}

func TestRun_RedisUnreachable(t *testing.T) {
	cfg := sqliteConfig("0")
	cfg.RedisURL = "127.0.0.1:1"

	err := run(context.Background(), cfg, testLogger)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")
}

func TestRun_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)

	done := make(chan error, 1)
	go func() { done <- run(context.Background(), sqliteConfig(port), testLogger) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serve")
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return while its port was taken")
	}
}
