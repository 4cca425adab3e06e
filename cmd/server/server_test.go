package main

import (
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeReportsListenerFailure(t *testing.T) {
	app := &application{logger: slog.Default()}

	// Hold a port so the server's own listen fails immediately.
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	server := &http.Server{Addr: l.Addr().String()}
	errCh := app.serve(server)

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the listener failure to be reported")
	}
}

func TestDrainFiltersExpectedClose(t *testing.T) {
	app := &application{logger: slog.Default()}
	server := &http.Server{Addr: "127.0.0.1:0"}

	errCh := app.serve(server)
	require.NoError(t, app.drain(server))

	// The listener exiting with http.ErrServerClosed after a drain is
	// not a failure and must not surface on the error channel.
	select {
	case err := <-errCh:
		t.Fatalf("unexpected server error: %v", err)
	case <-time.After(100 * time.Millisecond):
	}
}
