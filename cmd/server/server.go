package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// shutdownTimeout bounds how long draining in-flight requests may take
// once shutdown begins.
const shutdownTimeout = 10 * time.Second

// serve starts the listener in its own goroutine and returns a channel
// carrying the terminal listener error, if any. http.ErrServerClosed is
// filtered out since it is the expected outcome of a drain.
func (app *application) serve(server *http.Server) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		app.logger.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	return errCh
}

// drain stops accepting new connections and waits up to shutdownTimeout
// for in-flight requests to finish.
func (app *application) drain(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
