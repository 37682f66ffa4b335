package transport

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

// HTTPServerWorker serves the API until its context is canceled.
// It is meant to run under the supervisor.
type HTTPServerWorker struct {
	log     *slog.Logger
	address string
	api     *API
}

func NewHTTPServerWorker(log *slog.Logger, address string, api *API) *HTTPServerWorker {
	return &HTTPServerWorker{log: log, address: address, api: api}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              w.address,
		Handler:           w.api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		w.log.Info("Starting HTTP server", "address", w.address)
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server on %s: %w", w.address, err)
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			w.log.Warn("HTTP server shutdown incomplete", "error", err)
		}
		// Shutdown ignores hijacked connections, the websockets are drained
		// here so that no disconnect outlives the store.
		if err := w.api.Drain(shutdownCtx); err != nil {
			w.log.Warn("Websocket drain incomplete", "error", err)
		}
		w.log.Info("HTTP server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
