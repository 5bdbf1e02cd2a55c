package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// serve runs e on addr until stop fires or the listener fails, then shuts the
// server down. A listener failure such as a port already in use is returned.
func serve(e *echo.Echo, addr string, stop <-chan os.Signal, log zerolog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case runErr = <-serverErr:
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	return runErr
}
