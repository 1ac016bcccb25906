package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/accessibleweb/a11y/mcpserver"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcpserver.New(deps.Queries, deps.Version, deps.Logger)

	if c.HTTP == "" {
		return srv.ServeStdio(deps.Ctx, deps.Stdin, deps.Stdout)
	}

	httpServer := &http.Server{
		Addr:         c.HTTP,
		Handler:      srv.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-deps.Ctx.Done()
		deps.Logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	deps.Logger.Info("serving MCP over HTTP", "addr", c.HTTP)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
