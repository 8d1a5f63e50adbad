package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"cafe-admin-api/handlers"
	"cafe-admin-api/middleware"
	"cafe-admin-api/routes"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard HTTP API",
		Long: `Run the dashboard HTTP API.

Examples:
  cafe-admin serve                      # listen on $PORT (default 8080)
  DATA_MODE=local cafe-admin serve      # keep collections in the local store
  cafe-admin serve --port 9000 -v       # debug logging on another port`,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetString("port")
			return runServe(cmd, port)
		},
	}
	cmd.Flags().String("port", "", "Listen port (overrides PORT)")
	return cmd
}

func runServe(cmd *cobra.Command, port string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := buildApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	defer a.log.Close()
	if port == "" {
		port = a.cfg.Port
	}

	// An unreachable API at startup is not fatal; the dashboard can be
	// refreshed once it is back.
	if err := a.store.Refresh(ctx); err != nil {
		a.log.Warn("STARTUP", fmt.Sprintf("initial refresh failed: %v", err))
	}

	gin.SetMode(a.cfg.GinMode)
	r := gin.New()
	r.Use(
		middleware.Recovery(a.log),
		middleware.EnhancedLogger(a.log),
		middleware.CORS(),
		middleware.SecurityHeaders(),
		middleware.RateLimit(a.cfg.RateLimitRPS, a.log),
	)
	routes.SetupRoutes(r, handlers.New(a.store, a.auth, a.log), a.auth.Tokens())

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("SERVER", fmt.Sprintf("Server running on http://localhost:%s (%s mode, %s backend)", port, a.store.Mode(), a.cfg.PersistBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("SERVER", "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
