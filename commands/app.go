package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cafe-admin-api/auth"
	"cafe-admin-api/config"
	"cafe-admin-api/gateway"
	"cafe-admin-api/logger"
	"cafe-admin-api/persist"
	"cafe-admin-api/store"
)

// app is the wired service shared by every command
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *store.Store
	auth   *auth.Service
	closer io.Closer
}

func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.Logger {
	log := logger.New(os.Stdout, logger.ParseLevel(cfg.LogLevel))
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		log.SetLevel(logger.LevelDebug)
	}
	return log
}

// openBackend returns the KV store, its audit trail (nil for Redis) and
// whatever must be closed on shutdown
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (persist.KV, persist.Audit, io.Closer, error) {
	switch cfg.PersistBackend {
	case "redis":
		r, err := persist.OpenRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		if err != nil {
			return nil, nil, nil, err
		}
		log.LogDatabase("OPEN", cfg.Redis.Addr, "redis backend ready")
		return r, nil, r, nil
	case "memory":
		m := persist.NewMemoryStore()
		return m, m, nil, nil
	default:
		s, err := persist.OpenSQLite(cfg.SQLitePath, log)
		if err != nil {
			return nil, nil, nil, err
		}
		log.LogDatabase("OPEN", cfg.SQLitePath, "sqlite backend ready")
		return s, s, s, nil
	}
}

func buildApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := newLogger(cmd, cfg)

	mode, err := store.ParseMode(cfg.DataMode)
	if err != nil {
		return nil, err
	}
	kv, audit, closer, err := openBackend(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("opening %s backend: %w", cfg.PersistBackend, err)
	}

	api := gateway.New(cfg.APIBaseURL, cfg.RequestTimeout, log)
	identity := api
	if cfg.AuthBaseURL != cfg.APIBaseURL {
		identity = gateway.New(cfg.AuthBaseURL, cfg.RequestTimeout, log)
	}

	s := store.New(api, kv, audit, log, store.Options{Mode: mode, DailyTarget: cfg.DailyRevenueTarget})
	authSvc := auth.NewService(identity, kv, auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL), log)

	return &app{cfg: cfg, log: log, store: s, auth: authSvc, closer: closer}, nil
}
