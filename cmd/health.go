package main

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopapi/internal/config"
	"shopapi/internal/diag"
	"shopapi/pkg/cache"
	"shopapi/pkg/logger"
	"shopapi/pkg/storage"
	"shopapi/pkg/storage/postgres"
)

// tryPostgres is a non-fatal variant of getPostgres for the health sweep.
func tryPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, error) {
	return postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
}

// healthCommand constructs the 'health' subcommand: a best-effort sweep over
// a running deployment. Individual probe failures are reported and tolerated;
// the command fails only when nothing responds.
func healthCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probes the HTTP surface, postgres and redis of a running deployment",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			baseURL, _ := cmd.Flags().GetString("url")

			// both stores are optional here, a broken one is a probe
			// failure rather than a startup error
			var store storage.Storage
			if strg, err := tryPostgres(ctx, cfg); err != nil {
				logger.Warn(ctx, "could not connect to postgres", zap.Error(err))
			} else {
				store = strg
				defer func() { _ = strg.Close() }()
			}

			var rds redis.UniversalClient
			if redisClient, err := cache.New(ctx, cache.Options{
				Addr:     cfg.RedisAddr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			}); err != nil {
				logger.Warn(ctx, "could not connect to redis", zap.Error(err))
			} else {
				rds = redisClient
				defer func() { _ = redisClient.Close() }()
			}

			checks := diag.New(baseURL, store, rds).Sweep(ctx)
			if !diag.AnyAlive(checks) {
				logger.Error(ctx, "every probe failed")
				os.Exit(1)
			}
		},
	}

	cmd.Flags().String("url", "http://localhost:8000", "Base URL of the running server")

	return cmd
}
