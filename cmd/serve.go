package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopapi/internal/accounts"
	"shopapi/internal/api"
	"shopapi/internal/api/handler/v1handler"
	"shopapi/internal/carts"
	"shopapi/internal/catalog"
	"shopapi/internal/config"
	"shopapi/internal/orders"
	"shopapi/internal/payments"
	"shopapi/internal/shipments"
	"shopapi/internal/worker"
	"shopapi/pkg/cache"
	"shopapi/pkg/logger"
	"shopapi/pkg/payment/toss"
	"shopapi/pkg/tracker/sweettracker"
)

func setupServer(ctx context.Context, deps api.Deps, cfg *config.Config) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, err := cache.New(ctx, cache.Options{
				Addr:     cfg.RedisAddr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
			}
			defer func() {
				if err := redisClient.Close(); err != nil {
					logger.Warn(ctx, "could not close redis client", zap.Error(err))
				}
			}()

			issuer, err := accounts.NewTokenIssuer(cfg.JWT.PrivateKey, cfg.JWT.PublicKey,
				cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
			if err != nil {
				logger.Fatal(ctx, "could not create token issuer", zap.Error(err))
			}

			blacklist := cache.NewTokenBlacklist(redisClient)
			trackerClient := sweettracker.New(&http.Client{Timeout: cfg.Tracker.Timeout},
				cfg.Tracker.APIKey, cfg.Tracker.BaseURL)
			gateway := toss.New(&http.Client{Timeout: cfg.Toss.Timeout},
				cfg.Toss.SecretKey, "", cfg.Toss.Mock)

			shipmentsService := shipments.New(strg, trackerClient, cfg.Shipments.MaxPollAttempts)

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, strg, shipmentsService)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, api.Deps{
				Deps: v1handler.Deps{
					Accounts:  accounts.New(strg, issuer, blacklist),
					Catalog:   catalog.New(strg),
					Carts:     carts.New(strg),
					Orders:    orders.New(strg),
					Payments:  payments.New(strg, gateway),
					Shipments: shipmentsService,
				},
				Sec:     v1handler.NewSecHandler(issuer, blacklist),
				Storage: strg,
				Redis:   redisClient,
			}, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop background workers", zap.Error(err))
			}
		},
	}

	return cmd
}
