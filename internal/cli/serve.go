package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/csvshipper/csv-shipper/internal/api"
	"github.com/csvshipper/csv-shipper/internal/api/handler"
	"github.com/csvshipper/csv-shipper/internal/core/service"
	mongodb "github.com/csvshipper/csv-shipper/internal/infrastructure/db/mongo"
	redisdb "github.com/csvshipper/csv-shipper/internal/infrastructure/db/redis"
	"github.com/csvshipper/csv-shipper/internal/infrastructure/notify"
	"github.com/csvshipper/csv-shipper/internal/infrastructure/queue"
	"github.com/csvshipper/csv-shipper/internal/pkg/config"
	"github.com/csvshipper/csv-shipper/internal/pkg/telemetry"
	"github.com/csvshipper/csv-shipper/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWith(cmd.Context(), envconfig.OsLookuper())
			if err != nil {
				return err
			}
			if err := cfg.ValidateServer(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "csvshipper",
	})

	tel, err := telemetry.Init(ctx, cfg.Telemetry, cfg.Env, prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer withTimeout(func(ctx context.Context) {
		if err := tel.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("telemetry shutdown")
		}
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer withTimeout(func(ctx context.Context) {
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	})

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Timeout:  cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	users := mongodb.NewUserRepository(db)
	addresses := mongodb.NewAddressRepository(db)
	if err := errors.Join(
		users.EnsureIndexes(ctx),
		addresses.EnsureIndexes(ctx),
		mongodb.EnsureWebhookIndexes(ctx, db),
	); err != nil {
		return fmt.Errorf("mongo indexes: %w", err)
	}

	shipments, err := carrierServiceWith(cfg, addresses, log)
	if err != nil {
		return err
	}

	authSvc := service.NewAuthService(
		users,
		redisdb.NewResetTokenStore(rdb),
		notify.NewLogNotifier(logger.Component("notifier")),
		service.AuthConfig{
			JWTSecret: cfg.Auth.JWTSecret,
			TokenTTL:  cfg.Auth.TokenTTL,
			ResetTTL:  cfg.Auth.ResetTTL,
			PublicURL: cfg.Auth.PublicURL,
		},
		logger.Component("auth"),
	)
	addressSvc := service.NewAddressService(addresses, logger.Component("addresses"))
	webhookSvc := service.NewWebhookService(
		mongodb.NewWebhookEventRepository(db),
		redisdb.NewDedupChecker(rdb),
		logger.Component("webhooks"),
	)

	dispatcher := queue.NewDispatcher(cfg.Webhooks.Workers, webhookSvc, logger.Component("dispatcher"))
	dispatcher.Start(context.Background())

	e := api.NewRouter(api.Deps{
		Auth:      authSvc,
		Addresses: addressSvc,
		Shipments: shipments,
		Webhooks:  dispatcher,
		Health: map[string]handler.HealthCheck{
			"mongodb": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		JWTSecret: cfg.Auth.JWTSecret,
		Logger:    logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(e, "csvshipper"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop HTTP intake first, then let the workers finish what was already
	// accepted. Redis, Mongo and telemetry are released by the defers above.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("webhook workers did not drain")
	}

	log.Info().Msg("server stopped")
	return serveErr
}

// withTimeout runs a cleanup step with its own shutdown deadline.
func withTimeout(fn func(ctx context.Context)) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	fn(ctx)
}
