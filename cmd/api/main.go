// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/carterperez-dev/moments-matrimony/internal/admin"
	"github.com/carterperez-dev/moments-matrimony/internal/auth"
	"github.com/carterperez-dev/moments-matrimony/internal/biodata"
	"github.com/carterperez-dev/moments-matrimony/internal/config"
	"github.com/carterperez-dev/moments-matrimony/internal/core"
	"github.com/carterperez-dev/moments-matrimony/internal/favourite"
	"github.com/carterperez-dev/moments-matrimony/internal/health"
	"github.com/carterperez-dev/moments-matrimony/internal/invoice"
	"github.com/carterperez-dev/moments-matrimony/internal/middleware"
	"github.com/carterperez-dev/moments-matrimony/internal/payment"
	"github.com/carterperez-dev/moments-matrimony/internal/premium"
	"github.com/carterperez-dev/moments-matrimony/internal/server"
	"github.com/carterperez-dev/moments-matrimony/internal/user"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to optional yaml config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"database", cfg.Database.Name,
		"max_pool_size", cfg.Database.MaxPoolSize,
	)

	var (
		redis      *core.Redis
		redisCheck health.Checker
		statsCache admin.Cache
	)
	if cfg.Redis.Enabled() {
		redis, err = core.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		redisCheck = redis
		statsCache = admin.NewRedisCache(redis, cfg.Cache.StatsTTL)
		logger.Info("redis connected",
			"pool_size", cfg.Redis.PoolSize,
		)
	}

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expires_in", cfg.JWT.AccessTokenExpire.String(),
	)

	userSvc := user.NewService(user.NewRepository(db.Collection(core.CollectionUsers)))
	userHandler := user.NewHandler(userSvc)

	authHandler := auth.NewHandler(auth.NewService(tokens, userSvc))

	biodataHandler := biodata.NewHandler(biodata.NewService(
		biodata.NewRepository(db.Collection(core.CollectionBiodatas)),
	))
	premiumHandler := premium.NewHandler(premium.NewService(
		premium.NewRepository(db.Collection(core.CollectionPremium)),
	))
	favouriteHandler := favourite.NewHandler(favourite.NewService(
		favourite.NewRepository(db.Collection(core.CollectionFavourite)),
	))
	invoiceHandler := invoice.NewHandler(invoice.NewService(
		invoice.NewRepository(db.Collection(core.CollectionInvoice)),
	))
	paymentHandler := payment.NewHandler(payment.NewService(
		payment.NewStripeGateway(cfg.Stripe.SecretKey),
		cfg.Stripe.Currency,
		logger,
	))
	adminHandler := admin.NewHandler(admin.NewService(
		admin.NewRepository(db.DB),
		statsCache,
		logger,
	))

	healthHandler := health.NewHandler(db, redisCheck)
	healthHandler.SetReady(false)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
		ServiceName:   cfg.Otel.ServiceName,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokens)

	authHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router, authenticator)
	biodataHandler.RegisterRoutes(router)
	premiumHandler.RegisterRoutes(router)
	favouriteHandler.RegisterRoutes(router)
	invoiceHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)
	adminHandler.RegisterRoutes(router)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// /readyz reports not_ready until the unique email index exists.
	var runErr error
	if err := user.EnsureIndexes(ctx, db.Collection(core.CollectionUsers)); err != nil {
		logger.Error("index creation failed", "error", err)
		runErr = err
		stop()
	} else {
		healthHandler.SetReady(true)
		logger.Info("indexes ready")
	}

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		if runErr == nil {
			logger.Info("shutdown signal received")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if redis != nil {
		if err := redis.Close(); err != nil {
			logger.Error("redis close error", "error", err)
		}
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return runErr
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
