package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"kortyPricing/internal/config"
	"kortyPricing/internal/modules/pricing/application/handler"
	"kortyPricing/internal/modules/pricing/application/usecase"
	"kortyPricing/internal/modules/pricing/domain"
	"kortyPricing/internal/modules/pricing/infrastructure"
	transport "kortyPricing/internal/modules/pricing/interface"
	"kortyPricing/internal/platform/broker"
	"kortyPricing/internal/shared/auth"
	"kortyPricing/internal/shared/cache"
	"kortyPricing/internal/shared/logging"
)

func main() {
	// Load .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))

	loc, err := time.LoadLocation(cfg.Pricing.Timezone)
	if err != nil {
		slog.Error("invalid timezone", slog.String("timezone", cfg.Pricing.Timezone), slog.Any("error", err))
		os.Exit(1)
	}
	year := time.Now().In(loc).Year()
	cal := domain.NewPolishHolidayCalendar(loc, year-cfg.Pricing.YearsBack, year+cfg.Pricing.YearsAhead)

	source := infrastructure.NewYAMLCatalogSource(cfg.Pricing.CatalogPath)
	snapshotUC := usecase.NewSnapshotUseCase(source, cal)
	queryUC := usecase.NewQueryUseCase(snapshotUC)
	validateUC := usecase.NewValidateUseCase(snapshotUC)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The boot catalog must build and validate; a broken file is a deploy
	// error, not something to limp past.
	if report, err := snapshotUC.Reload(ctx); err != nil {
		slog.Error("initial catalog load failed", slog.Any("error", err))
		for _, msg := range report.Errors {
			slog.Error("catalog validation", slog.String("problem", msg))
		}
		os.Exit(1)
	}
	slog.Info("catalog loaded", slog.String("path", cfg.Pricing.CatalogPath))

	hub := infrastructure.NewHub()
	broadcastUC := usecase.NewBroadcastUseCase(hub)

	registry := infrastructure.NewHandlerRegistry()
	registry.Register(handler.NewCatalogStreamHandler(cfg.Kafka.CatalogTopic, source, snapshotUC, queryUC, broadcastUC))
	broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.CatalogTopic})

	var rdb *redis.Client
	if cfg.Redis.CacheEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}
	cacheMW := cache.Middleware(cache.Config{
		Enabled: cfg.Redis.CacheEnabled(),
		Prefix:  cfg.Redis.CachePrefix,
		TTL:     cfg.Redis.CacheTTL,
	}, rdb)

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	adminMW := auth.RequireRole(validator, cfg.Security.AdminRole)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	httpHandler := transport.NewHTTPHandler(queryUC, validateUC, snapshotUC, loc)
	httpHandler.Register(e, cacheMW, adminMW)
	e.GET("/ws/pricing", transport.NewPricingWebsocketHandler(hub, queryUC, loc))

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	file, writer, err := logging.DailyFile(cfg.Directory)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
