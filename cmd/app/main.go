package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"warehouse/cmd"
	"warehouse/internal/adapters/out/export"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/logging"
	"warehouse/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	configs, err := cmd.LoadConfig("configs", os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLogger := logging.Init(logging.Options{
		Service:    configs.App.Name,
		Level:      configs.App.LogLevel,
		FilePath:   configs.Log.File,
		MaxSizeMB:  configs.Log.MaxSizeMB,
		MaxBackups: configs.Log.MaxBackups,
		MaxAgeDays: configs.Log.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDB(ctx, configs)

	rdb, closeRedis := openRedis(ctx, configs)
	defer closeRedis()

	exporter, closeExporter := mustOpenExporter(configs)
	defer closeExporter()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	app := cmd.NewCompositionRoot(configs, gormDB, rdb, exporter, appMetrics, appLogger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, &app, configs.App.HTTPAddr)
}

func mustOpenDB(ctx context.Context, configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	if configs.DB.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(configs.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(configs.DB.MaxOpenConns)
	}
	if configs.DB.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(configs.DB.ConnMaxLifetime)
	}

	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return gormDB
}

// openRedis returns a nil client when no address is configured or Redis is
// unreachable at startup; reports are then served uncached.
func openRedis(ctx context.Context, configs cmd.Config) (redis.Cmdable, func()) {
	if configs.Redis.Addr == "" {
		return nil, func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     configs.Redis.Addr,
		Password: configs.Redis.Password,
		DB:       configs.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logging.Component("startup").Warn("Redis unavailable, report cache disabled", "error", err)
		_ = rdb.Close()
		return nil, func() {}
	}

	return rdb, func() { _ = rdb.Close() }
}

func mustOpenExporter(configs cmd.Config) (ports.OrderExporter, func()) {
	if configs.Export.Sink == cmd.SinkFile {
		exporter, err := export.NewFileExporter(configs.Export.Dir)
		if err != nil {
			log.Fatalf("Failed to prepare export dir: %v", err)
		}
		return exporter, func() {}
	}

	conn, err := amqp.Dial(configs.RabbitMQ.URL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		log.Fatalf("Failed to open RabbitMQ channel: %v", err)
	}

	exporter, err := export.NewRabbitExporter(ch, configs.RabbitMQ.Exchange)
	if err != nil {
		_ = conn.Close()
		log.Fatalf("Failed to prepare RabbitMQ exporter: %v", err)
	}

	return exporter, func() {
		_ = ch.Close()
		_ = conn.Close()
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, addr string) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	if err := app.CreateServer().Register(e); err != nil {
		e.Logger.Fatal(err)
	}

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
