package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/ceilingworks/erp/internal/application/catalog"
	"github.com/ceilingworks/erp/internal/application/crud"
	tradeapp "github.com/ceilingworks/erp/internal/application/trade"
	"github.com/ceilingworks/erp/internal/infrastructure/cache"
	"github.com/ceilingworks/erp/internal/infrastructure/config"
	"github.com/ceilingworks/erp/internal/infrastructure/logger"
	"github.com/ceilingworks/erp/internal/infrastructure/migration"
	"github.com/ceilingworks/erp/internal/infrastructure/persistence"
	"github.com/ceilingworks/erp/internal/infrastructure/storage"
	"github.com/ceilingworks/erp/internal/infrastructure/telemetry"
	"github.com/ceilingworks/erp/internal/interfaces/http/handler"
	"github.com/ceilingworks/erp/internal/interfaces/http/middleware"
	"github.com/ceilingworks/erp/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Ceiling ERP API
//	@version		1.0
//	@description	Orders, inventory and catalog of a ceiling installation business

//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ceiling ERP",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, version, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Tracer shutdown failed", zap.Error(err))
		}
	}()

	metrics := telemetry.NewMetrics()

	db, err := persistence.NewDatabase(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	if err := db.DB.Use(telemetry.NewDBPlugin(cfg.Telemetry, cfg.Database.SlowThreshold, metrics.Registry, log)); err != nil {
		log.Fatal("Failed to install database instrumentation", zap.Error(err))
	}

	if err := db.RegisterPoolMetrics(metrics.Registry); err != nil {
		log.Warn("Failed to register connection pool metrics", zap.Error(err))
	}

	if err := migrateSchema(db, log); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	entityCache, cacheCloser, err := cache.NewFactory(cfg.Cache, cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(true),
		cache.WithMetrics(metrics.Registry),
	).Create()
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer func() {
		if err := cacheCloser.Close(); err != nil {
			log.Warn("Failed to close cache", zap.Error(err))
		}
	}()

	repos := persistence.NewRepositories(db.DB)
	svc := newServices(repos, crud.WithCache(entityCache), crud.WithLogger(log))

	imageOpts := []catalogapp.ImageServiceOption{catalogapp.WithImageLogger(log)}
	objects, err := storage.New(ctx, &cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if objects != nil {
		imageOpts = append(imageOpts, catalogapp.WithObjectStorage(objects, cfg.Storage.KeyPrefix))
	}
	images := catalogapp.NewImageService(svc.attachedImages, imageOpts...)
	exporter := tradeapp.NewOrderExporter(repos.CustomerOrdersDetails, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	tracing := middleware.DefaultTracingConfig()
	tracing.Enabled = tp.IsEnabled()
	if cfg.Telemetry.ServiceName != "" {
		tracing.ServiceName = cfg.Telemetry.ServiceName
	}
	if cfg.Metrics.Path != "" {
		tracing.SkipPaths = append(tracing.SkipPaths, cfg.Metrics.Path)
	}

	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		cors.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.TracingWithConfig(tracing),
		middleware.SpanErrorMarker(),
		middleware.HTTPMetrics(middleware.HTTPMetricsConfig{
			Registerer: metrics.Registry,
			Enabled:    cfg.Metrics.Enabled,
		}),
		middleware.Secure(),
		middleware.CORSWithConfig(cors),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	system := handler.NewSystemHandler(cfg.App.Name, version, map[string]handler.Pinger{
		"database": db,
	})
	engine.GET("/health", system.Health)
	if cfg.Metrics.Enabled && cfg.Metrics.Path != "" {
		engine.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler()))
	}

	router.NewRouter(engine).
		Register(&router.API{
			Resources: svc.resourceHandlers(images),
			Images:    handler.NewImageHandler(images),
			Export:    handler.NewExportHandler(exporter),
			System:    system,
		}).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	timeout := cfg.HTTP.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// migrateSchema brings the schema up to date. SQLite databases are created
// from the models; PostgreSQL runs the versioned migrations.
func migrateSchema(db *persistence.Database, log *zap.Logger) error {
	if db.Driver == "sqlite" {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, "", log)
	if err != nil {
		return err
	}
	// Closing the migrator would also close the shared connection pool.
	return m.Up()
}
