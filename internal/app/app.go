package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"

	"github.com/jobpulse/pulse/internal/catalog"
	"github.com/jobpulse/pulse/internal/config"
	"github.com/jobpulse/pulse/internal/httpserver"
	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/logger"
	"github.com/jobpulse/pulse/internal/redis"
	"github.com/jobpulse/pulse/internal/scheduler"
	"github.com/jobpulse/pulse/internal/sources/catalogfile"
	redisstore "github.com/jobpulse/pulse/internal/store/redis"
	"github.com/jobpulse/pulse/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *catalog.Catalog
	retention   *scheduler.DigestRetention
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Load the job catalog from disk. Without jobs there is nothing to
	// score, so a bad catalog is fatal.
	cat := catalog.New()
	file, err := catalogfile.NewLoader(cfg.CatalogFile).Load()
	if err != nil {
		loggerClient.Errorf("Failed to load catalog from %s: %v", cfg.CatalogFile, err)
		os.Exit(1)
	}
	jobs, err := catalogfile.NewMapper(loggerClient).MapJobs(file)
	if err != nil {
		loggerClient.Errorf("Catalog has no usable jobs: %v", err)
		os.Exit(1)
	}
	cat.Replace(jobs)
	loggerClient.Info("catalog loaded",
		logger.String("file", cfg.CatalogFile),
		logger.Int("jobs", cat.Count()))

	store := redisstore.NewStore(redisClient)

	retention := scheduler.NewDigestRetention(
		store,
		loggerClient,
		cfg.RetentionInterval,
		cfg.DigestRetention,
	)

	// Dependencies passed to routes.
	d := deps.Deps{
		Logger:      loggerClient,
		StartTime:   time.Now(),
		Version:     version.Version,
		Commit:      version.Commit,
		BuildDate:   version.BuildDate,
		GoVersion:   version.GoVersion,
		TimeNow:     time.Now,
		RedisClient: redisClient,
		Catalog:     cat,
		Validate:    validator.New(),
		CORSOrigin:  cfg.CORSOrigin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     cat,
		retention:   retention,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Pulse v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Pulse %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.retention.Start(ctx); err != nil {
		return fmt.Errorf("failed to start digest retention: %w", err)
	}
	a.logger.Info("digest retention started",
		logger.Duration("interval", a.cfg.RetentionInterval),
		logger.Duration("retention", a.cfg.DigestRetention))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Pulse stopped cleanly")
	return nil
}
