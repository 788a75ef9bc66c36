package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tabdeck/tabdeck/internal/config"
	"github.com/tabdeck/tabdeck/internal/httpserver"
	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/notify"
	"github.com/tabdeck/tabdeck/internal/redis"
	"github.com/tabdeck/tabdeck/internal/scheduler"
	"github.com/tabdeck/tabdeck/internal/service"
	"github.com/tabdeck/tabdeck/internal/sources/homepage"
	"github.com/tabdeck/tabdeck/internal/store"
	filekv "github.com/tabdeck/tabdeck/internal/store/file"
	rediskv "github.com/tabdeck/tabdeck/internal/store/redis"
	"github.com/tabdeck/tabdeck/internal/version"
	"github.com/tabdeck/tabdeck/internal/view"
	"github.com/tabdeck/tabdeck/internal/watch"
)

type App struct {
	cfg      *config.Config
	logger   logger.Logger
	server   *httpserver.Server
	notifier *notify.Notifier
	watcher  *watch.FileWatcher
	backup   *scheduler.Backup
}

func New() (*App, error) {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)
	notifier := notify.New(loggerClient)

	var kv store.KV
	var watcher *watch.FileWatcher

	switch cfg.StoreBackend {
	case config.BackendRedis:
		loggerClient.Infof("Using redis store at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
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
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		kv = rediskv.New(client)

	default:
		loggerClient.Infof("Using file store at %s", cfg.StoreFile)
		fkv := filekv.New(cfg.StoreFile)
		kv = fkv
		if cfg.WatchStore {
			// External writes (another daemon instance, a hand edit)
			// feed the same change signal local mutations use.
			watcher = watch.NewFileWatcher(fkv.Path(), notifier, loggerClient)
		}
	}

	st := store.New(kv, loggerClient)
	svc := service.New(st, notifier, loggerClient)
	reader := view.NewReader(svc)

	// Seed an empty store from a Homepage services file, if configured.
	if cfg.SeedFile != "" {
		seeder := homepage.NewSeeder(cfg.SeedFile, st, loggerClient)
		if err := seeder.Seed(context.Background()); err != nil {
			loggerClient.Warn("failed to seed config from services file",
				logger.String("file", cfg.SeedFile),
				logger.Error(err))
		}
	}

	var backup *scheduler.Backup
	if cfg.BackupDir != "" {
		backup = scheduler.NewBackup(st, loggerClient, cfg.BackupDir, cfg.BackupInterval, cfg.BackupKeep)
	}

	d := deps.Deps{
		Logger:    loggerClient,
		StartTime: time.Now(),
		Version:   version.Version,
		Commit:    version.Commit,
		BuildDate: version.BuildDate,
		GoVersion: version.GoVersion,
		Service:   svc,
		Reader:    reader,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:      cfg,
		logger:   loggerClient,
		server:   server,
		notifier: notifier,
		watcher:  watcher,
		backup:   backup,
	}, nil
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting tabdeck %s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("tabdeck %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.watcher != nil {
		if err := a.watcher.Start(ctx); err != nil {
			return fmt.Errorf("start store watcher: %w", err)
		}
	}

	if a.backup != nil {
		if err := a.backup.Start(ctx); err != nil {
			return fmt.Errorf("start backup scheduler: %w", err)
		}
		a.logger.Info("backup scheduler started",
			logger.String("dir", a.cfg.BackupDir),
			logger.Duration("interval", a.cfg.BackupInterval))
	}

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

	if a.watcher != nil {
		a.watcher.Stop()
	}
	if a.backup != nil {
		a.backup.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	_ = a.logger.Sync()
	return nil
}
