// Package main provides the entry point for kvora-server.
//
// kvora-server is a single-process, in-memory key-value service
// speaking RESP2, the wire protocol Redis clients already know.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kvora/kvora/internal/admin"
	"github.com/kvora/kvora/internal/config"
	"github.com/kvora/kvora/internal/conn"
	"github.com/kvora/kvora/internal/infra/confloader"
	"github.com/kvora/kvora/internal/infra/shutdown"
	"github.com/kvora/kvora/internal/registry"
	"github.com/kvora/kvora/internal/telemetry/logger"
	"github.com/kvora/kvora/internal/telemetry/metric"
)

// Build information, set via ldflags.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("kvora-server %s (commit: %s, built: %s)\n", version, commit, buildTime)
		return nil
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, slogLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting kvora-server",
		"version", version,
		"commit", commit,
		"config", *configFile,
		"addr", cfg.Server.Addr)

	metrics := metric.NewRegistry()
	reg := registry.New()
	metrics.RegisterConnectionCollector(metric.NewCollector(reg))

	listener, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Server.Addr, err)
	}

	var adminServer *admin.Server
	if cfg.Admin.Enabled {
		router := admin.NewRouter(&admin.RouterConfig{
			Registry: reg,
			Metrics:  metrics,
			Logger:   slogLogger,
		})
		adminServer = admin.New(cfg.Admin.Addr, router)
	}

	shutdownHandler := shutdown.NewHandler(30*time.Second, shutdown.WithLogger(slogLogger))
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("closing RESP listener")
		return listener.Close()
	})
	if adminServer != nil {
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down admin server")
			return adminServer.Shutdown(ctx)
		})
	}

	if *configFile != "" {
		watcher, err := watchConfigFile(*configFile, slogLogger, log)
		if err != nil {
			return fmt.Errorf("watch config file: %w", err)
		}
		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("stopping config watcher")
			return watcher.Stop()
		})
	}

	go reportStoreKeys(reg, metrics, shutdownHandler.Done())

	var group errgroup.Group

	group.Go(func() error {
		return serveRESP(listener, cfg, reg, metrics, slogLogger)
	})

	if adminServer != nil {
		group.Go(func() error {
			log.Info("admin server listening", "addr", cfg.Admin.Addr)
			if err := adminServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("admin server: %w", err)
			}
			return nil
		})
	}

	go func() {
		if err := group.Wait(); err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("server error", "error", err)
		}
	}()

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// serveRESP runs the accept loop for the RESP listener, spawning one
// internal/conn.Conn per accepted socket. A golang.org/x/time/rate
// limiter keyed by remote IP bounds how many connections one address
// may open per second when cfg.Server.RateLimitPerSecond is set.
func serveRESP(listener net.Listener, cfg *config.ServerConfig, reg *registry.Registry, metrics *metric.Registry, log *slog.Logger) error {
	connCfg := conn.Config{
		QueueDepth:   cfg.Conn.QueueDepth,
		ReadTimeout:  cfg.Conn.ReadTimeout,
		WriteTimeout: cfg.Conn.WriteTimeout,
		IdleTimeout:  cfg.Conn.IdleTimeout,
	}

	var limiters *ipRateLimiters
	if cfg.Server.RateLimitPerSecond > 0 {
		limiters = newIPRateLimiters(cfg.Server.RateLimitPerSecond)
	}

	for {
		c, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		if limiters != nil && !limiters.Allow(c.RemoteAddr()) {
			log.Warn("connection rejected by rate limiter", "remote", c.RemoteAddr())
			c.Close()
			continue
		}

		id := registry.NewID()
		entry := reg.Register(id, c.RemoteAddr())
		metrics.IncConnectionAccepted()

		go func() {
			defer func() {
				c.Close()
				reg.Deregister(id)
				metrics.DecConnectionActive()
			}()
			connLogger := log.With("conn_id", entry.ID, "remote", entry.RemoteAddr)
			cx := conn.New(c, connCfg, entry, connLogger, metrics)
			cx.Serve()
		}()
	}
}

// reportStoreKeys periodically publishes the sum of every connection's
// store size to metrics.SetStoreKeys, since no single component holds
// that aggregate otherwise — each connection's store is deliberately
// single-owner.
func reportStoreKeys(reg *registry.Registry, metrics *metric.Registry, done <-chan struct{}) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			metrics.SetStoreKeys(int(reg.TotalKeys()))
		case <-done:
			return
		}
	}
}

// watchConfigFile starts a filesystem watch on configFile so changes to
// it take effect without a restart. Only the log level is hot-reloaded
// today — every other setting (listener addresses, queue depth, rate
// limits) requires rebinding a socket and is left to a restart.
func watchConfigFile(configFile string, slogLogger *slog.Logger, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(slogLogger))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}
	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(configFile)
		if err != nil {
			log.Error("config reload failed, keeping current settings", "path", path, "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		log.Info("log level reloaded from config", "path", path, "level", cfg.Log.Level)
	})
	watcher.StartAsync()
	return watcher, nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
// Returns both the logger interface and a slog.Logger for components
// that need slog directly (internal/conn, internal/admin).
func initLogger(cfg *config.ServerConfig) (logger.Logger, *slog.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, nil, err
	}

	logger.SetDefault(log)

	return log, slog.Default(), nil
}
