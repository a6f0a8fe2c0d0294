package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
	"github.com/StormBytePP/StormByteConfig/confmetrics"
	"github.com/StormBytePP/StormByteConfig/confwatch"
	"github.com/StormBytePP/StormByteConfig/internal/cliconfig"
	"github.com/StormBytePP/StormByteConfig/internal/obslog"
)

// cmdServe watches a configuration file, keeping an in-memory Config in
// sync with it, and serves Prometheus metrics describing reload
// activity until interrupted.
func cmdServe(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	settingsPath := fs.String("settings", "", "YAML settings file")
	var flagSettings cliconfig.Settings
	cliconfig.BindFlags(fs, &flagSettings)
	if err := fs.Parse(args); err != nil {
		return err
	}

	fileSettings, err := cliconfig.LoadFile(*settingsPath)
	if err != nil {
		return fmt.Errorf("loading settings file: %w", err)
	}
	resolved, err := cliconfig.Resolve(cliconfig.Default(), fileSettings)
	if err != nil {
		return fmt.Errorf("resolving file settings: %w", err)
	}
	resolved, err = cliconfig.Resolve(resolved, flagSettings)
	if err != nil {
		return fmt.Errorf("resolving flag settings: %w", err)
	}
	if resolved.Watch == "" {
		return fmt.Errorf("serve requires -watch <file> or a settings file with watch: set")
	}
	if resolved.Debug {
		debugLogger, err := obslog.New(true)
		if err != nil {
			return fmt.Errorf("building debug logger: %w", err)
		}
		defer obslog.Sync(debugLogger)
		logger = debugLogger
	}

	policy, err := config.ParsePolicy(resolved.Policy)
	if err != nil {
		return err
	}

	cfg := config.New(policy)
	metrics := confmetrics.New(prometheus.DefaultRegisterer)

	watcher, err := confwatch.New(resolved.Watch, cfg, logger)
	if err != nil {
		return err
	}
	watcher.Metrics = metrics
	if err := watcher.Reload(); err != nil {
		logger.Warn("initial reload failed", zap.Error(err))
	}

	if resolved.Metrics != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", confmetrics.Handler())
		server := &http.Server{Addr: resolved.Metrics, Handler: mux}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer server.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Run(ctx)
}
