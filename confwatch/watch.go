// Package confwatch keeps a config.Config in sync with a file on disk.
// It reparses on every fsnotify write event and, as a fallback for
// filesystems that don't deliver reliable notifications, on a cron
// schedule. Every reload attempt gets a correlation ID for log
// cross-referencing.
package confwatch

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
	"github.com/StormBytePP/StormByteConfig/confmetrics"
)

// Watcher reparses Path into Config whenever the file changes, either
// observed directly or on the fallback schedule.
type Watcher struct {
	Path   string
	Config *config.Config
	Logger *zap.Logger

	// FallbackSchedule is a standard cron expression. Empty disables
	// the scheduled fallback reparse.
	FallbackSchedule string

	// Metrics, when set, records every reload's duration and outcome.
	Metrics *confmetrics.Metrics

	fsWatcher *fsnotify.Watcher
	cron      *cron.Cron

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Watcher for path, reparsing into cfg on every detected
// change. logger must not be nil.
func New(path string, cfg *config.Config, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{
		Path:      path,
		Config:    cfg,
		Logger:    logger,
		fsWatcher: fsWatcher,
		cron:      cron.New(),
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}, nil
}

// Reload reads Path and reparses it into Config, replacing Config's
// previous contents, under a fresh correlation ID, logging the outcome at
// Info (success) or Warn (ParseError).
func (w *Watcher) Reload() error {
	id := uuid.New().String()
	logger := w.Logger.With(zap.String("reload_id", id), zap.String("path", w.Path))

	data, err := os.ReadFile(w.Path)
	if err != nil {
		logger.Warn("reload: read failed", zap.Error(err))
		return err
	}

	w.Config.Clear()
	parse := w.Config.ParseFrom
	if w.Metrics != nil {
		parse = func(source string) error { return w.Metrics.ParseFrom(w.Config, source) }
	}
	if err := parse(string(data)); err != nil {
		logger.Warn("reload: parse failed", zap.Error(err))
		return err
	}

	logger.Info("reload: parsed successfully")
	return nil
}

// Run blocks, watching Path for writes and reparsing on each one, until
// ctx is cancelled or Stop is called. It also starts the cron fallback
// if FallbackSchedule is set.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.fsWatcher.Add(w.Path); err != nil {
		return fmt.Errorf("watching %s: %w", w.Path, err)
	}

	if w.FallbackSchedule != "" {
		if _, err := w.cron.AddFunc(w.FallbackSchedule, func() {
			w.Logger.Debug("fallback reload firing", zap.String("schedule", w.FallbackSchedule))
			if err := w.Reload(); err != nil {
				w.Logger.Warn("fallback reload failed", zap.Error(err))
			}
		}); err != nil {
			return fmt.Errorf("scheduling fallback reload: %w", err)
		}
		w.cron.Start()
		defer w.cron.Stop()
	}

	w.Logger.Info("watcher started", zap.String("path", w.Path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.stopCh:
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return fmt.Errorf("fsnotify events channel closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.Reload(); err != nil {
				w.Logger.Warn("reload after fs event failed", zap.Error(err))
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return fmt.Errorf("fsnotify errors channel closed")
			}
			w.Logger.Error("fsnotify error", zap.Error(err))
		}
	}
}

// Stop ends a running Run and releases the fsnotify watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	return w.fsWatcher.Close()
}
