// Package watcher turns filesystem notifications under the configured
// real roots into debounced sync triggers.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fileset/internal/config"
	"fileset/internal/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

type Watcher struct {
	fw      *fsnotify.Watcher
	eventCh chan string
	doneCh  chan struct{}
}

func New(bufferSize int) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		fw:      fw,
		eventCh: make(chan string, bufferSize),
		doneCh:  make(chan struct{}),
	}, nil
}

// Watch registers every real root of the config recursively and starts
// the event loop.
func (w *Watcher) Watch(mappings []config.Mapping) error {
	for _, m := range mappings {
		absRoot, err := filepath.Abs(m.RealRoot)
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		if _, err := os.Stat(absRoot); err != nil {
			return fmt.Errorf("mapped root not found: %w", err)
		}

		if err := w.addRecursive(absRoot); err != nil {
			return err
		}

		logger.Log.Info("watching root",
			zap.String("dir", absRoot))
	}

	go w.run()
	return nil
}

func (w *Watcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if err := w.fw.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
			logger.Log.Debug("watching directory",
				zap.String("path", path))
		}

		return nil
	})
}

func (w *Watcher) run() {
	defer close(w.eventCh)

	for {
		select {
		case <-w.doneCh:
			logger.Log.Info("watcher stopping")
			return

		case fsEvent, ok := <-w.fw.Events:
			if !ok {
				return
			}

			if fsEvent.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(fsEvent.Name); err == nil && info.IsDir() {
					if err := w.fw.Add(fsEvent.Name); err != nil {
						logger.Log.Warn("failed to watch new directory",
							zap.String("path", fsEvent.Name),
							zap.Error(err))
					}
				}
			}

			select {
			case w.eventCh <- fsEvent.Name:
			default:
				logger.Log.Warn("event channel is full, dropping event",
					zap.String("path", fsEvent.Name))
			}

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}

			logger.Log.Error("watcher error",
				zap.Error(err))
		}
	}
}

func (w *Watcher) Events() <-chan string {
	return w.eventCh
}

func (w *Watcher) Stop() {
	close(w.doneCh)
	_ = w.fw.Close()
}

// Debounce collapses bursts of change notifications into one trigger
// per quiet period. A trigger still pending when the input closes is
// flushed before the output closes.
func Debounce(inCh <-chan string, delay time.Duration) <-chan struct{} {
	outCh := make(chan struct{}, 1)

	go func() {
		defer close(outCh)

		timer := time.NewTimer(delay)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case _, ok := <-inCh:
				if !ok {
					if pending {
						outCh <- struct{}{}
					}
					return
				}

				if pending && !timer.Stop() {
					<-timer.C
				}
				timer.Reset(delay)
				pending = true

			case <-timer.C:
				pending = false
				select {
				case outCh <- struct{}{}:
				default:
				}
			}
		}
	}()

	return outCh
}
