// Package engine reconciles filesystem scans against a persisted
// manifest: incremental sync with safe deletion detection, sampled
// verification, status reporting and manifest diffing.
package engine

import (
	"fileset/internal/config"
	"fileset/internal/hash"
	"fileset/internal/model"
)

// Engine runs passes for one fileset configuration. It owns loading
// and saving the manifest; callers render the returned reports.
type Engine struct {
	cfg          *config.Config
	hasher       hash.Hasher
	manifestPath string
	workers      int
	onEvent      func(model.FileEvent)
	onProgress   func()
}

type Option func(*Engine)

// WithWorkers bounds the verification worker pool.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithEvents registers a callback for per-file events. The engine
// never writes to the console itself.
func WithEvents(fn func(model.FileEvent)) Option {
	return func(e *Engine) {
		e.onEvent = fn
	}
}

// WithProgress registers a callback invoked once per processed
// candidate or verified entry.
func WithProgress(fn func()) Option {
	return func(e *Engine) {
		e.onProgress = fn
	}
}

func New(cfg *config.Config, opts ...Option) *Engine {
	e := &Engine{
		cfg:          cfg,
		hasher:       cfg.Hasher(),
		manifestPath: cfg.ManifestPath(),
		workers:      1,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) emit(ev model.FileEvent) {
	if e.onEvent != nil {
		e.onEvent(ev)
	}
}

func (e *Engine) progress() {
	if e.onProgress != nil {
		e.onProgress()
	}
}
