package resolve

import (
	"errors"
	"path/filepath"
	"time"

	"gitwrap/internal/config"
	"gitwrap/internal/events"
	"gitwrap/internal/render"
	"gitwrap/internal/repo"
	"gitwrap/internal/version"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrUnresolved is returned when at least one path had no repository root.
var ErrUnresolved = errors.New("one or more paths are not inside a repository")

// RunResult captures run output for JSON mode.
type RunResult struct {
	RunID      string         `json:"run_id"`
	StartedAt  time.Time      `json:"timestamp_start"`
	FinishedAt time.Time      `json:"timestamp_end"`
	Status     string         `json:"status"`
	Lookups    []Lookup       `json:"lookups"`
	Events     []events.Event `json:"events"`
}

// Lookup records the outcome for one input path.
type Lookup struct {
	Path     string `json:"path"`
	Workdir  string `json:"workdir,omitempty"`
	Fallback bool   `json:"fallback,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Resolver resolves repository roots for a batch of paths.
type Resolver struct {
	locator  *repo.Locator
	renderer render.Renderer
	logger   *zap.Logger
	cfg      config.Config
}

// NewResolver constructs a Resolver. renderer and logger may be nil.
func NewResolver(locator *repo.Locator, renderer render.Renderer, logger *zap.Logger, cfg config.Config) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{locator: locator, renderer: renderer, logger: logger, cfg: cfg}
}

// Run looks up every path in order. Failures do not stop the run; the
// returned error is ErrUnresolved if any path failed without a fallback.
func (r *Resolver) Run(paths []string) (RunResult, error) {
	result := RunResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Status:    "failure",
	}

	emit := func(event events.Event) {
		result.Events = append(result.Events, event)
		if r.renderer != nil {
			r.renderer.Emit(event)
		}
	}

	emit(events.New(events.RunStarted, events.RunStartedPayload{
		Version:   version.Version,
		RunID:     result.RunID,
		Paths:     paths,
		StartedAt: result.StartedAt,
	}))

	failed := 0
	for _, path := range paths {
		lookup := r.lookup(path)
		result.Lookups = append(result.Lookups, lookup)
		if lookup.Error != "" && !lookup.Fallback {
			failed++
			emit(events.New(events.RootFailed, events.RootFailedPayload{Path: path, Message: lookup.Error}))
			continue
		}
		emit(events.New(events.RootResolved, events.RootResolvedPayload{Path: path, Workdir: lookup.Workdir, Fallback: lookup.Fallback}))
	}

	switch {
	case failed == 0:
		result.Status = "success"
	case failed < len(paths):
		result.Status = "partial"
	}
	result.FinishedAt = time.Now()
	emit(events.New(events.RunFinished, events.RunFinishedPayload{
		Status:     result.Status,
		Resolved:   len(paths) - failed,
		Failed:     failed,
		FinishedAt: result.FinishedAt,
	}))

	if failed > 0 {
		return result, ErrUnresolved
	}
	return result, nil
}

func (r *Resolver) lookup(path string) Lookup {
	lookup := Lookup{Path: path}
	found, err := r.locator.ContainingFile(path)
	if err != nil {
		r.logger.Warn("failed to find repo root", zap.String("path", path), zap.Error(err))
		lookup.Error = err.Error()
		if !r.cfg.Fallback {
			return lookup
		}
		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			r.logger.Warn("failed to resolve fallback path", zap.String("path", path), zap.Error(absErr))
			return Lookup{Path: path, Error: lookup.Error}
		}
		lookup.Workdir = abs
		lookup.Fallback = true
		return lookup
	}

	lookup.Workdir = found.Workdir()
	if r.cfg.Absolute {
		if abs, err := filepath.Abs(lookup.Workdir); err == nil {
			lookup.Workdir = abs
		}
	}
	return lookup
}
