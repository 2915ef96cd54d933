package repo

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// MarkerDir is the directory whose presence identifies a repository root.
const MarkerDir = ".git"

// Locator finds repository roots by probing a filesystem.
type Locator struct {
	fs     afero.Fs
	logger *zap.Logger
}

// Option configures a Locator.
type Option func(*Locator)

// WithFs sets the filesystem the locator probes.
func WithFs(fs afero.Fs) Option {
	return func(l *Locator) {
		if fs != nil {
			l.fs = fs
		}
	}
}

// WithLogger sets the logger used for probe tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLocator returns a locator backed by the OS filesystem unless overridden.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{fs: afero.NewOsFs(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FindRoot locates the repository root by walking up to a .git directory.
func FindRoot(start string) (string, error) {
	return NewLocator().FindRoot(start)
}

// FindRoot returns the nearest ancestor of start, start included, that
// contains a MarkerDir directory.
//
// Probing the marker cannot tell "absent" from other I/O failures; both move
// the walk upward. A cursor that cannot be stat'ed ends the walk with an error,
// which covers a missing start path and directories removed mid-walk.
func (l *Locator) FindRoot(start string) (string, error) {
	dir := start
	for {
		if _, err := l.fs.Stat(dir); err != nil {
			l.logger.Debug("cursor vanished", zap.String("path", dir), zap.Error(err))
			return "", &LocateError{Path: dir, Err: err}
		}

		l.logger.Debug("checking for marker", zap.String("path", dir))
		if l.hasMarker(dir) {
			l.logger.Debug("found marker", zap.String("path", dir))
			return dir, nil
		}

		cur := filepath.Clean(dir)
		if !filepath.IsAbs(cur) && (cur == "." || filepath.Base(cur) == "..") {
			// Lexical climbing is exhausted; continue from the absolute path.
			abs, err := filepath.Abs(cur)
			if err != nil {
				return "", &LocateError{Path: dir, Err: err}
			}
			cur = abs
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			l.logger.Debug("reached filesystem root", zap.String("path", cur))
			return "", &LocateError{Path: start, Err: ErrNoMarker}
		}
		dir = parent
	}
}

func (l *Locator) hasMarker(dir string) bool {
	info, err := l.fs.Stat(filepath.Join(dir, MarkerDir))
	return err == nil && info.IsDir()
}
