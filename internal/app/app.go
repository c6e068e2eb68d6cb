package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/gotail/internal/fsutil"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
	opener fsutil.Opener
}

// Option customizes an App.
type Option func(*App)

// WithOpener replaces the file system used to open configured files.
func WithOpener(o fsutil.Opener) Option {
	return func(a *App) {
		a.opener = o
	}
}

// WithLogger replaces the logger built from the config.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

// NewApp is the constructor for the main application. Extracted content goes
// to outW; diagnostics and logs go to errW.
func NewApp(outW, errW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		outW:   outW,
		errW:   errW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, errW),
		config: cfg,
		opener: fsutil.OS{},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger.Debug("App configured.", "files", len(cfg.Files), "byte_mode", cfg.ByteMode(), "quiet", cfg.Quiet)
	return a
}
