package app

import (
	"errors"

	"github.com/specialistvlad/gotail/internal/count"
)

// DefaultLines is the line count used when none is given: the last ten lines.
var DefaultLines = count.MustParse("10")

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Files []string
	Lines count.Spec
	Bytes count.Spec // nil selects line mode for every file
	Quiet bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Files) == 0 {
		return nil, errors.New("at least one file is required")
	}
	if cfg.Lines == nil {
		return nil, errors.New("a line count is required, even in byte mode")
	}
	return &cfg, nil
}

// ByteMode reports whether files are extracted by byte offset.
func (c *Config) ByteMode() bool {
	return c.Bytes != nil
}

// ShowHeaders reports whether per-file headers are printed.
func (c *Config) ShowHeaders() bool {
	return len(c.Files) > 1 && !c.Quiet
}
