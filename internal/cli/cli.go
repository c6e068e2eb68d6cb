package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/gotail/internal/app"
	"github.com/specialistvlad/gotail/internal/config"
	"github.com/specialistvlad/gotail/internal/count"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const defaultLines = "10"

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// loader reads the file named by -config; it may be nil when no config
// support is wanted.
func Parse(ctx context.Context, args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("gotail", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gotail - print the last part of files.

Usage:
  gotail [options] FILE...

Counts:
  NUM or -NUM   the last NUM lines (or bytes)
  +NUM          starting at line (or byte) NUM, counting from 1
  0             the whole file; +0 prints nothing

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		lines, bytes        string
		quiet               bool
		logLevel, logFormat string
		configPath          string
	)
	flagSet.StringVar(&lines, "n", defaultLines, "Number of lines to print.")
	flagSet.StringVar(&lines, "lines", defaultLines, "Number of lines to print (long form).")
	flagSet.StringVar(&bytes, "c", "", "Number of bytes to print. Conflicts with -n.")
	flagSet.StringVar(&bytes, "bytes", "", "Number of bytes to print (long form).")
	flagSet.BoolVar(&quiet, "q", false, "Never print headers giving file names.")
	flagSet.BoolVar(&quiet, "quiet", false, "Never print headers giving file names (long form).")
	flagSet.StringVar(&configPath, "config", "", "Path to an .hcl defaults file or a directory of them.")
	flagSet.StringVar(&logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flagSet.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	linesSet := set["n"] || set["lines"]
	bytesSet := set["c"] || set["bytes"]

	if linesSet && bytesSet {
		return nil, false, &ExitError{Code: 2, Message: "the line count and the byte count cannot be used together"}
	}

	files := flagSet.Args()
	if len(files) == 0 {
		flagSet.Usage()
		return nil, false, &ExitError{Code: 2, Message: "at least one FILE is required"}
	}

	defaults := &config.Defaults{}
	if configPath != "" {
		if loader == nil {
			return nil, false, &ExitError{Code: 2, Message: "config files are not supported"}
		}
		loaded, err := loader.Load(ctx, configPath)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		defaults = loaded
		slog.Debug("Config defaults loaded.", "path", configPath)
	}

	linesToken := defaultLines
	if defaults.Lines != nil {
		linesToken = *defaults.Lines
	}
	if linesSet {
		linesToken = lines
	}

	var bytesToken *string
	switch {
	case bytesSet:
		bytesToken = &bytes
	case !linesSet:
		bytesToken = defaults.Bytes
	}

	if !set["q"] && !set["quiet"] && defaults.Quiet != nil {
		quiet = *defaults.Quiet
	}
	if !set["log-level"] && defaults.LogLevel != nil {
		logLevel = *defaults.LogLevel
	}
	if !set["log-format"] && defaults.LogFormat != nil {
		logFormat = *defaults.LogFormat
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	lineSpec, err := count.Parse(linesToken)
	if err != nil {
		return nil, false, &ExitError{Code: 1, Message: "illegal line count -- " + linesToken}
	}

	var byteSpec count.Spec
	if bytesToken != nil {
		byteSpec, err = count.Parse(*bytesToken)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: "illegal byte count -- " + *bytesToken}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		Files:     files,
		Lines:     lineSpec,
		Bytes:     byteSpec,
		Quiet:     quiet,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "files", len(files), "lines", lineSpec, "byte_mode", byteSpec != nil)
	return cfg, false, nil
}
