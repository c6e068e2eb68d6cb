package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/gotail/internal/app"
	"github.com/specialistvlad/gotail/internal/cli"
	"github.com/specialistvlad/gotail/internal/hcl"
)

// main is the entrypoint for the gotail application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Content goes to outW; usage, diagnostics and logs go to errW.
func run(outW, errW io.Writer, args []string) error {
	ctx := context.Background()

	appConfig, shouldExit, err := cli.Parse(ctx, args, errW, hcl.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	tail := app.NewApp(outW, errW, appConfig)
	_, err = tail.Run(ctx)
	return err
}
