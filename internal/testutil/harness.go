// Package testutil provides shared helpers for end-to-end tests of the tail
// pipeline: fixture files in a temporary directory and captured output.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gotail/internal/app"
	"github.com/specialistvlad/gotail/internal/fsutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcome of a run.
type HarnessResult struct {
	Stdout  string
	Stderr  string
	Summary app.Summary
	Err     error
	Dir     string
}

// WriteFiles creates every file in files under dir. Keys are relative paths.
func WriteFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

// DirOpener opens names relative to dir, so headers and diagnostics show the
// short names a test configured rather than temporary paths.
func DirOpener(dir string, base fsutil.Opener) fsutil.Opener {
	return fsutil.OpenerFunc(func(name string) (fsutil.File, error) {
		f, err := base.Open(filepath.Join(dir, name))
		if err != nil {
			return nil, rename(err, name)
		}
		return f, nil
	})
}

// RunTail writes files to a temporary directory and runs an App over cfg.
// cfg.Files are names relative to that directory. A custom base opener may
// be supplied to inject failures; it receives absolute paths.
func RunTail(t *testing.T, files map[string]string, cfg app.Config, base fsutil.Opener) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	WriteFiles(t, dir, files)

	if cfg.Lines == nil {
		cfg.Lines = app.DefaultLines
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	config, err := app.NewConfig(cfg)
	require.NoError(t, err)

	if base == nil {
		base = fsutil.OS{}
	}

	var (
		stdout = &SafeBuffer{}
		stderr = &SafeBuffer{}
		logs   = &SafeBuffer{}
	)
	a := app.NewApp(stdout, stderr, config,
		app.WithOpener(DirOpener(dir, base)),
		app.WithLogger(NewLogger(logs, cfg.LogLevel)),
	)

	t.Cleanup(func() {
		if os.Getenv("GOTAIL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	sum, runErr := a.Run(context.Background())
	return &HarnessResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Summary: sum,
		Err:     runErr,
		Dir:     dir,
	}
}
