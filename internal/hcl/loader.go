package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gotail/internal/config"
	"github.com/specialistvlad/gotail/internal/ctxlog"
	"github.com/specialistvlad/gotail/internal/fsutil"
)

// Loader implements config.Loader for HCL files.
type Loader struct{}

// NewLoader returns an HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every .hcl file found under paths and merges them in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Defaults, error) {
	logger := ctxlog.FromContext(ctx)
	merged := &config.Defaults{}
	parser := hclparse.NewParser()

	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find config files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No .hcl config files found in path.", "path", path)
			continue
		}

		for _, file := range files {
			defaults, err := l.loadFile(parser, file)
			if err != nil {
				return nil, err
			}
			logger.Debug("Config file loaded.", "path", file)
			merged.Merge(defaults)
		}
	}

	return merged, nil
}

// loadFile parses and translates a single file.
func (l *Loader) loadFile(parser *hclparse.Parser, filePath string) (*config.Defaults, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed fileSchema
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	defaults, diags := translate(&parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid config in %s: %w", filePath, diags)
	}
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", filePath, err)
	}
	return defaults, nil
}

// translate converts the HCL-specific schema into the agnostic model.
func translate(f *fileSchema) (*config.Defaults, hcl.Diagnostics) {
	var (
		d     = &config.Defaults{}
		diags hcl.Diagnostics
	)
	if f.Tail != nil {
		var countDiags hcl.Diagnostics
		d.Lines, countDiags = countToken(f.Tail.Lines, "lines")
		diags = append(diags, countDiags...)
		d.Bytes, countDiags = countToken(f.Tail.Bytes, "bytes")
		diags = append(diags, countDiags...)
		d.Quiet = f.Tail.Quiet
	}
	if f.Log != nil {
		d.LogLevel = f.Log.Level
		d.LogFormat = f.Log.Format
	}
	return d, diags
}
