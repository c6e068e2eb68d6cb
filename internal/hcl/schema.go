package hcl

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of a defaults file for decoding.
type fileSchema struct {
	Tail *tailBlock `hcl:"tail,block"`
	Log  *logBlock  `hcl:"log,block"`
}

// tailBlock keeps the counts as expressions so that both `lines = 20` and
// `lines = "+20"` are accepted.
type tailBlock struct {
	Lines hcl.Expression `hcl:"lines,optional"`
	Bytes hcl.Expression `hcl:"bytes,optional"`
	Quiet *bool          `hcl:"quiet,optional"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}
