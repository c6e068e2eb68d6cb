package config

import "errors"

// ErrLinesAndBytes is returned when a configuration sets both a line count
// and a byte count.
var ErrLinesAndBytes = errors.New("lines and bytes are mutually exclusive")

// Defaults holds values a configuration file may provide. A nil field was
// not set and leaves the built-in default in place.
type Defaults struct {
	Lines *string
	Bytes *string
	Quiet *bool

	LogLevel  *string
	LogFormat *string
}

// Merge overlays every field set in other onto d. Setting a line count
// clears an inherited byte count and vice versa, so the newest file decides
// the mode.
func (d *Defaults) Merge(other *Defaults) {
	if other == nil {
		return
	}
	if other.Lines != nil {
		d.Lines = other.Lines
		d.Bytes = nil
	}
	if other.Bytes != nil {
		d.Bytes = other.Bytes
		if other.Lines == nil {
			d.Lines = nil
		}
	}
	if other.Quiet != nil {
		d.Quiet = other.Quiet
	}
	if other.LogLevel != nil {
		d.LogLevel = other.LogLevel
	}
	if other.LogFormat != nil {
		d.LogFormat = other.LogFormat
	}
}

// Validate reports inconsistent settings within a single source.
func (d *Defaults) Validate() error {
	if d.Lines != nil && d.Bytes != nil {
		return ErrLinesAndBytes
	}
	return nil
}
