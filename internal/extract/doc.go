// Package extract implements the second pass of a tail: given the extent
// computed by the scanner, it emits the selected suffix of an input either
// line by line or by seeking straight to a byte offset.
//
// Both extractors resolve their start position with count.Resolve and write
// through a lossy UTF-8 writer, so invalid input bytes never cause an error.
package extract
