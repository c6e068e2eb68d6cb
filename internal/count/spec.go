// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Spec, the parsed form of a count argument.
//
// Why a sealed interface instead of a plain int64?
//
// A bare `5` and a typed `-5` both mean "the last five units", while `+5`
// means "start at unit five". A signed integer alone cannot tell a zero typed
// as `+0` from a zero typed as `0` or `-0`, and those two must resolve
// differently: the first prints nothing, the second prints the whole input.
// Keeping the variants as distinct types makes Resolve's zero handling an
// explicit branch instead of an arithmetic accident.
package count

import "strconv"

// Sign records how the sign of a count was written.
type Sign int

const (
	// SignDefault means no sign was typed; it anchors from the end.
	SignDefault Sign = iota
	// SignPlus means an explicit `+`; it anchors from the start.
	SignPlus
	// SignMinus means an explicit `-`; it anchors from the end.
	SignMinus
)

// String returns the sign as it would be typed.
func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return ""
	}
}

// Spec is a parsed count specification. Its only implementations are All and
// Anchored.
type Spec interface {
	isSpec()
	String() string
}

// All requests the whole input.
type All struct{}

func (All) isSpec() {}

// String renders All as its canonical token.
func (All) String() string { return "-0" }

// Anchored is a signed count. N is negative when anchored from the end and
// positive (or an explicit zero) when anchored from the start.
type Anchored struct {
	N    int64
	Sign Sign
}

func (Anchored) isSpec() {}

// FromEnd reports whether the count is anchored from the end of the input.
func (a Anchored) FromEnd() bool {
	return a.Sign != SignPlus
}

// String renders the count the way it was typed.
func (a Anchored) String() string {
	mag := uint64(a.N)
	if a.N < 0 {
		mag = uint64(-a.N)
	}
	return a.Sign.String() + strconv.FormatUint(mag, 10)
}
