package count

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrSyntax is wrapped by InvalidCountError when a token does not match the
// count grammar.
var ErrSyntax = errors.New("count must match [+-]digits")

// countRegex captures an optional sign and the digits of a count.
var countRegex = regexp.MustCompile(`^([+-])?(\d+)$`)

// InvalidCountError reports a count token that could not be parsed.
type InvalidCountError struct {
	Token string
	Err   error
}

// Error returns the offending token, which is what the command line reports
// after its "illegal line count -- " prefix.
func (e *InvalidCountError) Error() string {
	return e.Token
}

// Unwrap returns the underlying cause.
func (e *InvalidCountError) Unwrap() error {
	return e.Err
}

// Parse converts a count token into a Spec.
//
// A missing sign is treated as `-`. A zero anchored from the end (`0` or
// `-0`) yields All, while an explicit `+0` yields Anchored{N: 0}, which
// resolves to nothing.
func Parse(token string) (Spec, error) {
	matches := countRegex.FindStringSubmatch(token)
	if matches == nil {
		return nil, &InvalidCountError{Token: token, Err: ErrSyntax}
	}

	sign := SignDefault
	switch matches[1] {
	case "+":
		sign = SignPlus
	case "-":
		sign = SignMinus
	}

	// Parsing the signed form keeps math.MinInt64 reachable and rejects
	// anything past the int64 range instead of clamping it.
	signed := "-" + matches[2]
	if sign == SignPlus {
		signed = matches[2]
	}
	n, err := strconv.ParseInt(signed, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return nil, &InvalidCountError{Token: token, Err: err}
	}

	if sign != SignPlus && n == 0 {
		return All{}, nil
	}
	return Anchored{N: n, Sign: sign}, nil
}

// MustParse is like Parse but panics on error. It is intended for constants
// and tests.
func MustParse(token string) Spec {
	s, err := Parse(token)
	if err != nil {
		panic(fmt.Sprintf("count: invalid token %q: %v", token, err))
	}
	return s
}
