package count

import "fmt"

// Resolve converts a Spec and the total number of units (lines or bytes) of
// an input into a zero-based start position. ok is false when nothing should
// be emitted.
func Resolve(spec Spec, total int64) (start int64, ok bool) {
	switch s := spec.(type) {
	case All:
		if total > 0 {
			return 0, true
		}
		return 0, false
	case Anchored:
		n := s.N
		if n == 0 || total == 0 {
			return 0, false
		}
		if n > 0 && n > total {
			return 0, false
		}
		if n < 0 {
			// -n would overflow for math.MinInt64, so compare before adding.
			if n < -total {
				return 0, true
			}
			start = total + n
		} else {
			start = n - 1
		}
		if start < 0 {
			start = 0
		}
		return start, true
	default:
		panic(fmt.Sprintf("count: unknown spec type %T", spec))
	}
}
