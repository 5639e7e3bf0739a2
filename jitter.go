package lexorank

import "math/rand"

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset, so jittered
// operations reproduce their deterministic counterparts exactly.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a helper backed by *rand.Rand:
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// BetweenJitter returns a position strictly between a and b, like
// Between, but picks the decisive byte at a randomized point inside the
// gap instead of its exact middle. This provides collision resistance
// when multiple writers split the same (a, b) gap at the same time.
//
// jitterRange bounds the deviation from the midpoint in alphabet steps;
// the pick never leaves the open interval, so the betweenness and
// validity guarantees of Between are preserved. With NoJitter the
// result is identical to Between. Same validation contract as Between:
// both bounds must be valid and a must sort before b.
func BetweenJitter(a, b string, j Jitter, jitterRange int) string {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	buf := make([]byte, 0, maxLen+1)
	open := false
	for i := 0; i < maxLen; i++ {
		lower := minChar
		if i < len(a) {
			lower = a[i]
		}
		upper := maxChar
		if i < len(b) && !open {
			upper = b[i]
		}
		switch {
		case lower == upper:
			buf = append(buf, lower)
		case upper-lower > 1:
			return string(append(buf, jitterByte(lower, upper, j, jitterRange)))
		default:
			buf = append(buf, lower)
			open = true
		}
	}
	if open {
		buf = append(buf, jitterByte(minChar, maxChar, j, jitterRange))
	}
	return string(buf)
}

// jitterByte picks a byte strictly inside (lower, upper), deviating at
// most jitterRange steps from the truncated midpoint. Requires
// upper-lower > 1, which the callers' decisive branch guarantees.
func jitterByte(lower, upper byte, j Jitter, jitterRange int) byte {
	center := int(avg(lower, upper))
	lo := center - j.IntnRange(0, jitterRange)
	if min := int(lower) + 1; lo < min {
		lo = min
	}
	hi := center + j.IntnRange(0, jitterRange)
	if max := int(upper) - 1; hi > max {
		hi = max
	}
	if hi > lo {
		return byte(j.IntnRange(lo, hi))
	}
	return byte(lo) // degenerate range
}
