package lexorank

import "strings"

// Alphabet bounds. Positions are byte strings over the printable ASCII
// range; minChar may appear anywhere except the last byte, where it
// would be redundant (a position ending in minChar orders the same as
// the position with that byte stripped).
const (
	minChar byte = 32  // ' '
	maxChar byte = 126 // '~'
)

// figmaStrategy derives positions by byte arithmetic: decrement or
// increment in place while there is headroom, take midpoints when
// splitting a gap, and grow the string by one byte only when a gap has
// no room left at its current length.
type figmaStrategy struct{}

// avg truncates toward zero. When upper == lower+1 the result equals
// lower, which Between treats as "no room" rather than a midpoint.
func avg(lower, upper byte) byte {
	return (lower + upper) / 2
}

func (figmaStrategy) Compare(a, b string) int {
	return strings.Compare(a, b)
}

func (figmaStrategy) IsValid(pos string) bool {
	if pos == "" || pos[len(pos)-1] == minChar {
		return false
	}
	for i := 0; i < len(pos); i++ {
		if pos[i] < minChar || pos[i] > maxChar {
			return false
		}
	}
	return true
}

func (figmaStrategy) Before(pos string) string {
	for i := len(pos) - 1; i >= 0; i-- {
		if pos[i] > minChar+1 {
			return pos[:i] + string(pos[i]-1)
		}
	}
	// Every byte is at or one above the minimum, so decrementing any
	// of them in place would produce a trailing minChar or leave the
	// alphabet. Drop the last byte and extend with the widest pair,
	// keeping the result below pos with maximal room under it.
	return pos[:len(pos)-1] + string(minChar) + string(maxChar)
}

func (figmaStrategy) After(pos string) string {
	for i := len(pos) - 1; i >= 0; i-- {
		if pos[i] < maxChar {
			return pos[:i] + string(pos[i]+1)
		}
	}
	// All bytes are maxChar already; grow by one byte just above the
	// minimum, leaving maximal room above the result.
	return pos + string(minChar+1)
}

func (figmaStrategy) Between(a, b string) string {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	buf := make([]byte, 0, maxLen+1)
	// Once a byte of a and b differs by exactly one there is no room
	// against b at that depth; from then on the upper bound is open
	// toward maxChar regardless of b's remaining bytes.
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
			// The decisive byte: strictly inside the gap, with
			// room on both sides. Everything after it is dropped.
			return string(append(buf, avg(lower, upper)))
		default:
			buf = append(buf, lower)
			open = true
		}
	}
	if open {
		// No decisive byte was found at any shared depth; grow by
		// one byte in the middle of the full alphabet.
		buf = append(buf, avg(minChar, maxChar))
	}
	return string(buf)
}
