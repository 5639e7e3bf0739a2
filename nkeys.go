package lexorank

import "fmt"

// The batch entry points are the validating boundary of the package:
// they check their bounds once, then drive the validation-free
// derivation operations as many times as needed.

// NBetween returns n positions strictly between a and b, in ascending
// order. The gap is split recursively so early results land near the
// middle and keys stay short. Returns an error if either bound is
// invalid or a does not sort before b.
func (l LexoRank) NBetween(a, b string, n uint) ([]string, error) {
	if !l.strategy.IsValid(a) {
		return nil, fmt.Errorf("invalid position: %q", a)
	}
	if !l.strategy.IsValid(b) {
		return nil, fmt.Errorf("invalid position: %q", b)
	}
	if l.strategy.Compare(a, b) >= 0 {
		return nil, fmt.Errorf("%q >= %q", a, b)
	}
	return l.nBetween(a, b, n), nil
}

func (l LexoRank) nBetween(a, b string, n uint) []string {
	if n == 0 {
		return []string{}
	}
	c := l.strategy.Between(a, b)
	if n == 1 {
		return []string{c}
	}
	mid := n / 2
	out := make([]string, 0, n)
	out = append(out, l.nBetween(a, c, mid)...)
	out = append(out, c)
	out = append(out, l.nBetween(c, b, n-mid-1)...)
	return out
}

// NAfter returns n successive positions after pos, in ascending order.
// Returns an error if pos is invalid.
func (l LexoRank) NAfter(pos string, n uint) ([]string, error) {
	if !l.strategy.IsValid(pos) {
		return nil, fmt.Errorf("invalid position: %q", pos)
	}
	out := make([]string, 0, n)
	c := pos
	for i := uint(0); i < n; i++ {
		c = l.strategy.After(c)
		out = append(out, c)
	}
	return out, nil
}

// NBefore returns n successive positions before pos, in ascending
// order (the position closest to pos comes last). Returns an error if
// pos is invalid.
func (l LexoRank) NBefore(pos string, n uint) ([]string, error) {
	if !l.strategy.IsValid(pos) {
		return nil, fmt.Errorf("invalid position: %q", pos)
	}
	out := make([]string, 0, n)
	c := pos
	for i := uint(0); i < n; i++ {
		c = l.strategy.Before(c)
		out = append(out, c)
	}
	reverse(out)
	return out, nil
}

func reverse(values []string) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
