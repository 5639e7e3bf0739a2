// Package lexorank generates and compares short string keys ("positions")
// that express a total order over items in a list. Inserting an item
// before, after, or between existing items only ever allocates a new key;
// neighboring keys are never rewritten, which makes the scheme suitable
// for drag-and-drop reordering and collaborative ranking on top of any
// store that can sort strings.
//
// Positions are opaque strings over the printable ASCII alphabet
// (code points 32 through 126) and are ordered by plain byte-wise
// lexicographic comparison.
package lexorank

// Strategy is the contract a ranking algorithm implements. Positions are
// compared and derived purely as byte sequences; a Strategy holds no
// state and its methods are safe for concurrent use.
//
// Before, After and Between perform no validation and assume well-formed
// input. Callers validate with IsValid, typically once per batch rather
// than once per call; the derivation methods deliberately do not pay
// that cost. Their results are unspecified for malformed input.
type Strategy interface {
	// Compare orders two positions byte-wise, returning -1, 0 or 1 as
	// a sorts before, equal to, or after b.
	Compare(a, b string) int

	// IsValid reports whether pos is a well-formed position.
	IsValid(pos string) bool

	// Before returns a new position sorting immediately before pos.
	Before(pos string) string

	// After returns a new position sorting immediately after pos.
	After(pos string) string

	// Between returns a new position sorting strictly between a and b.
	// Requires Compare(a, b) < 0.
	Between(a, b string) string
}

// Kind selects which ranking algorithm backs a LexoRank. The set is
// closed; adding an algorithm family means adding a Kind value and an
// implementation of Strategy, nothing else changes.
type Kind uint8

const (
	// KindFigma is the printable-ASCII midpoint strategy described in
	// Figma's writeup on multiplayer list ordering. It is the default
	// and currently the only implemented kind.
	KindFigma Kind = iota
)

// LexoRank is a facade over one ranking strategy chosen at construction
// time. The forwarding methods expose the Strategy contract without
// callers naming a concrete implementation.
type LexoRank struct {
	kind     Kind
	strategy Strategy
}

// New returns a LexoRank backed by the strategy for the given kind.
// Unknown kinds fall back to KindFigma, the default.
func New(kind Kind) LexoRank {
	switch kind {
	case KindFigma:
		return LexoRank{kind: kind, strategy: figmaStrategy{}}
	default:
		return LexoRank{kind: KindFigma, strategy: figmaStrategy{}}
	}
}

// Default returns a LexoRank backed by the default strategy, KindFigma.
func Default() LexoRank {
	return New(KindFigma)
}

// Kind returns the kind this LexoRank was constructed with.
func (l LexoRank) Kind() Kind {
	return l.kind
}

// Compare orders two positions byte-wise, returning -1, 0 or 1 as
// a sorts before, equal to, or after b.
func (l LexoRank) Compare(a, b string) int {
	return l.strategy.Compare(a, b)
}

// IsValid reports whether pos is a well-formed position.
func (l LexoRank) IsValid(pos string) bool {
	return l.strategy.IsValid(pos)
}

// Before returns a new position sorting immediately before pos.
// pos must be valid; see Strategy for the validation contract.
func (l LexoRank) Before(pos string) string {
	return l.strategy.Before(pos)
}

// After returns a new position sorting immediately after pos.
// pos must be valid; see Strategy for the validation contract.
func (l LexoRank) After(pos string) string {
	return l.strategy.After(pos)
}

// Between returns a new position sorting strictly between a and b.
// Both must be valid and a must sort before b; see Strategy for the
// validation contract.
func (l LexoRank) Between(a, b string) string {
	return l.strategy.Between(a, b)
}
