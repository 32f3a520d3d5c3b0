// Package termorder: the Order type, resolution from specification
// strings, and the exponent-tuple comparators.

package termorder

import "errors"

// ErrUnknownOrder is returned by Resolve for an unrecognized
// specification string. Tests MUST check it via errors.Is.
var ErrUnknownOrder = errors.New("termorder: unknown term order")

// Order identifies a monomial order. The zero value is not a valid
// order; use the exported constants or Resolve.
type Order string

const (
	// Lex is the lexicographic order.
	Lex Order = "lex"

	// DegLex is the graded lexicographic order.
	DegLex Order = "deglex"

	// DegRevLex is the graded reverse lexicographic order.
	DegRevLex Order = "degrevlex"
)

// Resolve maps a specification string ("lex", "deglex", "degrevlex")
// to an Order, or reports ErrUnknownOrder.
func Resolve(spec string) (Order, error) {
	switch Order(spec) {
	case Lex, DegLex, DegRevLex:
		return Order(spec), nil
	default:
		return "", ErrUnknownOrder
	}
}

// Description returns the classical display name of the order, e.g.
// "Degree reverse lexicographic term order".
func (o Order) Description() string {
	switch o {
	case Lex:
		return "Lexicographic term order"
	case DegLex:
		return "Degree lexicographic term order"
	case DegRevLex:
		return "Degree reverse lexicographic term order"
	default:
		return "Unknown term order"
	}
}

// Compare compares two exponent tuples under the order: -1 when a < b,
// 0 when equal, +1 when a > b. Tuples of unequal length compare as if
// padded with trailing zeros.
func (o Order) Compare(a, b []int) int {
	switch o {
	case Lex:
		return lexCompare(a, b)
	case DegLex:
		if c := degCompare(a, b); c != 0 {
			return c
		}

		return lexCompare(a, b)
	case DegRevLex:
		if c := degCompare(a, b); c != 0 {
			return c
		}

		return revLexCompare(a, b)
	default:
		return 0
	}
}

// at reads an exponent, treating out-of-range indices as zero.
func at(a []int, i int) int {
	if i < len(a) {
		return a[i]
	}

	return 0
}

// degCompare compares total degrees.
func degCompare(a, b []int) int {
	da, db := 0, 0
	for _, e := range a {
		da += e
	}
	for _, e := range b {
		db += e
	}

	return sign(da - db)
}

// lexCompare: the first differing exponent decides, larger wins.
func lexCompare(a, b []int) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := sign(at(a, i) - at(b, i)); c != 0 {
			return c
		}
	}

	return 0
}

// revLexCompare: the last differing exponent decides, SMALLER wins.
func revLexCompare(a, b []int) int {
	n := max(len(a), len(b))
	for i := n - 1; i >= 0; i-- {
		if c := sign(at(a, i) - at(b, i)); c != 0 {
			return -c
		}
	}

	return 0
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
