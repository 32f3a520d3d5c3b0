// Package tate: the monoid of terms.
// One TermMonoid exists per algebra view, created at construction time
// with the same lifetime as its owner. Terms form a pre-ordered monoid
// under term multiplication and the owning algebra's term order.

package tate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tate/padic"
	"github.com/katalvlaran/tate/termorder"
)

// TermMonoid is the parent of the monomial-with-coefficient terms of
// one Tate algebra, used for term-order comparisons in Gröbner-style
// computations. Immutable after construction.
type TermMonoid struct {
	algebra  *Algebra
	base     *padic.Field
	field    *padic.Field
	names    []string
	logRadii []int
	order    termorder.Order
}

// newTermMonoid wires a monoid to its owning algebra view. Not exposed:
// inputs were validated by the algebra constructor.
func newTermMonoid(A *Algebra) *TermMonoid {
	return &TermMonoid{
		algebra:  A,
		base:     A.base,
		field:    A.field,
		names:    A.names,
		logRadii: A.logRadii,
		order:    A.order,
	}
}

// AlgebraOfSeries returns the Tate algebra this monoid belongs to.
func (M *TermMonoid) AlgebraOfSeries() *Algebra { return M.algebra }

// BaseRing returns the base ring of the monoid: the owning algebra's.
func (M *TermMonoid) BaseRing() *padic.Field { return M.base }

// VariableNames returns a copy of the variable names, in order.
func (M *TermMonoid) VariableNames() []string { return append([]string(nil), M.names...) }

// LogRadii returns a copy of the log radii of convergence.
func (M *TermMonoid) LogRadii() []int { return append([]int(nil), M.logRadii...) }

// TermOrder returns the term order of the monoid.
func (M *TermMonoid) TermOrder() termorder.Order { return M.order }

// NumGens returns the number of variables.
func (M *TermMonoid) NumGens() int { return len(M.names) }

// Term builds a term of this monoid from a coefficient and an exponent
// tuple. ErrExponentCount is returned when the tuple length differs
// from the number of variables.
func (M *TermMonoid) Term(coeff *padic.Number, exps []int) (*Term, error) {
	if len(exps) != len(M.names) {
		return nil, ErrExponentCount
	}

	return &Term{monoid: M, coeff: coeff, exps: append([]int(nil), exps...)}, nil
}

// one returns the identity term: coefficient one, all exponents zero.
func (M *TermMonoid) one() *Term {
	return &Term{monoid: M, coeff: M.field.One(), exps: make([]int, len(M.names))}
}

// One returns the identity of the monoid.
func (M *TermMonoid) One() *Term { return M.algebra.oneTerm }

// AcceptsCoercionFrom reports whether elements of R embed into this
// monoid. Tagged-variant dispatch:
//
//   - *padic.Field: scalar promotion via the base ring.
//   - *TermMonoid : delegates to the owning algebras' coercion rule.
//   - *Term, *Series: degenerate element probes, delegating to the
//     owning algebra's test against the element's parent.
//
// A monoid never coerces from a full Tate algebra.
func (M *TermMonoid) AcceptsCoercionFrom(R any) bool {
	switch v := R.(type) {
	case *padic.Field:
		return M.base.AcceptsCoercionFrom(v)
	case *TermMonoid:
		if v == nil {
			return false
		}

		return M.algebra.AcceptsCoercionFrom(v.algebra)
	case *Term:
		if v == nil {
			return false
		}

		return M.algebra.AcceptsCoercionFrom(v.monoid.algebra)
	case *Series:
		if v == nil {
			return false
		}

		return M.algebra.AcceptsCoercionFrom(v.algebra)
	default:
		return false
	}
}

// String renders the monoid, e.g.
// "Monoid of terms in x (val >= 0), y (val >= 0) over 2-adic Field with
// capped relative precision 10".
func (M *TermMonoid) String() string {
	vars := make([]string, len(M.names))
	for i, name := range M.names {
		vars[i] = fmt.Sprintf("%s (val >= %d)", name, -M.logRadii[i])
	}

	return fmt.Sprintf("Monoid of terms in %s over %s", strings.Join(vars, ", "), M.base)
}
