// Package poly: the Ring parent type.

package poly

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tate/padic"
	"github.com/katalvlaran/tate/termorder"
)

// Ring is a commutative polynomial ring over a p-adic field with named
// variables and a fixed term order. Rings are immutable after
// construction; accessors copy mutable state out.
type Ring struct {
	base  *padic.Field
	names []string
	order termorder.Order
}

// NewRing constructs a polynomial ring over base with the given
// variable names and term order. Names must be unique non-empty
// symbols.
func NewRing(base *padic.Field, names []string, order termorder.Order) (*Ring, error) {
	if base == nil {
		return nil, ErrNilBase
	}
	if len(names) == 0 {
		return nil, ErrNoVariables
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return nil, ErrBadVariable
		}
		if _, dup := seen[name]; dup {
			return nil, ErrBadVariable
		}
		seen[name] = struct{}{}
	}

	return &Ring{base: base, names: append([]string(nil), names...), order: order}, nil
}

// BaseRing returns the coefficient field of the ring.
func (R *Ring) BaseRing() *padic.Field { return R.base }

// VariableNames returns a copy of the variable names, in order.
func (R *Ring) VariableNames() []string { return append([]string(nil), R.names...) }

// Order returns the term order of the ring.
func (R *Ring) Order() termorder.Order { return R.order }

// NumGens returns the number of variables.
func (R *Ring) NumGens() int { return len(R.names) }

// ChangeBaseRing returns the ring with the same variables and order
// over another coefficient field.
func (R *Ring) ChangeBaseRing(base *padic.Field) (*Ring, error) {
	return NewRing(base, R.names, R.order)
}

// Zero returns the zero polynomial.
func (R *Ring) Zero() *Polynomial { return &Polynomial{ring: R} }

// Constant returns the constant polynomial with the given coefficient.
func (R *Ring) Constant(c *padic.Number) *Polynomial {
	if c == nil || c.IsZero() {
		return R.Zero()
	}

	return &Polynomial{ring: R, terms: []Monomial{{Coeff: c, Exps: make([]int, len(R.names))}}}
}

// Monomial returns the one-term polynomial c·X^exps, or
// ErrExponentCount when the tuple length differs from the number of
// variables.
func (R *Ring) Monomial(c *padic.Number, exps []int) (*Polynomial, error) {
	if len(exps) != len(R.names) {
		return nil, ErrExponentCount
	}
	if c == nil || c.IsZero() {
		return R.Zero(), nil
	}

	return &Polynomial{ring: R, terms: []Monomial{{Coeff: c, Exps: append([]int(nil), exps...)}}}, nil
}

// Gen returns the i-th variable as a polynomial, or ErrGenIndex when i
// is outside [0, NumGens()).
func (R *Ring) Gen(i int) (*Polynomial, error) {
	if i < 0 || i >= len(R.names) {
		return nil, ErrGenIndex
	}
	exps := make([]int, len(R.names))
	exps[i] = 1

	return &Polynomial{ring: R, terms: []Monomial{{Coeff: R.base.One(), Exps: exps}}}, nil
}

// Gens returns all variables as polynomials, in order.
func (R *Ring) Gens() []*Polynomial {
	gens := make([]*Polynomial, len(R.names))
	for i := range R.names {
		gens[i], _ = R.Gen(i)
	}

	return gens
}

// String renders the ring, e.g.
// "Multivariate Polynomial Ring in x, y over 2-adic Field …".
func (R *Ring) String() string {
	return fmt.Sprintf("Multivariate Polynomial Ring in %s over %s", strings.Join(R.names, ", "), R.base)
}
