// Package tate: the Algebra parent type.
// This file declares Algebra, its internal constructor (reached only
// through New and the interning registry), the generator accessors, the
// integer-ring twin wiring, the coercion test, the pushout rule and the
// random sampler.

package tate

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tate/padic"
	"github.com/katalvlaran/tate/poly"
	"github.com/katalvlaran/tate/termorder"
)

// Algebra is a Tate algebra over a p-adic field, or the ring of
// integers of one (the series bounded by 1 on the polydisc). Instances
// are canonically interned: never constructed directly, immutable once
// built, alive for the process lifetime.
//
// A full algebra and its integer-ring view hold mutual back-references,
// established once at construction and never reassigned. Variable
// names, radii, order and the precision cap are identical between the
// two views; only the base ring differs (field vs its valuation ring).
type Algebra struct {
	field    *padic.Field // always the fraction field
	base     *padic.Field // field, or its integer ring when integral
	cap      int          // precision cap, uniformizer units
	logRadii []int
	names    []string
	order    termorder.Order
	integral bool

	polyring *poly.Ring
	intpoly  *poly.Ring // same ring over the valuation ring, feeds the sampler
	terms    *TermMonoid
	oneTerm  *Term
	gens     []*Series

	integers *Algebra // the integer-ring view (self, when integral)
	fullAlg  *Algebra // the full-algebra view (self, when not integral)
}

// newAlgebra builds the full algebra together with its integer-ring
// twin. Inputs are already validated and normalized by the key builder.
func newAlgebra(field *padic.Field, prec int, radii []int, names []string, order termorder.Order) *Algebra {
	full := &Algebra{field: field, base: field, cap: prec, logRadii: radii, names: names, order: order}
	twin := &Algebra{field: field, base: field.IntegerRing(), cap: prec, logRadii: radii, names: names, order: order, integral: true}
	full.integers, twin.integers = twin, twin
	full.fullAlg, twin.fullAlg = full, full

	// Both views share the polynomial rings; each owns its term monoid.
	full.polyring = mustRing(field, names, order)
	twin.polyring = full.polyring
	full.intpoly = mustRing(field.IntegerRing(), names, order)
	twin.intpoly = full.intpoly
	full.terms = newTermMonoid(full)
	twin.terms = newTermMonoid(twin)
	full.oneTerm = full.terms.one()
	twin.oneTerm = twin.terms.one()

	// Generator i of the full algebra is the i-th indeterminate; the
	// integral generator is pre-scaled by uniformizer^radius so its term
	// valuation is exactly zero.
	full.gens = make([]*Series, len(names))
	twin.gens = make([]*Series, len(names))
	one := field.One()
	for i := range names {
		exps := make([]int, len(names))
		exps[i] = 1
		full.gens[i] = newSeries(full, []*Term{{monoid: full.terms, coeff: one, exps: exps}}, prec)
		twin.gens[i] = newSeries(twin, []*Term{{monoid: twin.terms, coeff: one.ShiftVal(radii[i]), exps: exps}}, prec)
	}

	return full
}

// Gen returns the n-th generator, or ErrGeneratorIndex when n is
// outside [0, NumGens()).
func (A *Algebra) Gen(n int) (*Series, error) {
	if n < 0 || n >= len(A.gens) {
		return nil, ErrGeneratorIndex
	}

	return A.gens[n], nil
}

// Gens returns the ordered generator sequence.
func (A *Algebra) Gens() []*Series { return append([]*Series(nil), A.gens...) }

// NumGens returns the number of generators (variables).
func (A *Algebra) NumGens() int { return len(A.gens) }

// One returns the distinguished one-term of the algebra.
func (A *Algebra) One() *Term { return A.oneTerm }

// VariableNames returns a copy of the variable names, in order.
func (A *Algebra) VariableNames() []string { return append([]string(nil), A.names...) }

// LogRadii returns a copy of the log radii of convergence, one per
// variable.
func (A *Algebra) LogRadii() []int { return append([]int(nil), A.logRadii...) }

// TermOrder returns the monomial order used to break ties among terms
// of equal coefficient valuation.
func (A *Algebra) TermOrder() termorder.Order { return A.order }

// PrecisionCap returns the precision cap: the truncation precision used
// when an exact object must be cut to perform arithmetic. Caps are
// always finite positive integers (the padic layer has no unbounded
// precision), so pushout rescaling is plain integer multiplication.
func (A *Algebra) PrecisionCap() int { return A.cap }

// Field returns the base field: always the fraction field, even for the
// integer-ring view.
func (A *Algebra) Field() *padic.Field { return A.field }

// BaseRing returns the base ring: the field for the full algebra, its
// valuation ring for the integer-ring view.
func (A *Algebra) BaseRing() *padic.Field { return A.base }

// Characteristic returns the characteristic of the algebra (zero).
func (A *Algebra) Characteristic() *big.Int { return A.base.Characteristic() }

// IsIntegral reports whether this is the integer-ring view.
func (A *Algebra) IsIntegral() bool { return A.integral }

// IntegerRing returns the ring of integers of the algebra: the series
// bounded by 1 on the domain of convergence. Returns the receiver when
// already integral.
func (A *Algebra) IntegerRing() *Algebra { return A.integers }

// FullAlgebra returns the full Tate algebra this view belongs to.
// Returns the receiver when not integral.
func (A *Algebra) FullAlgebra() *Algebra { return A.fullAlg }

// MonoidOfTerms returns the monoid of terms of the algebra.
func (A *Algebra) MonoidOfTerms() *TermMonoid { return A.terms }

// PolynomialRing returns the underlying polynomial ring the generators
// wrap.
func (A *Algebra) PolynomialRing() *poly.Ring { return A.polyring }

// Zero returns the zero series of the algebra.
func (A *Algebra) Zero() *Series { return newSeries(A, nil, A.cap) }

// Constant returns the series equal to the given scalar.
func (A *Algebra) Constant(c *padic.Number) *Series {
	if c == nil || c.IsZero() {
		return A.Zero()
	}

	return newSeries(A, []*Term{{monoid: A.terms, coeff: c, exps: make([]int, len(A.names))}}, A.cap)
}

// FromPolynomial wraps a polynomial of the underlying ring (or of a
// base change of it) as a series at the algebra's precision cap, or
// reports ErrForeignPolynomial. Use Truncate for an explicit precision.
func (A *Algebra) FromPolynomial(p *poly.Polynomial) (*Series, error) {
	if p == nil {
		return nil, ErrForeignPolynomial
	}
	ring := p.Ring()
	if ring.BaseRing().FractionField() != A.field || ring.NumGens() != len(A.names) {
		return nil, ErrForeignPolynomial
	}
	for i, name := range ring.VariableNames() {
		if name != A.names[i] {
			return nil, ErrForeignPolynomial
		}
	}
	monomials := p.Terms()
	terms := make([]*Term, 0, len(monomials))
	for _, m := range monomials {
		terms = append(terms, &Term{monoid: A.terms, coeff: m.Coeff, exps: m.Exps})
	}

	return newSeries(A, terms, A.cap), nil
}

// AcceptsCoercionFrom reports whether elements of R embed canonically
// into A. The check is an explicit tagged-variant dispatch:
//
//   - *padic.Field: scalar promotion, delegates to the base ring.
//   - *Algebra, *TermMonoid: structural checks, the base rings must coerce,
//     variable names must match in content and order, term orders must
//     be equal, and radius[i] == ratio·R.radius[i] must hold exactly for
//     every i, with ratio the integer quotient of absolute ramification
//     indices.
//
// Anything else is rejected. Never an error, a plain boolean.
func (A *Algebra) AcceptsCoercionFrom(R any) bool {
	switch v := R.(type) {
	case *padic.Field:
		return A.base.AcceptsCoercionFrom(v)
	case *Algebra:
		if v == nil {
			return false
		}

		return A.coercesFromStructure(v.base, v.names, v.order, v.logRadii)
	case *TermMonoid:
		if v == nil {
			return false
		}

		return A.coercesFromStructure(v.algebra.base, v.names, v.order, v.logRadii)
	default:
		return false
	}
}

// coercesFromStructure implements the structural branch of the coercion
// rule shared by algebras and term monoids.
func (A *Algebra) coercesFromStructure(base *padic.Field, names []string, order termorder.Order, radii []int) bool {
	if !A.base.AcceptsCoercionFrom(base) {
		return false
	}
	if len(names) != len(A.names) || A.order != order {
		return false
	}
	for i, name := range A.names {
		if names[i] != name {
			return false
		}
	}
	ratio := A.base.AbsoluteE() / base.AbsoluteE()
	for i, r := range A.logRadii {
		if r != ratio*radii[i] {
			return false
		}
	}

	return true
}

// PushoutWith returns the smallest common extension algebra of A and a
// p-adic field or ring R, or (nil, false) when the base fields admit no
// pushout. The precision cap and every radius are rescaled by the
// ramification ratio; names and order are preserved. When the pushed-out
// base is a ring rather than a field, the integer-ring view is returned.
//
// Combining two full Tate algebras is deliberately unsupported: "no
// pushout" rather than an error.
func (A *Algebra) PushoutWith(R *padic.Field) (*Algebra, bool) {
	base, ok := A.base.PushoutWith(R)
	if !ok {
		return nil, false
	}
	ratio := base.AbsoluteE() / A.base.AbsoluteE()
	radii := make([]int, len(A.logRadii))
	for i, r := range A.logRadii {
		radii[i] = ratio * r
	}
	B, err := New(base, A.names,
		WithPrecision(ratio*A.cap),
		WithLogRadii(radii...),
		WithOrder(A.order))
	if err != nil {
		return nil, false
	}
	if base.IsField() {
		return B, true
	}

	return B.IntegerRing(), true
}

// Contains reports whether the series lies in A. A series of the same
// family (or of an algebra that coerces in) always lies in the full
// algebra; it lies in the integer ring iff every term satisfies
// val(coeff) − Σ expᵢ·radiusᵢ ≥ 0.
func (A *Algebra) Contains(f *Series) bool {
	if f == nil {
		return false
	}
	if f.algebra.fullAlg != A.fullAlg && !A.AcceptsCoercionFrom(f.algebra) {
		return false
	}
	if !A.integral {
		return true
	}
	for _, t := range f.terms {
		if t.Valuation() < 0 {
			return false
		}
	}

	return true
}

// RandomElement samples a random series: a random sparse polynomial of
// bounded total degree, evaluated at the integral generators and
// truncated to the requested precision. Coefficients come from the ring
// of integers when Integral is set or the algebra itself is integral.
// The result is structurally valid, never reproducible; no seeding
// contract exists.
func (A *Algebra) RandomElement(opts *RandomOptions) *Series {
	o := DefaultRandomOptions()
	if opts != nil {
		o = *opts
	}
	rng := rand.New(rand.NewSource(rand.Int63()))

	ring := A.polyring
	if o.Integral || A.integral {
		ring = A.intpoly
	}
	p := ring.Random(o.Degree, o.Terms, rng)

	prec := o.Precision
	if prec <= 0 {
		prec = A.cap
	}

	// Evaluating at the integral generators X_i ↦ π^{r_i}·X_i rescales
	// each coefficient by the radius pairing of its exponents.
	monomials := p.Terms()
	terms := make([]*Term, 0, len(monomials))
	for _, m := range monomials {
		terms = append(terms, &Term{
			monoid: A.terms,
			coeff:  m.Coeff.ShiftVal(dot(m.Exps, A.logRadii)),
			exps:   m.Exps,
		})
	}

	return newSeries(A, terms, prec)
}

// String renders the algebra in the classical form, e.g.
// "Tate Algebra in x (val >= 0), y (val >= 0) over 2-adic Field with
// capped relative precision 10"; the integer-ring view carries the
// "Integer ring of the " prefix. Note the sign: the displayed bound is
// the negated log radius.
func (A *Algebra) String() string {
	vars := make([]string, len(A.names))
	for i, name := range A.names {
		vars[i] = fmt.Sprintf("%s (val >= %d)", name, -A.logRadii[i])
	}
	s := fmt.Sprintf("Tate Algebra in %s over %s", strings.Join(vars, ", "), A.field)
	if A.integral {
		return "Integer ring of the " + s
	}

	return s
}

// mustRing builds a polynomial ring from inputs the key builder
// already validated; a failure here is a programmer error.
func mustRing(base *padic.Field, names []string, order termorder.Order) *poly.Ring {
	R, err := poly.NewRing(base, names, order)
	if err != nil {
		panic(err)
	}

	return R
}

// dot pairs an exponent tuple with the radius vector.
func dot(exps, radii []int) int {
	d := 0
	for i, e := range exps {
		d += e * radii[i]
	}

	return d
}
