// Package padic: the Field parent type.
// This file declares Field, its constructors (NewField, NewRing), the
// extension builders, the twin fraction-field / integer-ring views, and
// the structural predicates (coercion, pushout) the Tate algebra layer
// relies on.

package padic

import (
	"fmt"
	"math/big"
)

// fieldKind distinguishes how a Field was built; it only affects display.
type fieldKind int

const (
	kindBase fieldKind = iota
	kindUnramified
	kindEisenstein
	kindComposite
)

// Field is a p-adic field, or the valuation ring of one, at capped
// relative precision. The same numeric data backs both views: a Field
// and its twin returned by FractionField / IntegerRing differ only in
// the ring/field flag and always reference each other.
//
// Valuations, radii and precision caps are all expressed in uniformizer
// units: val(π) = 1, hence val(p) = AbsoluteE().
type Field struct {
	p    *big.Int
	prec int // precision cap, uniformizer units
	e    int // absolute ramification index
	f    int // absolute residue degree
	kind fieldKind
	gen  string // extension generator name; empty for Q_p / Z_p

	field    bool
	fraction *Field
	integers *Field
}

// newPair allocates the field view and the ring view of one p-adic
// field and wires the mutual twin references. All constructors funnel
// through here.
func newPair(p *big.Int, prec, e, f int, kind fieldKind, gen string) (*Field, *Field) {
	fld := &Field{p: p, prec: prec, e: e, f: f, kind: kind, gen: gen, field: true}
	rng := &Field{p: p, prec: prec, e: e, f: f, kind: kind, gen: gen, field: false}
	fld.fraction, fld.integers = fld, rng
	rng.fraction, rng.integers = fld, rng

	return fld, rng
}

// NewField returns the p-adic field Q_p with the given precision cap.
// Complexity: O(1)
func NewField(p int64, prec int) (*Field, error) {
	if p < 2 {
		return nil, ErrBadPrime
	}
	if prec < 1 {
		return nil, ErrBadPrecision
	}
	fld, _ := newPair(big.NewInt(p), prec, 1, 1, kindBase, "")

	return fld, nil
}

// NewRing returns the p-adic ring Z_p with the given precision cap.
// Complexity: O(1)
func NewRing(p int64, prec int) (*Field, error) {
	fld, err := NewField(p, prec)
	if err != nil {
		return nil, err
	}

	return fld.integers, nil
}

// UnramifiedExtension returns the unramified extension of this field of
// the given residue degree, generated by a root named gen. The view
// (field vs ring) of the receiver is preserved. The uniformizer, and
// therefore the precision cap, is unchanged.
func (K *Field) UnramifiedExtension(degree int, gen string) (*Field, error) {
	if degree < 1 {
		return nil, ErrBadDegree
	}
	if gen == "" {
		return nil, ErrBadName
	}
	kind := kindUnramified
	if K.kind != kindBase {
		kind = kindComposite
	}
	fld, rng := newPair(K.p, K.prec, K.e, K.f*degree, kind, gen)
	if K.field {
		return fld, nil
	}

	return rng, nil
}

// EisensteinExtension returns a totally ramified extension of this
// field of the given degree, generated by a uniformizer named gen with
// gen^degree = p (up to a unit). The precision cap, being counted in
// uniformizer units, scales by the degree.
func (K *Field) EisensteinExtension(degree int, gen string) (*Field, error) {
	if degree < 1 {
		return nil, ErrBadDegree
	}
	if gen == "" {
		return nil, ErrBadName
	}
	kind := kindEisenstein
	if K.kind != kindBase {
		kind = kindComposite
	}
	fld, rng := newPair(K.p, K.prec*degree, K.e*degree, K.f, kind, gen)
	if K.field {
		return fld, nil
	}

	return rng, nil
}

// FractionField returns the field view of this p-adic field. Calling it
// on a field returns the receiver itself.
func (K *Field) FractionField() *Field { return K.fraction }

// IntegerRing returns the valuation-ring view of this p-adic field.
// Calling it on a ring returns the receiver itself.
func (K *Field) IntegerRing() *Field { return K.integers }

// IsField reports whether this is the field view (true) or the
// valuation-ring view (false).
func (K *Field) IsField() bool { return K.field }

// Prime returns the residue characteristic p.
func (K *Field) Prime() *big.Int { return new(big.Int).Set(K.p) }

// PrecisionCap returns the relative precision cap, in uniformizer units.
func (K *Field) PrecisionCap() int { return K.prec }

// AbsoluteE returns the absolute ramification index: the valuation of p
// in uniformizer units.
func (K *Field) AbsoluteE() int { return K.e }

// AbsoluteF returns the absolute residue degree.
func (K *Field) AbsoluteF() int { return K.f }

// Degree returns the absolute degree e·f over Q_p.
func (K *Field) Degree() int { return K.e * K.f }

// Characteristic returns the characteristic of the field, which is
// always zero in mixed characteristic.
func (K *Field) Characteristic() *big.Int { return big.NewInt(0) }

// AcceptsCoercionFrom reports whether elements of R embed canonically
// into K: same residue characteristic, R's ramification index and
// residue degree divide K's, and a ring never accepts a field.
// Never an error: incompatibility is simply false.
func (K *Field) AcceptsCoercionFrom(R *Field) bool {
	if R == nil {
		return false
	}
	if K.p.Cmp(R.p) != 0 {
		return false
	}
	if K.e%R.e != 0 || K.f%R.f != 0 {
		return false
	}
	// A valuation ring only accepts other valuation rings.
	return K.field || !R.field
}

// PushoutWith returns the smallest common extension of K and R, or
// (nil, false) when none exists (distinct residue characteristics).
// The ramification index and residue degree are the lcm of the
// operands'; the result is a field iff either operand is; the precision
// cap is the larger of the operands' caps rescaled to the new
// uniformizer.
func (K *Field) PushoutWith(R *Field) (*Field, bool) {
	if R == nil {
		return nil, false
	}
	if K.p.Cmp(R.p) != 0 {
		return nil, false
	}
	e := lcm(K.e, R.e)
	f := lcm(K.f, R.f)
	prec := max(K.prec*(e/K.e), R.prec*(e/R.e))

	// Reuse an operand when it already is the compositum.
	isField := K.field || R.field
	if cand, ok := pushoutOperand(K, e, f, prec, isField); ok {
		return cand, true
	}
	if cand, ok := pushoutOperand(R, e, f, prec, isField); ok {
		return cand, true
	}

	kind := kindComposite
	switch {
	case K.kind == kindBase:
		kind = R.kind
	case R.kind == kindBase:
		kind = K.kind
	}
	gen := K.gen
	if gen == "" {
		gen = R.gen
	}
	fld, rng := newPair(K.p, prec, e, f, kind, gen)
	if isField {
		return fld, true
	}

	return rng, true
}

// pushoutOperand reports whether the operand already realizes the
// compositum parameters, returning the correctly flavored view.
func pushoutOperand(K *Field, e, f, prec int, isField bool) (*Field, bool) {
	if K.e != e || K.f != f || K.prec != prec {
		return nil, false
	}
	if isField {
		return K.fraction, true
	}

	return K.integers, true
}

// CanonicalKey returns a string fingerprint identifying this field
// structurally. Two fields with equal keys are interchangeable as Tate
// algebra bases; the algebra registry keys on this value.
func (K *Field) CanonicalKey() string {
	return fmt.Sprintf("p=%s;e=%d;f=%d;prec=%d;field=%t", K.p, K.e, K.f, K.prec, K.field)
}

// String renders the field in the classical form, e.g.
// "2-adic Field with capped relative precision 10".
func (K *Field) String() string {
	flavor := "Ring"
	if K.field {
		flavor = "Field"
	}
	switch K.kind {
	case kindUnramified:
		return fmt.Sprintf("%s-adic Unramified Extension %s in %s of residue degree %d", K.p, flavor, K.gen, K.f)
	case kindEisenstein:
		return fmt.Sprintf("%s-adic Eisenstein Extension %s in %s of degree %d", K.p, flavor, K.gen, K.e)
	case kindComposite:
		return fmt.Sprintf("%s-adic Extension %s of ramification index %d and residue degree %d", K.p, flavor, K.e, K.f)
	default:
		return fmt.Sprintf("%s-adic %s with capped relative precision %d", K.p, flavor, K.prec)
	}
}

// gcd computes the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm computes the least common multiple of two positive integers.
func lcm(a, b int) int { return a / gcd(a, b) * b }
