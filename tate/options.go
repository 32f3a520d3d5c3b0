// Package tate: functional configuration for the construction entry
// point and the random sampler. This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - RandomOptions / DefaultRandomOptions for RandomElement.
//
// Design goals:
//   - Deterministic construction: options only feed the canonical key.
//   - Safe by construction: panic only on invalid parameters (programmer error);
//     everything data-dependent (radius count vs variable count) is a
//     sentinel error from New.

package tate

import "github.com/katalvlaran/tate/termorder"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLogRadius is the common log radius applied to every
	// variable when no radius option is given: the unit polydisc.
	DefaultLogRadius = 0

	// DefaultRandomDegree bounds the total degree of random elements.
	DefaultRandomDegree = 2

	// DefaultRandomTerms bounds the number of terms of random elements.
	DefaultRandomTerms = 5
)

// DefaultOrder is the term order used when none is specified.
const DefaultOrder = termorder.DegRevLex

// Internal panic messages (no magic strings).
const (
	panicPrecisionInvalid = "tate: WithPrecision: prec must be >= 1"
	panicOrderInvalid     = "tate: WithOrder: unknown term order"
)

// options collects the normalized construction parameters before the
// canonical key is built.
type options struct {
	prec     int
	precSet  bool
	radius   int
	radii    []int
	radiiSet bool
	order    termorder.Order
}

func defaultOptions() options {
	return options{radius: DefaultLogRadius, order: DefaultOrder}
}

// Option mutates construction options. Safe to apply repeatedly
// (last write wins).
type Option func(*options)

// WithPrecision sets the precision cap of the algebra. When absent, the
// cap defaults to the base field's own precision cap. Panics when
// prec < 1 (programmer error).
func WithPrecision(prec int) Option {
	if prec < 1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *options) { o.prec = prec; o.precSet = true }
}

// WithLogRadius sets one common log radius, broadcast to every
// variable.
func WithLogRadius(r int) Option {
	return func(o *options) { o.radius = r; o.radiiSet = false; o.radii = nil }
}

// WithLogRadii sets one log radius per variable. New reports
// ErrRadiusCount when the count differs from the number of names.
func WithLogRadii(radii ...int) Option {
	rs := append([]int(nil), radii...)

	return func(o *options) { o.radii = rs; o.radiiSet = true }
}

// WithOrder sets the term order. Panics on an order Resolve does not
// know (programmer error).
func WithOrder(order termorder.Order) Option {
	if _, err := termorder.Resolve(string(order)); err != nil {
		panic(panicOrderInvalid)
	}

	return func(o *options) { o.order = order }
}

// WithOrderSpec sets the term order from its specification string
// ("lex", "deglex", "degrevlex"). Panics on an unknown specification
// (programmer error); use termorder.Resolve to validate data-driven
// input first.
func WithOrderSpec(spec string) Option {
	order, err := termorder.Resolve(spec)
	if err != nil {
		panic(panicOrderInvalid)
	}

	return func(o *options) { o.order = order }
}

// RandomOptions configures Algebra.RandomElement.
//
// Fields:
//   - Degree    : upper bound on the total degree of the result.
//   - Terms     : maximal number of terms of the result.
//   - Integral  : sample coefficients from the ring of integers; forced
//     when the algebra itself is an integer ring.
//   - Precision : explicit precision of the result; 0 means the
//     algebra's own precision cap.
type RandomOptions struct {
	Degree    int
	Terms     int
	Integral  bool
	Precision int
}

// DefaultRandomOptions returns the sampler defaults: degree 2, five
// terms, field coefficients, algebra precision.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Degree: DefaultRandomDegree, Terms: DefaultRandomTerms}
}
