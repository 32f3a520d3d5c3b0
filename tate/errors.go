// Package tate: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// tate package. All constructors MUST return these sentinels and tests
// MUST check them via errors.Is. No routine panics on user-triggered
// conditions; panics are reserved for programmer errors (mixing parents
// without an explicit coercion, nonsensical option values).
//
// Coercion and pushout incompatibilities are NOT errors: they are
// boolean "no coercion" / "no pushout" results, because the ambient
// arithmetic system probes many candidate embeddings speculatively.

package tate

import "errors"

var (
	// ErrInvalidBase is returned when the construction entry point is
	// given a nil base: the base ring must be a p-adic field.
	ErrInvalidBase = errors.New("tate: base ring must be a p-adic field")

	// ErrMissingNames is returned when variable names are omitted.
	ErrMissingNames = errors.New("tate: you must specify the names of the variables")

	// ErrBadName is returned for an empty, duplicated or non-identifier
	// variable name.
	ErrBadName = errors.New("tate: variable names must be unique bare identifiers")

	// ErrRadiusCount is returned when the number of supplied log radii
	// does not match the number of variables.
	ErrRadiusCount = errors.New("tate: the number of radii does not match the number of variables")

	// ErrGeneratorIndex is returned when a generator index is outside [0, n).
	ErrGeneratorIndex = errors.New("tate: generator not defined")

	// ErrExponentCount is returned when a term is built with an exponent
	// tuple whose length differs from the number of variables.
	ErrExponentCount = errors.New("tate: the number of exponents does not match the number of variables")

	// ErrForeignPolynomial is returned when a polynomial from an
	// unrelated ring is wrapped as a series.
	ErrForeignPolynomial = errors.New("tate: polynomial does not belong to this algebra's polynomial ring")

	// ErrMixedParents indicates element arithmetic across distinct
	// parents with no coercion applied.
	ErrMixedParents = errors.New("tate: operands belong to different parents")
)
