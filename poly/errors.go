// Package poly: sentinel error set. All user-triggerable failures are
// returned as these sentinels and matched via errors.Is; panics are
// reserved for programmer errors (mixing rings without coercion).

package poly

import "errors"

var (
	// ErrNilBase is returned when a ring is constructed over a nil field.
	ErrNilBase = errors.New("poly: base field must not be nil")

	// ErrNoVariables is returned when no variable names are supplied.
	ErrNoVariables = errors.New("poly: at least one variable name is required")

	// ErrBadVariable is returned for an empty or duplicated variable name.
	ErrBadVariable = errors.New("poly: variable names must be unique non-empty symbols")

	// ErrGenIndex is returned when a generator index is outside [0, n).
	ErrGenIndex = errors.New("poly: generator not defined")

	// ErrExponentCount is returned when a monomial is built with an
	// exponent tuple whose length differs from the number of variables.
	ErrExponentCount = errors.New("poly: the number of exponents does not match the number of variables")

	// ErrMixedRing indicates arithmetic across distinct rings.
	ErrMixedRing = errors.New("poly: operands belong to different rings")
)
