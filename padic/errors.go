// Package padic: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// padic package. All constructors MUST return these sentinels and tests
// MUST check them via errors.Is. Coercion and pushout incompatibilities
// are NOT errors: they are reported as booleans, since callers probe
// candidate embeddings speculatively.

package padic

import "errors"

var (
	// ErrBadPrime is returned when the residue characteristic is < 2.
	ErrBadPrime = errors.New("padic: residue characteristic must be at least 2")

	// ErrBadPrecision is returned when a precision cap is < 1.
	ErrBadPrecision = errors.New("padic: precision cap must be at least 1")

	// ErrBadDegree is returned when an extension degree is < 1.
	ErrBadDegree = errors.New("padic: extension degree must be at least 1")

	// ErrBadName is returned when an extension generator name is empty.
	ErrBadName = errors.New("padic: extension generator name must not be empty")

	// ErrMixedField indicates element arithmetic across distinct fields.
	ErrMixedField = errors.New("padic: operands belong to different fields")
)
