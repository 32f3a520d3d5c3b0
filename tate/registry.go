// Package tate: canonical construction.
// This file implements the canonical key builder and the process-wide
// interning registry: equal keys resolve to the IDENTICAL *Algebra
// instance, enforced by a single mutex around lookup-or-insert. The
// registry lives for the process lifetime and grows monotonically;
// structures are never evicted.

package tate

import (
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/katalvlaran/tate/padic"
	"github.com/katalvlaran/tate/termorder"
)

// canonicalKey is the normalized 5-tuple identifying an algebra:
// base field fingerprint, precision cap, log radii, variable names,
// term order. All components are plain comparable values so the key is
// usable directly as a map key.
type canonicalKey struct {
	base  string
	prec  int
	radii string
	names string
	order termorder.Order
}

var (
	// registryMu serializes the check-then-act on the registry so
	// concurrent constructors cannot mint duplicate instances for one key.
	registryMu sync.Mutex
	registry   = make(map[canonicalKey]*Algebra)
)

// New is the sole public construction entry point for Tate algebras.
//
// The base must be a p-adic field or ring (a ring is transparently
// replaced by its fraction field; the full algebra is always returned,
// use IntegerRing for the integral view). Names are mandatory unique
// bare identifiers, and their order is semantically significant. Defaults:
// precision = base precision cap, log radii = 0 broadcast, order =
// degrevlex.
//
// Two calls with structurally equal parameters return the same pointer.
func New(base *padic.Field, names []string, opts ...Option) (*Algebra, error) {
	field, prec, radii, nameList, order, err := buildKeyInputs(base, names, opts...)
	if err != nil {
		return nil, err
	}
	key := canonicalKey{
		base:  field.CanonicalKey(),
		prec:  prec,
		radii: encodeInts(radii),
		names: strings.Join(nameList, ","),
		order: order,
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if A, ok := registry[key]; ok {
		return A, nil
	}
	A := newAlgebra(field, prec, radii, nameList, order)
	registry[key] = A

	return A, nil
}

// buildKeyInputs validates and normalizes the construction parameters:
// fraction field substitution, name normalization, radius broadcast,
// precision defaulting.
func buildKeyInputs(base *padic.Field, names []string, opts ...Option) (*padic.Field, int, []int, []string, termorder.Order, error) {
	if base == nil {
		return nil, 0, nil, nil, "", ErrInvalidBase
	}
	field := base.FractionField()

	if len(names) == 0 {
		return nil, 0, nil, nil, "", ErrMissingNames
	}
	nameList := append([]string(nil), names...)
	seen := make(map[string]struct{}, len(nameList))
	for _, name := range nameList {
		if !validVariableName(name) {
			return nil, 0, nil, nil, "", ErrBadName
		}
		if _, dup := seen[name]; dup {
			return nil, 0, nil, nil, "", ErrBadName
		}
		seen[name] = struct{}{}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	radii := make([]int, len(nameList))
	if o.radiiSet {
		if len(o.radii) != len(nameList) {
			return nil, 0, nil, nil, "", ErrRadiusCount
		}
		copy(radii, o.radii)
	} else {
		for i := range radii {
			radii[i] = o.radius
		}
	}

	prec := o.prec
	if !o.precSet {
		prec = field.PrecisionCap()
	}

	return field, prec, radii, nameList, o.order, nil
}

// validVariableName reports whether the name is a bare identifier:
// letters, digits and underscores, not starting with a digit. The
// canonical key joins names with commas, so a name must never be able
// to smuggle a separator into the encoding.
func validVariableName(name string) bool {
	for i, r := range name {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}

	return name != ""
}

// encodeInts renders an int slice as a comparable key component.
func encodeInts(vals []int) string {
	var b strings.Builder
	for _, v := range vals {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(',')
	}

	return b.String()
}
