// Package tate: the element layer.
// A Series wraps a sorted term list together with an explicit
// precision. Only the arithmetic the parent contracts reference lives
// here: construction, addition, scalar scaling, valuation, membership
// support. Reduction, division and Gröbner machinery belong elsewhere.

package tate

import (
	"sort"
	"strings"

	"github.com/katalvlaran/tate/padic"
)

// Series is an element of a Tate algebra: a finite approximation of a
// convergent power series, known at the given precision. The term list
// is sorted by importance (valuation ascending, order descending) and
// carries no term of valuation at or beyond the precision.
type Series struct {
	algebra *Algebra
	terms   []*Term
	prec    int
}

// newSeries normalizes a term list into a series of A at the given
// precision: zero coefficients and terms beyond the precision are
// dropped, duplicates merged, the rest sorted.
func newSeries(A *Algebra, terms []*Term, prec int) *Series {
	kept := make([]*Term, 0, len(terms))
	for _, t := range terms {
		if t.coeff.IsZero() || t.Valuation() >= prec {
			continue
		}
		kept = append(kept, t)
	}
	f := &Series{algebra: A, terms: kept, prec: prec}
	f.sortTerms()

	return f
}

// Parent returns the algebra the series belongs to.
func (f *Series) Parent() *Algebra { return f.algebra }

// Precision returns the precision the series is known at.
func (f *Series) Precision() int { return f.prec }

// IsZero reports whether the series has no terms below its precision.
func (f *Series) IsZero() bool { return len(f.terms) == 0 }

// Terms returns a copy of the term list, sorted by importance.
func (f *Series) Terms() []*Term { return append([]*Term(nil), f.terms...) }

// NumTerms returns the number of terms of the series.
func (f *Series) NumTerms() int { return len(f.terms) }

// LeadingTerm returns the most important term, or nil for zero.
func (f *Series) LeadingTerm() *Term {
	if len(f.terms) == 0 {
		return nil
	}

	return f.terms[0]
}

// Valuation returns the minimal term valuation; the zero series reports
// its precision (everything below it is indistinguishable from zero).
func (f *Series) Valuation() int {
	if len(f.terms) == 0 {
		return f.prec
	}

	return f.terms[0].Valuation()
}

// Add returns f + g at the minimum of the operands' precisions.
// Operands must share the algebra; mixing parents without an explicit
// coercion is a programmer error and panics.
func (f *Series) Add(g *Series) *Series {
	if f.algebra != g.algebra {
		panic(ErrMixedParents)
	}
	merged := make(map[string]*Term, len(f.terms)+len(g.terms))
	for _, t := range append(f.Terms(), g.terms...) {
		key := encodeInts(t.exps)
		if prev, ok := merged[key]; ok {
			merged[key] = &Term{monoid: t.monoid, coeff: prev.coeff.Add(t.coeff), exps: t.exps}
			continue
		}
		merged[key] = t
	}
	terms := make([]*Term, 0, len(merged))
	for _, t := range merged {
		terms = append(terms, t)
	}

	return newSeries(f.algebra, terms, min(f.prec, g.prec))
}

// MulScalar returns c·f.
func (f *Series) MulScalar(c *padic.Number) *Series {
	terms := make([]*Term, len(f.terms))
	for i, t := range f.terms {
		terms[i] = &Term{monoid: t.monoid, coeff: t.coeff.Mul(c), exps: t.exps}
	}

	return newSeries(f.algebra, terms, f.prec)
}

// MulTerm returns t·f for a term of the same family's monoid.
func (f *Series) MulTerm(t *Term) *Series {
	terms := make([]*Term, len(f.terms))
	for i, s := range f.terms {
		exps := make([]int, len(s.exps))
		for j := range exps {
			exps[j] = s.exps[j] + t.exps[j]
		}
		terms[i] = &Term{monoid: s.monoid, coeff: s.coeff.Mul(t.coeff), exps: exps}
	}

	return newSeries(f.algebra, terms, f.prec)
}

// Truncate returns the series cut to the given precision (no-op when
// the series is already less precise).
func (f *Series) Truncate(prec int) *Series {
	if prec >= f.prec {
		return f
	}

	return newSeries(f.algebra, f.terms, prec)
}

// sortTerms orders the term list by importance.
func (f *Series) sortTerms() {
	sort.SliceStable(f.terms, func(i, j int) bool {
		return f.terms[i].compare(f.terms[j]) < 0
	})
}

// String renders the series as its term sum, e.g. "(1)*x^2 + (2)".
// The zero series prints "0".
func (f *Series) String() string {
	if len(f.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(f.terms))
	for i, t := range f.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}
