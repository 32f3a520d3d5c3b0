// Package poly: the sparse Polynomial type and its arithmetic.

package poly

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/katalvlaran/tate/padic"
)

// Monomial is one term of a polynomial: a coefficient together with the
// exponent tuple of its monomial (one entry per ring variable).
type Monomial struct {
	Coeff *padic.Number
	Exps  []int
}

// TotalDegree returns the sum of the exponents.
func (m Monomial) TotalDegree() int {
	d := 0
	for _, e := range m.Exps {
		d += e
	}

	return d
}

// Polynomial is a sparse polynomial: a term list kept sorted descending
// under the ring's term order, with no zero coefficients and no
// repeated exponent tuples.
type Polynomial struct {
	ring  *Ring
	terms []Monomial
}

// Ring returns the parent ring.
func (p *Polynomial) Ring() *Ring { return p.ring }

// IsZero reports whether the polynomial has no terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Terms returns a copy of the term list, sorted descending under the
// ring's order.
func (p *Polynomial) Terms() []Monomial { return append([]Monomial(nil), p.terms...) }

// NumTerms returns the number of terms.
func (p *Polynomial) NumTerms() int { return len(p.terms) }

// TotalDegree returns the maximal total degree among the terms; the
// zero polynomial reports -1.
func (p *Polynomial) TotalDegree() int {
	d := -1
	for _, t := range p.terms {
		if td := t.TotalDegree(); td > d {
			d = td
		}
	}

	return d
}

// sameRing panics when two polynomials belong to different rings:
// mixing parents without coercion is a programmer error.
func (p *Polynomial) sameRing(q *Polynomial) {
	if p.ring != q.ring {
		panic(ErrMixedRing)
	}
}

// Add returns p + q, merging terms with equal exponent tuples and
// dropping exact cancellations.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	p.sameRing(q)
	merged := make(map[string]Monomial, len(p.terms)+len(q.terms))
	accumulate := func(ts []Monomial) {
		for _, t := range ts {
			key := expKey(t.Exps)
			if prev, ok := merged[key]; ok {
				sum := prev.Coeff.Add(t.Coeff)
				if sum.IsZero() {
					delete(merged, key)
					continue
				}
				merged[key] = Monomial{Coeff: sum, Exps: prev.Exps}
				continue
			}
			merged[key] = t
		}
	}
	accumulate(p.terms)
	accumulate(q.terms)

	out := &Polynomial{ring: p.ring, terms: make([]Monomial, 0, len(merged))}
	for _, t := range merged {
		out.terms = append(out.terms, t)
	}
	out.sortTerms()

	return out
}

// MulScalar returns c·p.
func (p *Polynomial) MulScalar(c *padic.Number) *Polynomial {
	if c == nil || c.IsZero() {
		return p.ring.Zero()
	}
	out := &Polynomial{ring: p.ring, terms: make([]Monomial, len(p.terms))}
	for i, t := range p.terms {
		out.terms[i] = Monomial{Coeff: t.Coeff.Mul(c), Exps: t.Exps}
	}

	return out
}

// sortTerms orders the term list descending under the ring's order.
func (p *Polynomial) sortTerms() {
	sort.SliceStable(p.terms, func(i, j int) bool {
		return p.ring.order.Compare(p.terms[i].Exps, p.terms[j].Exps) > 0
	})
}

// expKey encodes an exponent tuple as a map key.
func expKey(exps []int) string {
	var b strings.Builder
	for _, e := range exps {
		fmt.Fprintf(&b, "%d,", e)
	}

	return b.String()
}

// Random returns a random sparse polynomial of total degree at most
// degree with at most terms monomials, coefficients drawn from the base
// field. Colliding exponent tuples are merged, so the result may carry
// fewer terms than requested.
func (R *Ring) Random(degree, terms int, rng *rand.Rand) *Polynomial {
	out := R.Zero()
	n := len(R.names)
	for k := 0; k < terms; k++ {
		exps := make([]int, n)
		budget := degree
		if budget > 0 {
			budget = rng.Intn(degree + 1)
		}
		for budget > 0 {
			exps[rng.Intn(n)]++
			budget--
		}
		t := &Polynomial{ring: R, terms: []Monomial{{Coeff: R.base.Random(rng), Exps: exps}}}
		out = out.Add(t)
	}

	return out
}

// String renders the polynomial with parenthesized coefficients, e.g.
// "(3)*x^2*y + (1)". The zero polynomial prints "0".
func (p *Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(p.terms))
	for i, t := range p.terms {
		parts[i] = fmt.Sprintf("(%s)%s", t.Coeff, monomialSuffix(p.ring.names, t.Exps))
	}

	return strings.Join(parts, " + ")
}

// monomialSuffix renders "*x^2*y" for an exponent tuple; the constant
// monomial renders empty.
func monomialSuffix(names []string, exps []int) string {
	var b strings.Builder
	for i, e := range exps {
		switch {
		case e == 1:
			fmt.Fprintf(&b, "*%s", names[i])
		case e > 1:
			fmt.Fprintf(&b, "*%s^%d", names[i], e)
		}
	}

	return b.String()
}
