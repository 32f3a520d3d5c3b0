// Package tate: terms.
// A Term is one monomial with its coefficient, bound to the term monoid
// of its algebra. Terms compare first by valuation (coefficient
// valuation minus the radius pairing of the exponents), ties broken by
// the monomial order.

package tate

import (
	"fmt"

	"github.com/katalvlaran/tate/padic"
)

// Term is an element of a TermMonoid: coefficient · monomial.
type Term struct {
	monoid *TermMonoid
	coeff  *padic.Number
	exps   []int
}

// Monoid returns the parent monoid.
func (t *Term) Monoid() *TermMonoid { return t.monoid }

// Coefficient returns the coefficient of the term.
func (t *Term) Coefficient() *padic.Number { return t.coeff }

// Exponents returns a copy of the exponent tuple.
func (t *Term) Exponents() []int { return append([]int(nil), t.exps...) }

// Valuation returns val(coeff) − Σ expᵢ·radiusᵢ: the quantity whose
// non-negativity, over all terms, characterizes membership in the ring
// of integers, and whose divergence characterizes convergence.
func (t *Term) Valuation() int {
	v := t.coeff.Valuation()
	if v == padic.InfiniteValuation {
		return v
	}

	return v - dot(t.exps, t.monoid.logRadii)
}

// Mul returns the product of two terms of the same monoid. Mixing
// parents without an explicit coercion is a programmer error and
// panics.
func (t *Term) Mul(u *Term) *Term {
	if t.monoid != u.monoid {
		panic(ErrMixedParents)
	}
	exps := make([]int, len(t.exps))
	for i := range exps {
		exps[i] = t.exps[i] + u.exps[i]
	}

	return &Term{monoid: t.monoid, coeff: t.coeff.Mul(u.coeff), exps: exps}
}

// compare orders terms by importance: smaller valuation first, ties
// broken by the monomial order descending. Used to sort series terms.
func (t *Term) compare(u *Term) int {
	tv, uv := t.Valuation(), u.Valuation()
	switch {
	case tv < uv:
		return -1
	case tv > uv:
		return 1
	default:
		return -t.monoid.order.Compare(t.exps, u.exps)
	}
}

// String renders the term as "(coeff)*x^2*y"; the constant term
// renders as "(coeff)".
func (t *Term) String() string {
	return fmt.Sprintf("(%s)%s", t.coeff, monomialSuffix(t.monoid.names, t.exps))
}

// monomialSuffix renders "*x^2*y" for an exponent tuple; the constant
// monomial renders empty.
func monomialSuffix(names []string, exps []int) string {
	s := ""
	for i, e := range exps {
		switch {
		case e == 1:
			s += "*" + names[i]
		case e > 1:
			s += fmt.Sprintf("*%s^%d", names[i], e)
		}
	}

	return s
}
