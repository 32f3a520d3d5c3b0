// Package termorder provides monomial (term) orders: total preorders on
// exponent tuples used to break ties among terms of equal coefficient
// valuation.
//
// Three classical orders are supported:
//
//   - Lex       : lexicographic: first differing exponent decides.
//   - DegLex    : total degree first, lexicographic tie-break.
//   - DegRevLex : total degree first, then the LAST differing exponent
//     decides with the SMALLER exponent winning. The default order of
//     the Tate algebra layer, and of most Gröbner engines.
//
// Orders are plain string-kinded values: comparable, hashable, safe as
// map keys and canonical-key components.
//
// ⚙️ Usage:
//
//	ord, err := termorder.Resolve("degrevlex")
//	if err != nil { ... }                      // termorder.ErrUnknownOrder
//	c := ord.Compare([]int{2, 0}, []int{0, 2}) // +1 under DegRevLex
//
// Compare treats missing trailing exponents as zero, so tuples of
// unequal lengths compare consistently.
package termorder
