// Package poly implements sparse multivariate polynomials over a
// p-adic field, the commutative polynomial-ring layer the Tate
// algebra parents build their generators and random sampling on.
//
// 🚀 What is poly?
//
//	A small, exact polynomial layer:
//	  • Ring       : named variables over a padic.Field, with a
//	                 termorder.Order; ChangeBaseRing re-bases the ring
//	  • Polynomial : sparse term list (coefficient + exponent tuple),
//	                 kept sorted descending under the ring's order
//	  • Random     : bounded-degree sparse sampling for test data
//
// The package intentionally stops at the arithmetic the parents
// consume: addition, scalar multiplication, generators, term access.
// Series-level arithmetic (precision-aware) lives with the Tate
// algebra elements, not here.
//
// ⚙️ Usage:
//
//	K, _ := padic.NewField(2, 10)
//	R, _ := poly.NewRing(K, []string{"x", "y"}, termorder.DegRevLex)
//	x, _ := R.Gen(0)
//	f := x.MulScalar(K.FromInt64(3))
//
// Complexity: Add is O(n+m) term merges; Random is O(terms·n).
package poly
