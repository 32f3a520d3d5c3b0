// Package tate implements Tate algebras, the rings of power series over
// a p-adic field converging on a prescribed polydisc, as canonically
// interned parent structures.
//
// 🚀 What is tate?
//
//	Given a p-adic field K, variables X_1,…,X_n and integer log radii
//	v_1,…,v_n, the Tate algebra K{X_1,…,X_n} consists of the series
//	whose coefficient valuations satisfy
//
//	  val(a_{i_1,…,i_n}) − (i_1·v_1 + … + i_n·v_n)  →  ∞.
//
//	This package provides the parents of that world:
//	  • New          : the sole construction entry point; structurally
//	                   equal parameters always return the IDENTICAL
//	                   *Algebra (process-wide interning registry)
//	  • Algebra      : the full algebra or its ring of integers; the two
//	                   views reference each other for the process lifetime
//	  • TermMonoid   : the multiplicative monoid of coefficient-carrying
//	                   monomials, used for term-order comparisons
//	  • Series, Term : the element layer: enough precision-aware
//	                   arithmetic for membership tests and sampling
//
// ✨ Compatibility rules (the crux):
//
//   - An algebra accepts coercion from another algebra or term monoid
//     iff the base rings coerce, the variable names match in content
//     AND order, the term orders are equal, and every radius satisfies
//     radius[i] == ratio·other.radius[i], where ratio is the integer
//     quotient of absolute ramification indices.
//   - PushoutWith combines an algebra with a p-adic field/ring into the
//     smallest common extension algebra, rescaling the precision cap
//     and all radii by the ramification ratio. Combining two full Tate
//     algebras is deliberately not offered.
//
// ⚙️ Usage:
//
//	K, _ := padic.NewField(2, 10)
//	A, _ := tate.New(K, []string{"x", "y"}, tate.WithOrder(termorder.Lex))
//	AA := A.IntegerRing()
//	x, _ := A.Gen(0)
//	fmt.Println(AA.Contains(x)) // true
//
// Coercion and pushout failures are booleans, never errors: the ambient
// arithmetic probes many candidate embeddings speculatively.
package tate
