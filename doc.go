// Package tate is a playground for rigid p-adic analysis: Tate algebras
// (rings of convergent power series over a p-adic field) modeled as
// first-class, canonically interned parent structures.
//
// 🚀 What is tate?
//
//	A pure-Go library that brings together:
//	  • padic/     : capped-precision p-adic fields & rings, extensions, pushout
//	  • termorder/ : monomial orders (lex, deglex, degrevlex)
//	  • poly/      : sparse multivariate polynomials over a p-adic field
//	  • tate/      : the Tate algebra parents: canonical construction,
//	                 integer-ring twins, term monoids, coercion & pushout
//
// ✨ Why choose tate?
//
//   - Canonical parents – structurally equal parameters always yield the
//     identical *Algebra instance (process-wide interning)
//   - Rock-solid compatibility rules – coercion between algebras over
//     related base fields rescales radii by the exact ramification ratio
//   - Pure Go – no cgo; big-integer kernels accelerated via bigfft
//   - Extensible – term monoids expose everything Gröbner-style
//     computations need for order comparisons
//
// Quick taste:
//
//	K, _ := padic.NewField(2, 10)                       // Q_2, precision 10
//	A, _ := tate.New(K, []string{"x", "y"})             // Tate Algebra in x, y
//	AA := A.IntegerRing()                               // its ring of integers
//	fmt.Println(A)
//	// Tate Algebra in x (val >= 0), y (val >= 0) over 2-adic Field with capped relative precision 10
//
// Dive into each package's doc.go for the full story.
//
//	go get github.com/katalvlaran/tate
package tate
