// Package padic models complete discrete valuation fields of mixed
// characteristic (the p-adic numbers Q_p, their valuation rings Z_p,
// and finite extensions) at capped relative precision.
//
// 🚀 What is padic?
//
//	The coefficient layer underneath the Tate algebra parents:
//	  • Field      : a p-adic field or its valuation (integer) ring,
//	                 with fraction-field / integer-ring twin views
//	  • extensions : unramified and Eisenstein, tracked through the
//	                 absolute ramification index e and residue degree f
//	  • PushoutWith: smallest common extension of two fields over the
//	                 same residue characteristic
//	  • Number     : exact element arithmetic on the integral basis
//	                 1, π, …, π^(e-1), with π^e = p
//
// ✨ Key guarantees:
//
//   - A Field and its twin views share every numeric parameter; calling
//     FractionField or IntegerRing repeatedly returns identical pointers.
//   - Valuations are reported in uniformizer units (val(π) = 1), so
//     radii and precision caps rescale by exact integer ratios under
//     extension.
//   - Coercion and pushout never fail with an error: incompatibility is
//     reported as a boolean, because callers probe speculatively.
//   - Big mantissa products route through FFT multiplication
//     (remyoudompheng/bigfft) above a size threshold.
//
// ⚙️ Usage:
//
//	K, _ := padic.NewField(2, 10)            // Q_2 at precision 10
//	L, _ := K.EisensteinExtension(2, "pi")   // K(pi), pi^2 = 2
//	ratio := L.AbsoluteE() / K.AbsoluteE()   // 2
//
// Complexity: all structural operations are O(1); element arithmetic is
// O(e^2) big-integer work per product (O(e) per sum).
package padic
