// Package padic: element arithmetic.
// A Number lives in one Field and is stored exactly on the integral
// basis 1, π, …, π^(e-1) with π^e = p, together with a power of p in
// the denominator. Arithmetic is exact; the precision cap is a contract
// for consumers (display, truncation), not a rounding rule applied here.

package padic

import (
	"fmt"
	"math/big"
	"math/rand"
	"strings"

	"github.com/remyoudompheng/bigfft"
)

// InfiniteValuation is the valuation reported for the zero element.
const InfiniteValuation = int(^uint(0) >> 1) // MaxInt

// fftBitThreshold is the mantissa size, in bits, above which products
// are routed through FFT multiplication. Below it math/big's Karatsuba
// wins.
const fftBitThreshold = 1 << 14

// Number is an element of a p-adic field: the exact value
//
//	(c_0 + c_1·π + … + c_(e-1)·π^(e-1)) / p^denom,
//
// with integer mantissas c_r. The zero element has all mantissas zero.
type Number struct {
	field  *Field
	coeffs []*big.Int // length field.e
	denom  int        // power of p dividing the element out
}

// FromInt64 builds the element of K equal to the given integer.
func (K *Field) FromInt64(v int64) *Number { return K.FromBig(big.NewInt(v)) }

// FromBig builds the element of K equal to the given integer.
func (K *Field) FromBig(v *big.Int) *Number {
	n := K.zeroNumber()
	n.coeffs[0].Set(v)

	return n.normalize()
}

// Zero returns the zero element of K.
func (K *Field) Zero() *Number { return K.zeroNumber() }

// One returns the multiplicative identity of K.
func (K *Field) One() *Number { return K.FromInt64(1) }

// Uniformizer returns π, the element of valuation one.
func (K *Field) Uniformizer() *Number { return K.One().ShiftVal(1) }

func (K *Field) zeroNumber() *Number {
	coeffs := make([]*big.Int, K.e)
	for i := range coeffs {
		coeffs[i] = new(big.Int)
	}

	return &Number{field: K, coeffs: coeffs}
}

// Field returns the field this element belongs to.
func (x *Number) Field() *Field { return x.field }

// sameField panics when two numbers belong to different fields: mixing
// parents without an explicit coercion is a programmer error.
func (x *Number) sameField(y *Number) {
	if x.field.fraction != y.field.fraction {
		panic(ErrMixedField)
	}
}

// IsZero reports whether the element is exactly zero.
func (x *Number) IsZero() bool {
	for _, c := range x.coeffs {
		if c.Sign() != 0 {
			return false
		}
	}

	return true
}

// Valuation returns the valuation of the element in uniformizer units;
// the zero element reports InfiniteValuation.
func (x *Number) Valuation() int {
	v := InfiniteValuation
	for r, c := range x.coeffs {
		if c.Sign() == 0 {
			continue
		}
		if w := x.field.e*pValuation(c, x.field.p) + r; w < v {
			v = w
		}
	}
	if v == InfiniteValuation {
		return v
	}

	return v - x.field.e*x.denom
}

// pValuation counts the power of p dividing c (c nonzero).
func pValuation(c, p *big.Int) int {
	v := 0
	q, r := new(big.Int), new(big.Int)
	c = new(big.Int).Set(c)
	for {
		q.QuoRem(c, p, r)
		if r.Sign() != 0 {
			return v
		}
		c.Set(q)
		v++
	}
}

// Add returns x + y. Operands must share the field.
func (x *Number) Add(y *Number) *Number {
	x.sameField(y)
	z := x.field.zeroNumber()
	z.denom = max(x.denom, y.denom)
	xs := new(big.Int).Exp(x.field.p, big.NewInt(int64(z.denom-x.denom)), nil)
	ys := new(big.Int).Exp(x.field.p, big.NewInt(int64(z.denom-y.denom)), nil)
	for r := range z.coeffs {
		z.coeffs[r].Mul(x.coeffs[r], xs)
		z.coeffs[r].Add(z.coeffs[r], new(big.Int).Mul(y.coeffs[r], ys))
	}

	return z.normalize()
}

// Neg returns -x.
func (x *Number) Neg() *Number {
	z := x.field.zeroNumber()
	z.denom = x.denom
	for r := range z.coeffs {
		z.coeffs[r].Neg(x.coeffs[r])
	}

	return z
}

// Sub returns x - y.
func (x *Number) Sub(y *Number) *Number { return x.Add(y.Neg()) }

// Mul returns x · y. The convolution is reduced through π^e = p; large
// mantissa products go through bigfft.
func (x *Number) Mul(y *Number) *Number {
	x.sameField(y)
	e := x.field.e
	raw := make([]*big.Int, 2*e-1)
	for i := range raw {
		raw[i] = new(big.Int)
	}
	for i, xc := range x.coeffs {
		if xc.Sign() == 0 {
			continue
		}
		for j, yc := range y.coeffs {
			if yc.Sign() == 0 {
				continue
			}
			raw[i+j].Add(raw[i+j], mulInt(xc, yc))
		}
	}
	z := x.field.zeroNumber()
	z.denom = x.denom + y.denom
	for k := 2*e - 2; k >= 0; k-- {
		if k >= e {
			// π^k = p·π^(k-e)
			raw[k-e].Add(raw[k-e], raw[k].Mul(raw[k], x.field.p))
			continue
		}
		z.coeffs[k].Set(raw[k])
	}

	return z.normalize()
}

// ShiftVal returns x·π^k for any integer k (negative shifts divide).
func (x *Number) ShiftVal(k int) *Number {
	e := x.field.e
	s := ((k % e) + e) % e
	q := (k - s) / e // may be negative

	z := x.field.zeroNumber()
	z.denom = x.denom
	for r, c := range x.coeffs {
		if r+s < e {
			z.coeffs[r+s].Set(c)
			continue
		}
		// π^(r+s) = p·π^(r+s-e)
		z.coeffs[r+s-e].Add(z.coeffs[r+s-e], new(big.Int).Mul(c, x.field.p))
	}
	if q >= 0 {
		scale := new(big.Int).Exp(x.field.p, big.NewInt(int64(q)), nil)
		for r := range z.coeffs {
			z.coeffs[r].Mul(z.coeffs[r], scale)
		}
	} else {
		z.denom += -q
	}

	return z.normalize()
}

// Equal reports exact equality of two elements of the same field.
func (x *Number) Equal(y *Number) bool {
	x.sameField(y)
	d := x.Sub(y)

	return d.IsZero()
}

// normalize strips common powers of p between the mantissas and the
// denominator so the representation is unique.
func (x *Number) normalize() *Number {
	for x.denom > 0 {
		q := make([]*big.Int, len(x.coeffs))
		r := new(big.Int)
		for i, c := range x.coeffs {
			if c.Sign() == 0 {
				q[i] = new(big.Int)
				continue
			}
			q[i] = new(big.Int)
			q[i].QuoRem(c, x.field.p, r)
			if r.Sign() != 0 {
				return x
			}
		}
		x.coeffs = q
		x.denom--
	}

	return x
}

// Random returns a random nonzero element of K, possibly of negative
// valuation when K is a field. Randomness comes entirely from the
// supplied source.
func (K *Field) Random(rng *rand.Rand) *Number {
	n := K.RandomInteger(rng)
	if !K.field {
		return n
	}

	return n.ShiftVal(rng.Intn(2*K.e+1) - K.e)
}

// RandomInteger returns a random nonzero element of the valuation ring
// of K (all mantissas non-negative, no denominator).
func (K *Field) RandomInteger(rng *rand.Rand) *Number {
	bound := new(big.Int).Exp(K.p, big.NewInt(int64((K.prec+K.e-1)/K.e+1)), nil)
	n := K.zeroNumber()
	for {
		for r := range n.coeffs {
			n.coeffs[r].Rand(rng, bound)
		}
		if !n.IsZero() {
			return n.normalize()
		}
	}
}

// String renders the element as a polynomial in the uniformizer, e.g.
// "3 + 5*pi/2^1". Ground-field elements print as plain (scaled)
// integers.
func (x *Number) String() string {
	if x.IsZero() {
		return "0"
	}
	gen := x.field.gen
	if gen == "" {
		gen = "pi"
	}
	var parts []string
	for r, c := range x.coeffs {
		if c.Sign() == 0 {
			continue
		}
		switch r {
		case 0:
			parts = append(parts, c.String())
		case 1:
			parts = append(parts, fmt.Sprintf("%s*%s", c, gen))
		default:
			parts = append(parts, fmt.Sprintf("%s*%s^%d", c, gen, r))
		}
	}
	s := strings.Join(parts, " + ")
	if x.denom > 0 {
		s = fmt.Sprintf("(%s)/%s^%d", s, x.field.p, x.denom)
	}

	return s
}

// mulInt multiplies two big integers, switching to FFT multiplication
// for large mantissas.
func mulInt(a, b *big.Int) *big.Int {
	if a.BitLen() > fftBitThreshold && b.BitLen() > fftBitThreshold {
		return bigfft.Mul(a, b)
	}

	return new(big.Int).Mul(a, b)
}
