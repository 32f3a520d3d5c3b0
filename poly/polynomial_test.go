package poly_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tate/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPolynomial_Add merges equal monomials and drops cancellations.
func TestPolynomial_Add(t *testing.T) {
	K, R := newTestRing(t)
	x, _ := R.Gen(0)
	y, _ := R.Gen(1)

	f := x.Add(y).Add(x) // 2x + y
	assert.Equal(t, 2, f.NumTerms(), "equal monomials merge")
	assert.Equal(t, "(2)*x + (1)*y", f.String())

	g := f.Add(x.MulScalar(K.FromInt64(-2))) // cancels 2x
	assert.Equal(t, 1, g.NumTerms(), "exact cancellation drops the term")
	assert.Equal(t, "(1)*y", g.String())

	assert.True(t, g.Add(y.MulScalar(K.FromInt64(-1))).IsZero())
}

// TestPolynomial_MulScalar covers scaling, including by zero.
func TestPolynomial_MulScalar(t *testing.T) {
	K, R := newTestRing(t)
	x, _ := R.Gen(0)

	assert.Equal(t, "(6)*x", x.MulScalar(K.FromInt64(6)).String())
	assert.True(t, x.MulScalar(K.Zero()).IsZero(), "scaling by zero yields zero")
}

// TestPolynomial_Monomial covers the monomial constructor sentinels.
func TestPolynomial_Monomial(t *testing.T) {
	K, R := newTestRing(t)

	m, err := R.Monomial(K.FromInt64(3), []int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, "(3)*x^2*y", m.String())
	assert.Equal(t, 3, m.TotalDegree())

	_, err = R.Monomial(K.One(), []int{1})
	assert.ErrorIs(t, err, poly.ErrExponentCount)

	z, err := R.Monomial(K.Zero(), []int{1, 1})
	require.NoError(t, err)
	assert.True(t, z.IsZero(), "zero coefficient collapses to zero")
}

// TestPolynomial_TermsSorted: term lists come back descending under the
// ring order.
func TestPolynomial_TermsSorted(t *testing.T) {
	K, R := newTestRing(t)
	y, _ := R.Gen(1)

	x2y, err := R.Monomial(K.One(), []int{2, 1})
	require.NoError(t, err)
	f := R.Constant(K.One()).Add(y).Add(x2y) // 1 + y + x^2·y

	terms := f.Terms()
	require.Len(t, terms, 3)
	assert.Equal(t, []int{2, 1}, terms[0].Exps, "highest degree first under degrevlex")
	assert.Equal(t, []int{0, 1}, terms[1].Exps)
	assert.Equal(t, []int{0, 0}, terms[2].Exps)
}

// TestPolynomial_MixedRingPanics: crossing rings without coercion is a
// programmer error.
func TestPolynomial_MixedRingPanics(t *testing.T) {
	K, R := newTestRing(t)
	S, err := R.ChangeBaseRing(K.IntegerRing())
	require.NoError(t, err)

	x, _ := R.Gen(0)
	u, _ := S.Gen(0)
	assert.Panics(t, func() { x.Add(u) })
}

// TestRandom covers the structural bounds of the sampler; randomness
// carries no reproducibility contract.
func TestRandom(t *testing.T) {
	_, R := newTestRing(t)
	rng := rand.New(rand.NewSource(rand.Int63()))

	for i := 0; i < 16; i++ {
		f := R.Random(3, 4, rng)
		assert.LessOrEqual(t, f.NumTerms(), 4, "at most the requested terms")
		assert.LessOrEqual(t, f.TotalDegree(), 3, "total degree bounded")
		for _, m := range f.Terms() {
			assert.False(t, m.Coeff.IsZero(), "no zero coefficients survive")
		}
	}

	constant := R.Random(0, 3, rng)
	assert.LessOrEqual(t, constant.TotalDegree(), 0, "degree 0 samples constants")
}

// TestRandom_IntegralBase: over the valuation ring, sampled
// coefficients have non-negative valuation.
func TestRandom_IntegralBase(t *testing.T) {
	K, R := newTestRing(t)
	S, err := R.ChangeBaseRing(K.IntegerRing())
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(rand.Int63()))

	for i := 0; i < 8; i++ {
		for _, m := range S.Random(2, 5, rng).Terms() {
			assert.GreaterOrEqual(t, m.Coeff.Valuation(), 0)
		}
	}
}
