package tate_test

import (
	"testing"

	"github.com/katalvlaran/tate/padic"
	"github.com/katalvlaran/tate/tate"
	"github.com/katalvlaran/tate/termorder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlgebra_Repr: the classical rendering, unit polydisc.
func TestAlgebra_Repr(t *testing.T) {
	K := newBaseField(t)
	A, err := tate.New(K, []string{"x", "y"})
	require.NoError(t, err)

	repr := A.String()
	assert.Contains(t, repr, "x (val >= 0)")
	assert.Contains(t, repr, "y (val >= 0)")
	assert.Equal(t,
		"Tate Algebra in x (val >= 0), y (val >= 0) over 2-adic Field with capped relative precision 10",
		repr)
	assert.Equal(t, "Degree reverse lexicographic term order", A.TermOrder().Description())
}

// TestAlgebra_ReprNegatedRadii: the displayed bound is the negated log
// radius.
func TestAlgebra_ReprNegatedRadii(t *testing.T) {
	K := newBaseField(t)
	A, err := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(-1, -2))
	require.NoError(t, err)

	assert.Contains(t, A.String(), "x (val >= 1)")
	assert.Contains(t, A.String(), "y (val >= 2)")
}

// TestAlgebra_Generators: index bounds and generator shape.
func TestAlgebra_Generators(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})

	x, err := A.Gen(0)
	require.NoError(t, err)
	assert.Equal(t, "(1)*x", x.String())
	assert.Equal(t, 0, x.Valuation())

	_, err = A.Gen(2)
	assert.ErrorIs(t, err, tate.ErrGeneratorIndex, "index 2 on a 2-variable algebra")
	_, err = A.Gen(-1)
	assert.ErrorIs(t, err, tate.ErrGeneratorIndex)

	assert.Len(t, A.Gens(), 2)
	assert.Equal(t, 2, A.NumGens())
}

// TestAlgebra_IntegralTwin: twin symmetry; base ring, names, order and
// radii agree; the back-references are mutual and fixed.
func TestAlgebra_IntegralTwin(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(1, -1))
	AA := A.IntegerRing()

	assert.True(t, AA.IsIntegral())
	assert.False(t, A.IsIntegral())
	assert.Same(t, K.IntegerRing(), AA.BaseRing(), "integral twin's base is the integer subring")
	assert.Same(t, K, A.BaseRing())
	assert.Same(t, K, AA.Field(), "both views report the fraction field")
	assert.Equal(t, A.VariableNames(), AA.VariableNames())
	assert.Equal(t, A.TermOrder(), AA.TermOrder())
	assert.Equal(t, A.LogRadii(), AA.LogRadii())
	assert.Equal(t, A.PrecisionCap(), AA.PrecisionCap())

	assert.Same(t, AA, AA.IntegerRing(), "integer ring of the integer ring is itself")
	assert.Same(t, A, AA.FullAlgebra(), "mutual back-reference")
	assert.Same(t, A, A.FullAlgebra())

	assert.Contains(t, AA.String(), "Integer ring of the Tate Algebra in")
}

// TestAlgebra_IntegralGenerators: generator i of the integral twin is
// pre-scaled by uniformizer^radius, so its term valuation is zero.
func TestAlgebra_IntegralGenerators(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(2, -1))
	AA := A.IntegerRing()

	for i := 0; i < AA.NumGens(); i++ {
		g, err := AA.Gen(i)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Valuation(), "integral generator %d", i)
		lead := g.LeadingTerm()
		require.NotNil(t, lead)
		assert.Equal(t, A.LogRadii()[i], lead.Coefficient().Valuation(), "coefficient valuation equals the radius")
	}
}

// TestAlgebra_Membership: x lies in the integer ring, x/2 does not.
func TestAlgebra_Membership(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})
	AA := A.IntegerRing()

	x, _ := A.Gen(0)
	assert.True(t, AA.Contains(x), "x in AA")
	assert.True(t, A.Contains(x))

	half := x.MulScalar(K.One().ShiftVal(-1))
	assert.False(t, AA.Contains(half), "x/2 not in AA")
	assert.True(t, A.Contains(half))

	assert.False(t, AA.Contains(nil))
}

// TestAlgebra_MembershipRadii: integrality is judged against the
// radius pairing, not coefficient integrality.
func TestAlgebra_MembershipRadii(t *testing.T) {
	K := newBaseField(t)

	// Positive radius: the bare variable is NOT integral.
	B, _ := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(1, 2))
	BB := B.IntegerRing()
	x, _ := B.Gen(0)
	assert.False(t, BB.Contains(x), "term valuation 0 - 1 < 0")
	gx, _ := BB.Gen(0)
	assert.True(t, BB.Contains(gx), "the integral generator always lies in the integer ring")

	// Negative radii: integral series may carry non-integral
	// coefficients.
	C, _ := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(-1, -2))
	CC := C.IntegerRing()
	gy, err := CC.Gen(1)
	require.NoError(t, err)
	assert.True(t, CC.Contains(gy))
	assert.Equal(t, -2, gy.LeadingTerm().Coefficient().Valuation(), "coefficient valuation is negative")
}

// TestAlgebra_ScalarCoercion: rings coercing into the base also coerce
// into the algebra.
func TestAlgebra_ScalarCoercion(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})

	assert.True(t, A.AcceptsCoercionFrom(K))
	assert.True(t, A.AcceptsCoercionFrom(K.IntegerRing()))

	K3, _ := padic.NewField(3, 10)
	assert.False(t, A.AcceptsCoercionFrom(K3))
	assert.False(t, A.AcceptsCoercionFrom(42), "unknown variants are rejected")
	assert.False(t, A.AcceptsCoercionFrom(nil))
}

// TestAlgebra_CoercionNames: no coercion when variable names differ in
// content or order, even with all other parameters equal.
func TestAlgebra_CoercionNames(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})
	B, _ := tate.New(K, []string{"x", "z"})
	C, _ := tate.New(K, []string{"y", "x"})

	assert.False(t, A.AcceptsCoercionFrom(B))
	assert.False(t, B.AcceptsCoercionFrom(A))
	assert.False(t, A.AcceptsCoercionFrom(C))
	assert.False(t, C.AcceptsCoercionFrom(A))
	assert.True(t, A.AcceptsCoercionFrom(A), "reflexive")
}

// TestAlgebra_CoercionOrder: differing term orders block coercion.
func TestAlgebra_CoercionOrder(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})
	L, _ := tate.New(K, []string{"x", "y"}, tate.WithOrder(termorder.Lex))

	assert.False(t, A.AcceptsCoercionFrom(L))
	assert.False(t, L.AcceptsCoercionFrom(A))
}

// TestAlgebra_CoercionRatioLaw: for K ⊆ L with ramification ratio e,
// an algebra over L with radii r accepts one over K with radii s iff
// r_i == e·s_i for every i.
func TestAlgebra_CoercionRatioLaw(t *testing.T) {
	K := newBaseField(t)
	L, err := K.EisensteinExtension(2, "pi")
	require.NoError(t, err)

	A, _ := tate.New(K, []string{"x", "y"}, tate.WithLogRadii(1, -1))
	good, _ := tate.New(L, []string{"x", "y"}, tate.WithLogRadii(2, -2))
	bad, _ := tate.New(L, []string{"x", "y"}, tate.WithLogRadii(1, -1))

	assert.True(t, good.AcceptsCoercionFrom(A), "radii exactly doubled")
	assert.False(t, bad.AcceptsCoercionFrom(A), "radii not rescaled")
	assert.False(t, A.AcceptsCoercionFrom(good), "no reverse coercion down the extension")
}

// TestAlgebra_CoercionUnramified: an unramified extension keeps the
// ratio at one, so equal radii coerce.
func TestAlgebra_CoercionUnramified(t *testing.T) {
	K := newBaseField(t)
	S, err := K.UnramifiedExtension(2, "a")
	require.NoError(t, err)

	A, _ := tate.New(K, []string{"x", "y"})
	B, _ := tate.New(S, []string{"x", "y"}, tate.WithPrecision(10))

	assert.True(t, B.AcceptsCoercionFrom(A))
	assert.False(t, A.AcceptsCoercionFrom(B))
}

// TestAlgebra_CoercionIntegralViews: a full algebra accepts its
// integral twin (field accepts ring) but not conversely.
func TestAlgebra_CoercionIntegralViews(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x", "y"})
	AA := A.IntegerRing()

	assert.True(t, A.AcceptsCoercionFrom(AA))
	assert.False(t, AA.AcceptsCoercionFrom(A), "a ring never accepts a field")
}

// TestAlgebra_Pushout: precision and radii scale by the ramification
// ratio; names and order survive.
func TestAlgebra_Pushout(t *testing.T) {
	K := newBaseField(t)
	L, _ := K.EisensteinExtension(2, "pi")
	A, _ := tate.New(K, []string{"u", "v"}, tate.WithLogRadii(1, 2))

	B, ok := A.PushoutWith(L)
	require.True(t, ok)
	assert.Equal(t, 20, B.PrecisionCap(), "precision doubles")
	assert.Equal(t, []int{2, 4}, B.LogRadii(), "radii double")
	assert.Equal(t, []string{"u", "v"}, B.VariableNames())
	assert.Equal(t, A.TermOrder(), B.TermOrder())
	assert.False(t, B.IsIntegral(), "field pushout returns the full algebra")
	assert.True(t, B.AcceptsCoercionFrom(A), "the original embeds into the pushout")

	// The result is canonical: reconstructing it interns identically.
	C, err := tate.New(L, []string{"u", "v"}, tate.WithPrecision(20), tate.WithLogRadii(2, 4))
	require.NoError(t, err)
	assert.Same(t, B, C)
}

// TestAlgebra_PushoutUnramified: ratio one, nothing rescales, base
// upgrades.
func TestAlgebra_PushoutUnramified(t *testing.T) {
	K := newBaseField(t)
	S, _ := K.UnramifiedExtension(2, "a")
	A, _ := tate.New(K, []string{"u", "v"}, tate.WithLogRadii(1, 2))

	B, ok := A.PushoutWith(S)
	require.True(t, ok)
	assert.Equal(t, A.PrecisionCap(), B.PrecisionCap())
	assert.Equal(t, A.LogRadii(), B.LogRadii())
	assert.Equal(t, 2, B.BaseRing().AbsoluteF())
}

// TestAlgebra_PushoutIntegral: pushing an integral view against a ring
// yields the integer ring of the fresh algebra; against a field, the
// full algebra.
func TestAlgebra_PushoutIntegral(t *testing.T) {
	K := newBaseField(t)
	L, _ := K.EisensteinExtension(2, "pi")
	A, _ := tate.New(K, []string{"u", "v"}, tate.WithLogRadii(1, 2))
	AA := A.IntegerRing()

	B, ok := AA.PushoutWith(L.IntegerRing())
	require.True(t, ok)
	assert.True(t, B.IsIntegral(), "ring ⊔ ring stays integral")
	assert.Equal(t, []int{2, 4}, B.LogRadii())

	C, ok := AA.PushoutWith(L)
	require.True(t, ok)
	assert.False(t, C.IsIntegral(), "pushing against a field leaves the integral world")
}

// TestAlgebra_PushoutUnavailable: no pushout across residue
// characteristics: a boolean, never an error.
func TestAlgebra_PushoutUnavailable(t *testing.T) {
	K := newBaseField(t)
	K3, _ := padic.NewField(3, 10)
	A, _ := tate.New(K, []string{"x"})

	B, ok := A.PushoutWith(K3)
	assert.False(t, ok)
	assert.Nil(t, B)

	B, ok = A.PushoutWith(nil)
	assert.False(t, ok)
	assert.Nil(t, B)
}

// TestAlgebra_Characteristic is zero in mixed characteristic.
func TestAlgebra_Characteristic(t *testing.T) {
	K := newBaseField(t)
	A, _ := tate.New(K, []string{"x"})
	assert.Zero(t, A.Characteristic().Sign())
	assert.Zero(t, A.IntegerRing().Characteristic().Sign())
}
