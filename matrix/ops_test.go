// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matcompl/matrix"
	"github.com/stretchr/testify/require"
)

// --- Add / AddInPlace ---------------------------------------------------------

func TestAdd_Basic(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{2, 2, 1, 0})
	b := MustNew(t, 2, 2, []float64{1, 1, 2, 3})
	got, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, got.Equal(MustNew(t, 2, 2, []float64{3, 3, 3, 3})), "got:\n%v", got)

	// Inputs untouched.
	require.True(t, a.Equal(MustNew(t, 2, 2, []float64{2, 2, 1, 0})))
	require.True(t, b.Equal(MustNew(t, 2, 2, []float64{1, 1, 2, 3})))
}

func TestAdd_CommutativeAndShapePreserving(t *testing.T) {
	t.Parallel()

	a, b := randomPair(t, 6, 4)
	ab, err := matrix.Add(a, b)
	require.NoError(t, err)
	ba, err := matrix.Add(b, a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))

	r, c := ab.Shape()
	require.Equal(t, 6, r)
	require.Equal(t, 4, c)
}

// Every operand form (fresh allocation vs. accumulation into either operand's
// clone) must give the same result.
func TestAdd_FormsEquivalent(t *testing.T) {
	t.Parallel()

	a, b := randomPair(t, 5, 5)
	want, err := matrix.Add(a, b)
	require.NoError(t, err)

	left := a.Clone()
	require.NoError(t, matrix.AddInPlace(left, b))
	require.True(t, left.Equal(want), "a += b")

	right := b.Clone()
	require.NoError(t, matrix.AddInPlace(right, a))
	require.True(t, right.Equal(want), "b += a")

	viaClones, err := matrix.Add(a.Clone(), b.Clone())
	require.NoError(t, err)
	require.True(t, viaClones.Equal(want), "clone + clone")
}

func TestAddInPlace_MatchesAdd(t *testing.T) {
	t.Parallel()

	a, b := randomPair(t, 3, 7)
	c, err := matrix.Add(a.Clone(), b)
	require.NoError(t, err)
	require.NoError(t, matrix.AddInPlace(a, b))
	require.True(t, a.Equal(c))
}

func TestAddInPlace_SelfDoubles(t *testing.T) {
	t.Parallel()

	m := seq3(t)
	require.NoError(t, matrix.AddInPlace(m, m))
	require.Equal(t, 18.0, MustAt(t, m, 2, 2))
}

func TestAdd_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 3, []float64{1, 1, 2, 3, 0, 0})
	b := MustNew(t, 2, 2, []float64{2, 2, 1, 0})

	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "(2,3) vs (2,2)")

	snapshot := a.Clone()
	err = matrix.AddInPlace(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.True(t, a.Equal(snapshot), "failed AddInPlace must not write")

	_, err = matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// --- Mul / MulInto ------------------------------------------------------------

func TestMul_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b *matrix.F64
		want *matrix.F64
	}{
		{
			name: "identity times seq",
			a:    identity3(t),
			b:    seq3(t),
			want: seq3(t),
		},
		{
			name: "row vector picks first row",
			a:    MustNew(t, 1, 3, []float64{1, 0, 0}),
			b:    seq3(t),
			want: MustNew(t, 1, 3, []float64{1, 2, 3}),
		},
		{
			name: "2x2",
			a:    MustNew(t, 2, 2, []float64{2, 2, 1, 0}),
			b:    MustNew(t, 2, 2, []float64{1, 1, 2, 3}),
			want: MustNew(t, 2, 2, []float64{6, 8, 1, 1}),
		},
		{
			name: "column times row is outer product",
			a:    MustNew(t, 2, 1, []float64{1, 2}),
			b:    MustNew(t, 1, 3, []float64{3, 4, 5}),
			want: MustNew(t, 2, 3, []float64{3, 4, 5, 6, 8, 10}),
		},
		{
			name: "empty inner dimension",
			a:    matrix.Must(matrix.Zeros[float64](2, 0)),
			b:    matrix.Must(matrix.Zeros[float64](0, 3)),
			want: matrix.Must(matrix.Zeros[float64](2, 3)),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Mul(tc.a, tc.b)
			require.NoError(t, err)
			require.True(t, got.Equal(tc.want), "got:\n%vwant:\n%v", got, tc.want)
		})
	}
}

func TestMul_IdentityBothSides(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random[float64](4, 6, matrix.WithSeed(99))
	require.NoError(t, err)
	left := matrix.Must(matrix.Identity[float64](4))
	right := matrix.Must(matrix.Identity[float64](6))

	ia, err := matrix.Mul(left, a)
	require.NoError(t, err)
	require.True(t, ia.Equal(a), "I*A")

	ai, err := matrix.Mul(a, right)
	require.NoError(t, err)
	require.True(t, ai.Equal(a), "A*I")
}

// Zero entries are not skipped, so NaN in B still reaches the product.
func TestMul_NoZeroShortcut(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 1, 2, []float64{0, 1})
	b := MustNew(t, 2, 1, []float64{math.NaN(), 2})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, got, 0, 0)))
}

func TestMul_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := MustNew(t, 2, 2, []float64{1, 2, 3, 4})
	got, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Nil(t, got)
	require.Contains(t, err.Error(), "(2,3) vs (2,2)")
}

func TestMulInto_Accumulates(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{2, 2, 1, 0})
	b := MustNew(t, 2, 2, []float64{1, 1, 2, 3})

	dst := matrix.Must(matrix.Zeros[float64](2, 2))
	require.NoError(t, matrix.MulInto(dst, a, b))
	require.True(t, dst.Equal(MustNew(t, 2, 2, []float64{6, 8, 1, 1})))

	require.NoError(t, matrix.MulInto(dst, a, b))
	require.True(t, dst.Equal(MustNew(t, 2, 2, []float64{12, 16, 2, 2})), "second call accumulates")
}

func TestMulInto_Rejections(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 2, 2, []float64{2, 2, 1, 0})
	b := MustNew(t, 2, 2, []float64{1, 1, 2, 3})

	wrong := matrix.Must(matrix.Zeros[float64](2, 3))
	err := matrix.MulInto(wrong, a, b)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.True(t, wrong.Equal(matrix.Must(matrix.Zeros[float64](2, 3))))

	err = matrix.MulInto(a, a, b)
	require.ErrorIs(t, err, matrix.ErrAliasedOutput)
	require.True(t, a.Equal(MustNew(t, 2, 2, []float64{2, 2, 1, 0})))

	err = matrix.MulInto(nil, a, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	err = matrix.MulInto(wrong, a, MustNew(t, 3, 1, []float64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

// --- Dot ----------------------------------------------------------------------

func TestDot_Scenarios(t *testing.T) {
	t.Parallel()

	a := MustNew(t, 1, 3, []float64{1, 0, 0})
	b := MustNew(t, 1, 3, []float64{1, 2, 3})
	got, err := matrix.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	got, err = identity3(t).Dot(seq3(t))
	require.NoError(t, err)
	require.Equal(t, 15.0, got)

	// Shapes may differ as long as lengths match.
	col := MustNew(t, 3, 1, []float64{1, 2, 3})
	got, err = matrix.Dot(b, col)
	require.NoError(t, err)
	require.Equal(t, 14.0, got)
}

func TestDot_Symmetric(t *testing.T) {
	t.Parallel()

	a, b := randomPair(t, 8, 8)
	ab, err := matrix.Dot(a, b)
	require.NoError(t, err)
	ba, err := matrix.Dot(b, a)
	require.NoError(t, err)
	require.Equal(t, ab, ba)
}

// TestDot_MatchesSumAndDoesNotAllocate checks Dot against Sum over the
// explicit products and that it needs no scratch buffer.
func TestDot_MatchesSumAndDoesNotAllocate(t *testing.T) {
	a, b := randomPair(t, 16, 16)
	ad, bd := a.Data(), b.Data()
	prod := make([]float64, len(ad))
	for i := range prod {
		prod[i] = ad[i] * bd[i]
	}
	got, err := matrix.Dot(a, b)
	require.NoError(t, err)
	require.Equal(t, matrix.Sum(prod), got)

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = matrix.Dot(a, b)
	})
	require.Zero(t, allocs)
}

func TestDot_SizeMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Dot(MustNew(t, 1, 2, []float32{1, 2}), MustNew(t, 1, 3, []float32{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
