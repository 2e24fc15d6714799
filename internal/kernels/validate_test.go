package kernels

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDepth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		d     Depth
		err   error
	}{
		{name: "exact", width: 5, d: Depth{H1: 1, H2: 2}},
		{name: "width one", width: 1, d: Depth{}},
		{name: "too shallow", width: 5, d: Depth{H1: 1, H2: 1}, err: ErrDepth},
		{name: "too deep", width: 4, d: Depth{H1: 3}, err: ErrDepth},
		{name: "negative phase", width: 4, d: Depth{H1: -1, H2: 3}, err: ErrDepth},
		{name: "empty", width: 0, d: Depth{}, err: ErrDim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDepth(tt.width, tt.d)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateMatMul(t *testing.T) {
	a := Buffer[float32](make([]float32, 6))
	b := ViewOf(make([]float32, 6))
	d := DepthFor(3, 1)

	require.NoError(t, ValidateMatMul[float32](a, b, make([]float32, 4), make([]float32, 3), 2, 3, 2, d))

	err := ValidateMatMul[float32](a, b, make([]float32, 4), make([]float32, 2), 2, 3, 2, d)
	require.ErrorIs(t, err, ErrScratch)

	var se *ShapeError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "matmul", se.Op)
	assert.Equal(t, "tmp", se.Operand)
	assert.Equal(t, 3, se.Want)
	assert.Equal(t, 2, se.Got)
	assert.Equal(t, "matmul: tmp: scratch buffer shorter than reduction width (want 3, got 2)", err.Error())

	err = ValidateMatMul[float32](a, b, make([]float32, 3), make([]float32, 3), 2, 3, 2, d)
	require.ErrorIs(t, err, ErrShape)

	err = ValidateMatMul[float32](a, b, make([]float32, 4), make([]float32, 3), 2, 3, 2, Depth{H1: 1})
	require.ErrorIs(t, err, ErrDepth)

	err = ValidateMatMul[float32](a, b, make([]float32, 4), make([]float32, 3), 0, 3, 2, d)
	require.ErrorIs(t, err, ErrDim)
}

func TestValidateConv(t *testing.T) {
	a := ViewOf(make([]float64, 1*4*4*2))
	b := ViewOf(make([]float64, 3*3*2*5))
	d := DepthFor(18, 3)

	require.NoError(t, ValidateConv[float64](a, b, make([]float64, 4*4*5), make([]float64, 18), 1, 4, 4, 2, 3, 3, 5, d))
	require.ErrorIs(t, ValidateConv[float64](a, b, make([]float64, 4*4*5), make([]float64, 17), 1, 4, 4, 2, 3, 3, 5, d), ErrScratch)
	require.ErrorIs(t, ValidateConv[float64](a, b, make([]float64, 4*4*5), make([]float64, 18), 2, 4, 4, 2, 3, 3, 5, d), ErrShape)
	require.ErrorIs(t, ValidateConv[float64](a, b, make([]float64, 4*4*5), make([]float64, 18), 1, 4, 4, 2, 3, 3, 5, Depth{H2: 4}), ErrDepth)
}

func TestValidateSparse(t *testing.T) {
	tests := []struct {
		name   string
		idx    []int
		valLen int
		bLen   int
		cLen   int
		K      int
		err    error
	}{
		{name: "valid", idx: []int{1, 2, 0, 0}, valLen: 2, bLen: 2, cLen: 2, K: 2},
		{name: "missing terminator", idx: []int{1, 2, 0}, valLen: 2, bLen: 2, cLen: 2, K: 2, err: ErrSparse},
		{name: "too few values", idx: []int{1, 2, 0}, valLen: 1, bLen: 1, cLen: 2, K: 1, err: ErrSparse},
		{name: "index past C", idx: []int{3, 0}, valLen: 1, bLen: 1, cLen: 2, K: 1, err: ErrShape},
		{name: "negative index", idx: []int{-1, 0}, valLen: 1, bLen: 1, cLen: 2, K: 1, err: ErrShape},
		{name: "short B", idx: []int{0, 0}, valLen: 0, bLen: 1, cLen: 1, K: 2, err: ErrShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSparse(tt.idx, tt.valLen, tt.bLen, tt.cLen, tt.K)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateMaxpool(t *testing.T) {
	require.NoError(t, ValidateMaxpool(25, 4, 1, 5, 5, 1, 2))
	require.ErrorIs(t, ValidateMaxpool(25, 4, 1, 5, 5, 1, 0), ErrStride)
	require.ErrorIs(t, ValidateMaxpool(25, 3, 1, 5, 5, 1, 2), ErrShape)
}

func TestValidateTranspose(t *testing.T) {
	require.NoError(t, ValidateTranspose(9, 9, 3, 3))
	require.ErrorIs(t, ValidateTranspose(8, 9, 3, 3), ErrShape)
	require.ErrorIs(t, ValidateTranspose(6, 6, 3, 2), ErrNotSquare)
}

func TestValidateHelpers(t *testing.T) {
	require.NoError(t, validateSame("matadd", 2, 2, 4, 4, 4))
	require.ErrorIs(t, validateSame("matadd", 2, 2, 4, 3), ErrShape)
	require.ErrorIs(t, validateBroadcast("scalarmul", 2, 2, 0, 4, 4), ErrShape)
	require.ErrorIs(t, validateBias("addorsubcir2d", 2, 3, 6, 2), ErrShape)
	require.ErrorIs(t, positive("relu4d", 1, 0), ErrDim)
}
