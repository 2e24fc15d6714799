package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxpool_Basic(t *testing.T) {
	a := seq[float32](16)
	b := make([]float32, 4)

	Maxpool(a, b, 1, 4, 4, 1, 2)

	assert.Equal(t, []float32{6, 8, 14, 16}, b)
}

func TestMaxpool_StrideOneIsIdentity(t *testing.T) {
	a := []float64{3, -1, 4, 1, -5, 9, 2, 6, 5, 3, 5, 8}
	b := make([]float64, len(a))

	// N=1, H=2, W=3, C=2
	Maxpool(a, b, 1, 2, 3, 2, 1)

	assert.Equal(t, a, b)
}

func TestMaxpool_DropsPartialWindows(t *testing.T) {
	// 5x5 with stride 2: output 2x2, last row and column ignored.
	a := seq[float64](25)
	a[24] = 1000
	b := make([]float64, 4)

	Maxpool(a, b, 1, 5, 5, 1, 2)

	assert.Equal(t, []float64{7, 9, 17, 19}, b)
}

func TestMaxpool_ChannelsAndBatch(t *testing.T) {
	// N=2, H=2, W=2, C=2; channel 1 is the negation of channel 0.
	a := []float32{
		1, -1, 2, -2, 3, -3, 4, -4,
		8, -8, 7, -7, 6, -6, 5, -5,
	}
	b := make([]float32, 4)

	Maxpool(a, b, 2, 2, 2, 2, 2)

	assert.Equal(t, []float32{4, -1, 8, -5}, b)
}

func TestMaxpool_NegativeValues(t *testing.T) {
	a := []float64{-4, -3, -2, -9}
	b := make([]float64, 1)

	Maxpool(a, b, 1, 2, 2, 1, 2)

	assert.Equal(t, []float64{-2}, b)
}
