package kernels

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// TestConv_SamePadding runs an all-ones 3x3 filter over an all-ones 3x3 image.
// Each output counts the in-bounds taps of its window.
func TestConv_SamePadding(t *testing.T) {
	a := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}
	b := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1}
	c := make([]float32, 9)
	tmp := make([]float32, 9)

	Conv(Buffer[float32](a), ViewOf(b), c, tmp, 1, 3, 3, 1, 3, 3, 1, Shifts{}, DepthFor(9, 2))

	expected := []float32{
		4, 6, 4,
		6, 9, 6,
		4, 6, 4,
	}
	assert.Equal(t, expected, c)
}

// TestConv_EvenFilterIsNotCentered checks that a 2x2 filter gets no top/left
// padding: output (h, w) covers input rows h..h+1 and columns w..w+1.
func TestConv_EvenFilterIsNotCentered(t *testing.T) {
	// 1 2 3
	// 4 5 6
	// 7 8 9
	a := seq[float64](9)
	b := []float64{1, 1, 1, 1}
	c := make([]float64, 9)

	Conv(Buffer[float64](a), Buffer[float64](b), c, make([]float64, 4), 1, 3, 3, 1, 2, 2, 1, Shifts{}, DepthFor(4, 0))

	expected := []float64{
		12, 16, 9,
		24, 28, 15,
		15, 17, 9,
	}
	assert.Equal(t, expected, c)
}

// TestConv_PointwiseIsMatMul checks that a 1x1 convolution equals a dense
// matmul of every pixel's channel vector by the CI×CO filter.
func TestConv_PointwiseIsMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const N, H, W, CI, CO = 2, 3, 4, 5, 3
	a := randInts(rng, N*H*W*CI)
	b := randInts(rng, CI*CO)
	d := DepthFor(CI, 1)

	got := make([]float64, N*H*W*CO)
	Conv(ViewOf(a), ViewOf(b), got, make([]float64, CI), N, H, W, CI, 1, 1, CO, Shifts{}, d)

	want := make([]float64, N*H*W*CO)
	MatMulCC(ViewOf(a), ViewOf(b), want, make([]float64, CI), N*H*W, CI, CO, Shifts{}, d)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("1x1 conv mismatch (-matmul +conv):\n%s", diff)
	}
}

func TestConv_MultiChannel(t *testing.T) {
	// One 2x2 image, CI=2, CO=2, 1x1 filter swapping channels and doubling.
	a := []float32{
		1, 10, 2, 20,
		3, 30, 4, 40,
	}
	b := []float32{
		0, 2, // ci=0 -> co=1
		2, 0, // ci=1 -> co=0
	}
	c := make([]float32, 8)

	Conv(ViewOf(a), ViewOf(b), c, make([]float32, 2), 1, 2, 2, 2, 1, 1, 2, Shifts{}, DepthFor(2, 1))

	assert.Equal(t, []float32{20, 2, 40, 4, 60, 6, 80, 8}, c)
}

func TestConv_Batch(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float64{1, 1, 1}
	c := make([]float64, 8)

	// N=2, H=1, W=4, 1x3 filter: horizontal three-tap sum per image.
	Conv(ViewOf(a), ViewOf(b), c, make([]float64, 3), 2, 1, 4, 1, 1, 3, 1, Shifts{}, DepthFor(3, 2))

	assert.Equal(t, []float64{3, 6, 9, 7, 11, 18, 21, 15}, c)
}
