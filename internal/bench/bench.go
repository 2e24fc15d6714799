// Package bench times the float kernels on seeded random inputs and checks
// their results against gonum reference computations.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/born-ml/edge/internal/kernels"
	"github.com/born-ml/edge/internal/profile"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Size selects the problem dimensions of a run.
type Size string

// Supported sizes.
const (
	Small  Size = "small"
	Medium Size = "medium"
)

// ErrUnknownSize is returned for a Size other than Small or Medium.
var ErrUnknownSize = errors.New("unknown bench size")

// Tolerance is the largest absolute error against the reference that still
// counts as verified. Kernels run in float32, references in float64.
const Tolerance = 1e-3

// Config controls a benchmark run.
type Config struct {
	Iterations int          // Timed calls per kernel.
	Seed       int64        // Seed for the random inputs.
	Size       Size         // Problem dimensions.
	Logger     *slog.Logger // Defaults to slog.Default().
}

// Result is the measurement of one kernel.
type Result struct {
	Kernel     string
	Shape      string
	Iterations int
	PerOp      time.Duration
	MaxAbsErr  float64 // NaN when the kernel has no reference.
}

// Verified reports whether the kernel matched its reference.
func (r Result) Verified() bool {
	return !math.IsNaN(r.MaxAbsErr) && r.MaxAbsErr <= Tolerance
}

// HasReference reports whether the kernel was checked at all.
func (r Result) HasReference() bool {
	return !math.IsNaN(r.MaxAbsErr)
}

// kernelCase is one timed kernel. run performs a single call; check, when
// set, runs the kernel on fresh inputs and returns its max absolute error.
type kernelCase struct {
	name  string
	shape string
	run   func()
	check func() float64
}

// Run times every kernel family in order and returns one Result per kernel.
// It stops early when ctx is canceled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("bench: iterations must be positive, got %d", cfg.Iterations)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dims, err := dimsFor(cfg.Size)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	expRange := profile.NewRange("exp")
	cases := buildCases(rng, dims, expRange)

	results := make([]Result, 0, len(cases))
	for _, kc := range cases {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("bench: %w", err)
		}

		res := Result{
			Kernel:     kc.name,
			Shape:      kc.shape,
			Iterations: cfg.Iterations,
			MaxAbsErr:  math.NaN(),
		}

		start := time.Now()
		for i := 0; i < cfg.Iterations; i++ {
			kc.run()
		}
		res.PerOp = time.Since(start) / time.Duration(cfg.Iterations)

		if kc.check != nil {
			res.MaxAbsErr = kc.check()
		}

		logger.Debug("bench kernel", "kernel", res.Kernel, "shape", res.Shape, "per_op", res.PerOp, "max_abs_err", res.MaxAbsErr)
		results = append(results, res)
	}

	expRange.Log(ctx, logger)
	return results, nil
}

// dims holds the problem dimensions of one Size.
type dims struct {
	I, K, J          int // matmul
	N, H, W, CI, CO  int // conv
	HF, WF           int
	SparseK, SparseC int
	Density          float64
	Stride           int // maxpool
}

func dimsFor(s Size) (dims, error) {
	switch s {
	case Small, "":
		return dims{
			I: 16, K: 32, J: 16,
			N: 1, H: 8, W: 8, CI: 4, CO: 8, HF: 3, WF: 3,
			SparseK: 64, SparseC: 32, Density: 0.1,
			Stride: 2,
		}, nil
	case Medium:
		return dims{
			I: 64, K: 128, J: 64,
			N: 1, H: 32, W: 32, CI: 8, CO: 16, HF: 3, WF: 3,
			SparseK: 512, SparseC: 256, Density: 0.05,
			Stride: 2,
		}, nil
	default:
		return dims{}, fmt.Errorf("bench: %w: %q", ErrUnknownSize, s)
	}
}

func buildCases(rng *rand.Rand, d dims, expRange *profile.Range) []kernelCase {
	return []kernelCase{
		matMulCase(rng, d),
		convCase(rng, d),
		pointwiseConvCase(rng, d),
		sparseCase(rng, d),
		matAddCase(rng, d),
		scalarMulCase(rng, d),
		maxpoolCase(rng, d),
		sigmoidCase(rng, d),
		expCase(rng, d, expRange),
	}
}

func matMulCase(rng *rand.Rand, d dims) kernelCase {
	a, b := randFloat32(rng, d.I*d.K), randFloat32(rng, d.K*d.J)
	c, tmp := make([]float32, d.I*d.J), make([]float32, d.K)
	depth := kernels.DepthFor(d.K, kernels.Levels(d.K)/2)
	run := func() {
		kernels.MatMulCC(kernels.ViewOf(a), kernels.ViewOf(b), c, tmp, d.I, d.K, d.J, kernels.Shifts{}, depth)
	}

	return kernelCase{
		name:  "matmul",
		shape: fmt.Sprintf("%dx%d * %dx%d", d.I, d.K, d.K, d.J),
		run:   run,
		check: func() float64 {
			run()
			var ref mat.Dense
			ref.Mul(dense(d.I, d.K, a), dense(d.K, d.J, b))
			return maxAbsErr(ref.RawMatrix().Data, c)
		},
	}
}

func convCase(rng *rand.Rand, d dims) kernelCase {
	a, b := randFloat32(rng, d.N*d.H*d.W*d.CI), randFloat32(rng, d.HF*d.WF*d.CI*d.CO)
	width := d.HF * d.WF * d.CI
	c, tmp := make([]float32, d.N*d.H*d.W*d.CO), make([]float32, width)
	depth := kernels.DepthFor(width, 0)
	run := func() {
		kernels.Conv(kernels.ViewOf(a), kernels.ViewOf(b), c, tmp, d.N, d.H, d.W, d.CI, d.HF, d.WF, d.CO, kernels.Shifts{}, depth)
	}

	return kernelCase{
		name:  "conv",
		shape: fmt.Sprintf("%dx%dx%dx%d # %dx%dx%dx%d", d.N, d.H, d.W, d.CI, d.HF, d.WF, d.CI, d.CO),
		run:   run,
		check: func() float64 {
			run()
			return maxAbsErr(convRef(widen(a), widen(b), d), c)
		},
	}
}

// convRef is a direct zero-padded convolution in float64 with the same
// (HF-1)/2, (WF-1)/2 padding as kernels.Conv.
func convRef(a, b []float64, d dims) []float64 {
	padH, padW := (d.HF-1)/2, (d.WF-1)/2
	out := make([]float64, d.N*d.H*d.W*d.CO)
	for n := 0; n < d.N; n++ {
		for h := 0; h < d.H; h++ {
			for w := 0; w < d.W; w++ {
				for co := 0; co < d.CO; co++ {
					var sum float64
					for hf := 0; hf < d.HF; hf++ {
						y := h + hf - padH
						if y < 0 || y >= d.H {
							continue
						}
						for wf := 0; wf < d.WF; wf++ {
							x := w + wf - padW
							if x < 0 || x >= d.W {
								continue
							}
							for ci := 0; ci < d.CI; ci++ {
								sum += a[((n*d.H+y)*d.W+x)*d.CI+ci] * b[((hf*d.WF+wf)*d.CI+ci)*d.CO+co]
							}
						}
					}
					out[((n*d.H+h)*d.W+w)*d.CO+co] = sum
				}
			}
		}
	}
	return out
}

// pointwiseConvCase checks a 1x1 convolution, which is a matmul of the
// (N·H·W)×CI pixel matrix by the CI×CO filter.
func pointwiseConvCase(rng *rand.Rand, d dims) kernelCase {
	pixels := d.N * d.H * d.W
	a, b := randFloat32(rng, pixels*d.CI), randFloat32(rng, d.CI*d.CO)
	c, tmp := make([]float32, pixels*d.CO), make([]float32, d.CI)
	depth := kernels.DepthFor(d.CI, 1)
	run := func() {
		kernels.Conv(kernels.ViewOf(a), kernels.ViewOf(b), c, tmp, d.N, d.H, d.W, d.CI, 1, 1, d.CO, kernels.Shifts{}, depth)
	}

	return kernelCase{
		name:  "conv1x1",
		shape: fmt.Sprintf("%dx%dx%dx%d # 1x1x%dx%d", d.N, d.H, d.W, d.CI, d.CI, d.CO),
		run:   run,
		check: func() float64 {
			run()
			var ref mat.Dense
			ref.Mul(dense(pixels, d.CI, a), dense(d.CI, d.CO, b))
			return maxAbsErr(ref.RawMatrix().Data, c)
		},
	}
}

func sparseCase(rng *rand.Rand, d dims) kernelCase {
	idx, val, full := randSparse(rng, d.SparseC, d.SparseK, d.Density)
	b := randFloat32(rng, d.SparseK)
	c := make([]float32, d.SparseC)

	return kernelCase{
		name:  "sparsematmul",
		shape: fmt.Sprintf("%dx%d (nnz %d) * %dx1", d.SparseC, d.SparseK, len(val), d.SparseK),
		run: func() {
			clear(c)
			kernels.SparseMatMul(idx, val, b, c, d.SparseK, kernels.Shifts{})
		},
		check: func() float64 {
			clear(c)
			kernels.SparseMatMul(idx, val, b, c, d.SparseK, kernels.Shifts{})
			var ref mat.VecDense
			ref.MulVec(mat.NewDense(d.SparseC, d.SparseK, full), mat.NewVecDense(d.SparseK, widen(b)))
			return maxAbsErr(ref.RawVector().Data, c)
		},
	}
}

func matAddCase(rng *rand.Rand, d dims) kernelCase {
	a, b := randFloat32(rng, d.I*d.J), randFloat32(rng, d.I*d.J)
	c := make([]float32, d.I*d.J)
	run := func() { kernels.MatAdd(a, b, c, d.I, d.J, kernels.Shifts{}) }

	return kernelCase{
		name:  "matadd",
		shape: fmt.Sprintf("%dx%d", d.I, d.J),
		run:   run,
		check: func() float64 {
			run()
			var ref mat.Dense
			ref.Add(dense(d.I, d.J, a), dense(d.I, d.J, b))
			return maxAbsErr(ref.RawMatrix().Data, c)
		},
	}
}

func scalarMulCase(rng *rand.Rand, d dims) kernelCase {
	s, b := randFloat32(rng, 1), randFloat32(rng, d.I*d.J)
	c := make([]float32, d.I*d.J)
	run := func() { kernels.ScalarMul(s, b, c, d.I, d.J, kernels.Shifts{}) }

	return kernelCase{
		name:  "scalarmul",
		shape: fmt.Sprintf("1 * %dx%d", d.I, d.J),
		run:   run,
		check: func() float64 {
			run()
			var ref mat.Dense
			ref.Scale(float64(s[0]), dense(d.I, d.J, b))
			return maxAbsErr(ref.RawMatrix().Data, c)
		},
	}
}

func maxpoolCase(rng *rand.Rand, d dims) kernelCase {
	a := randFloat32(rng, d.N*d.H*d.W*d.CO)
	b := make([]float32, d.N*(d.H/d.Stride)*(d.W/d.Stride)*d.CO)
	run := func() { kernels.Maxpool(a, b, d.N, d.H, d.W, d.CO, d.Stride) }

	return kernelCase{
		name:  "maxpool",
		shape: fmt.Sprintf("%dx%dx%dx%d /%d", d.N, d.H, d.W, d.CO, d.Stride),
		run:   run,
		check: func() float64 {
			run()
			return maxAbsErr(maxpoolRef(widen(a), d), b)
		},
	}
}

func maxpoolRef(a []float64, d dims) []float64 {
	oh, ow := d.H/d.Stride, d.W/d.Stride
	out := make([]float64, d.N*oh*ow*d.CO)
	for n := 0; n < d.N; n++ {
		for i := 0; i < oh; i++ {
			for j := 0; j < ow; j++ {
				for c := 0; c < d.CO; c++ {
					m := math.Inf(-1)
					for y := i * d.Stride; y < (i+1)*d.Stride; y++ {
						for x := j * d.Stride; x < (j+1)*d.Stride; x++ {
							m = math.Max(m, a[((n*d.H+y)*d.W+x)*d.CO+c])
						}
					}
					out[((n*oh+i)*ow+j)*d.CO+c] = m
				}
			}
		}
	}
	return out
}

// sigmoidCase refills the in-place buffer from src before every call so each
// iteration sees the same inputs.
func sigmoidCase(rng *rand.Rand, d dims) kernelCase {
	src := randFloat32(rng, d.I*d.J)
	a := make([]float32, len(src))
	run := func() {
		copy(a, src)
		kernels.Sigmoid(a, d.I, d.J)
	}

	return kernelCase{
		name:  "sigmoid",
		shape: fmt.Sprintf("%dx%d", d.I, d.J),
		run:   run,
		check: func() float64 {
			run()
			ref := widen(src)
			for i, x := range ref {
				ref[i] = 1 / (1 + math.Exp(-x))
			}
			return maxAbsErr(ref, a)
		},
	}
}

func expCase(rng *rand.Rand, d dims, expRange *profile.Range) kernelCase {
	a := randFloat32(rng, d.I*d.J)
	b := make([]float32, d.I*d.J)

	return kernelCase{
		name:  "exp",
		shape: fmt.Sprintf("%dx%d", d.I, d.J),
		run:   func() { kernels.Exp(a, d.I, d.J, kernels.Shifts{}, b, expRange) },
		check: func() float64 {
			kernels.Exp(a, d.I, d.J, kernels.Shifts{}, b, nil)
			ref := widen(a)
			for i, x := range ref {
				ref[i] = math.Exp(x)
			}
			return maxAbsErr(ref, b)
		},
	}
}

// randFloat32 returns n values uniform in [-1, 1).
func randFloat32(rng *rand.Rand, n int) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = rng.Float32()*2 - 1
	}
	return s
}

// randSparse builds a random rows×cols matrix with the given density and
// returns its column-wise sparse encoding together with the dense float64
// copy used as reference.
func randSparse(rng *rand.Rand, rows, cols int, density float64) (idx []int, val []float32, full []float64) {
	full = make([]float64, rows*cols)
	for k := 0; k < cols; k++ {
		for r := 0; r < rows; r++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.Float32()*2 - 1
			idx = append(idx, r+1)
			val = append(val, v)
			full[r*cols+k] = float64(v)
		}
		idx = append(idx, 0)
	}
	return idx, val, full
}

func dense(r, c int, s []float32) *mat.Dense {
	return mat.NewDense(r, c, widen(s))
}

func widen(s []float32) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// maxAbsErr returns the L-infinity distance between ref and got.
func maxAbsErr(ref []float64, got []float32) float64 {
	return floats.Distance(ref, widen(got), math.Inf(1))
}
