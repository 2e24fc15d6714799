package kernels

import "math"

// RangeObserver receives the values whose range a profiler tracks.
type RangeObserver interface {
	Observe(v float64)
}

// TanH clips every element of the I×J matrix a to [-limit, limit], in place.
//
// This is the hard-clipped approximation used by the generated models, not
// the hyperbolic tangent: values inside the range pass through unchanged.
func TanH[T Float](a []T, I, J int, limit T) {
	if debug {
		mustHold(validateSame("tanh", I, J, len(a)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			x := a[i*J+j]
			switch {
			case x >= limit:
				x = limit
			case x <= -limit:
				x = -limit
			}
			a[i*J+j] = x
		}
	}
}

// Sigmoid applies 1/(1+exp(-x)) to every element of a, in place.
func Sigmoid[T Float](a []T, I, J int) {
	if debug {
		mustHold(validateSame("sigmoid", I, J, len(a)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			x := float64(a[i*J+j])
			a[i*J+j] = T(1 / (1 + math.Exp(-x)))
		}
	}
}

// Exp computes B = exp(A) elementwise. Before each element is computed, obs
// (when non-nil) observes its negation, which is the exponent range a
// fixed-point exp table has to cover. Shifts are ignored.
func Exp[T Float](a []T, I, J int, sh Shifts, b []T, obs RangeObserver) {
	if debug {
		mustHold(validateSame("exp", I, J, len(a), len(b)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			x := float64(a[i*J+j])
			if obs != nil {
				obs.Observe(-x)
			}
			b[i*J+j] = T(math.Exp(x))
		}
	}
}

// Relu4D replaces negative elements of the N×H×W×C tensor a with zero, in place.
func Relu4D[T Float](a []T, N, H, W, C int) {
	if debug {
		mustHold(validateSame("relu4d", N*H*W, C, len(a)))
	}

	for n := 0; n < N; n++ {
		for h := 0; h < H; h++ {
			for w := 0; w < W; w++ {
				base := n*H*W*C + h*W*C + w*C
				relu(a[base : base+C])
			}
		}
	}
}

// Relu2D replaces negative elements of the H×W matrix a with zero, in place.
func Relu2D[T Float](a []T, H, W int) {
	if debug {
		mustHold(validateSame("relu2d", H, W, len(a)))
	}

	for h := 0; h < H; h++ {
		relu(a[h*W : h*W+W])
	}
}

func relu[T Float](row []T) {
	for i, v := range row {
		if v < 0 {
			row[i] = 0
		}
	}
}
