package kernels

import (
	"math/rand"
)

const epsilon = 1e-5

// seq returns [1, 2, ..., n] as T.
func seq[T Float](n int) []T {
	s := make([]T, n)
	for i := range s {
		s[i] = T(i + 1)
	}
	return s
}

// randSlice returns n values uniform in [-1, 1).
func randSlice(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

// randInts returns n small integer-valued floats so sums stay exact.
func randInts(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(rng.Intn(201) - 100)
	}
	return s
}
