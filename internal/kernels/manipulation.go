package kernels

// ArgMax returns the row-major flat index of the largest element of the I×J
// matrix a. Ties resolve to the first occurrence.
func ArgMax[T Float](a []T, I, J int) int {
	if debug {
		mustHold(validateSame("argmax", I, J, len(a)))
	}

	maxVal := a[0]
	maxIdx := 0
	counter := 0
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			if x := a[i*J+j]; maxVal < x {
				maxIdx = counter
				maxVal = x
			}
			counter++
		}
	}

	return maxIdx
}

// Transpose writes B[i][j] = A[j][i] for an I×J output.
//
// Only square matrices (I == J) are supported. For I != J the indexing reads
// A as a J×I matrix; generated code never relies on that, and debug builds
// reject it with ErrNotSquare.
func Transpose[T Float](a, b []T, I, J int) {
	if debug {
		mustHold(ValidateTranspose(len(a), len(b), I, J))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			b[i*J+j] = a[j*I+i]
		}
	}
}
