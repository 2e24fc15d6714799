package kernels

// SparseMatMul accumulates C += A·B for a sparse A and a dense K×1 column B.
//
// A is encoded column by column as parallel idx/val sequences: for each of
// the K columns, a run of one-based output indices (each paired with the next
// entry of val) terminated by a single 0. The product for index x is added
// into c[x-1]; c is never cleared, so callers zero it first.
//
//	idx = [1 2 0 3 0], val = [v0 v1 v2], K = 2
//	c[0] += v0*b[0]; c[1] += v1*b[0]; c[2] += v2*b[1]
func SparseMatMul[T Float](idx []int, val, b, c []T, K int, sh Shifts) {
	if debug {
		mustHold(ValidateSparse(idx, len(val), len(b), len(c), K))
	}

	iteIdx, iteVal := 0, 0
	for k := 0; k < K; k++ {
		bk := b[k]

		for x := idx[iteIdx]; x != 0; x = idx[iteIdx] {
			c[x-1] += val[iteVal] * bk
			iteIdx++
			iteVal++
		}
		// Skip the run terminator.
		iteIdx++
	}
}
