package kernels

// MatMul computes C[I×J] = A[I×K] · B[K×J].
//
// For every output cell the K products A[i,k]·B[k,j] are written to tmp and
// collapsed by Reduce, so tmp must hold at least K elements and d must satisfy
// d.Levels() == Levels(K). tmp is reused across cells.
//
// A and B are read through Reader; pass a View for operands that must stay
// untouched and a Buffer otherwise. Shifts are ignored.
func MatMul[T Float, A Reader[T], B Reader[T]](a A, b B, c, tmp []T, I, K, J int, sh Shifts, d Depth) {
	if debug {
		mustHold(ValidateMatMul[T](a, b, c, tmp, I, K, J, d))
	}

	for i := 0; i < I; i++ {
		rowStart := i * K
		for j := 0; j < J; j++ {
			for k := 0; k < K; k++ {
				tmp[k] = a.At(rowStart+k) * b.At(k*J+j)
			}
			c[i*J+j] = Reduce(tmp, K, d)
		}
	}
}

// MatMulNN multiplies two mutable operands.
func MatMulNN[T Float](a, b, c, tmp []T, I, K, J int, sh Shifts, d Depth) {
	MatMul(Buffer[T](a), Buffer[T](b), c, tmp, I, K, J, sh, d)
}

// MatMulCN multiplies a read-only A by a mutable B.
func MatMulCN[T Float](a View[T], b, c, tmp []T, I, K, J int, sh Shifts, d Depth) {
	MatMul(a, Buffer[T](b), c, tmp, I, K, J, sh, d)
}

// MatMulNC multiplies a mutable A by a read-only B.
func MatMulNC[T Float](a []T, b View[T], c, tmp []T, I, K, J int, sh Shifts, d Depth) {
	MatMul(Buffer[T](a), b, c, tmp, I, K, J, sh, d)
}

// MatMulCC multiplies two read-only operands.
func MatMulCC[T Float](a, b View[T], c, tmp []T, I, K, J int, sh Shifts, d Depth) {
	MatMul(a, b, c, tmp, I, K, J, sh, d)
}
