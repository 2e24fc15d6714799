package kernels

// The Validate functions check the preconditions a kernel relies on without
// running it. Kernels never call them on the hot path; debug builds
// (-tags edgedebug) assert them on entry.

// ValidateDepth checks that d collapses width values into exactly one.
func ValidateDepth(width int, d Depth) error {
	if width < 1 {
		return shapeErr("depth", "width", 1, width, ErrDim)
	}
	if d.H1 < 0 {
		return shapeErr("depth", "H1", 0, d.H1, ErrDepth)
	}
	if d.H2 < 0 {
		return shapeErr("depth", "H2", 0, d.H2, ErrDepth)
	}
	if want := Levels(width); d.Levels() != want {
		return shapeErr("depth", "H1+H2", want, d.Levels(), ErrDepth)
	}
	return nil
}

// ValidateReduce checks a Reduce call over a scratch buffer of tmpLen elements.
func ValidateReduce(tmpLen, width int, d Depth) error {
	if err := ValidateDepth(width, d); err != nil {
		return err
	}
	if tmpLen < width {
		return shapeErr("reduce", "tmp", width, tmpLen, ErrScratch)
	}
	return nil
}

// ValidateMatMul checks the operands of MatMul.
func ValidateMatMul[T Float](a, b Reader[T], c, tmp []T, I, K, J int, d Depth) error {
	if err := positive("matmul", I, K, J); err != nil {
		return err
	}
	if err := ValidateDepth(K, d); err != nil {
		return err
	}

	switch {
	case a.Len() < I*K:
		return shapeErr("matmul", "A", I*K, a.Len(), ErrShape)
	case b.Len() < K*J:
		return shapeErr("matmul", "B", K*J, b.Len(), ErrShape)
	case len(c) < I*J:
		return shapeErr("matmul", "C", I*J, len(c), ErrShape)
	case len(tmp) < K:
		return shapeErr("matmul", "tmp", K, len(tmp), ErrScratch)
	}
	return nil
}

// ValidateConv checks the operands of Conv.
func ValidateConv[T Float](a, b Reader[T], c, tmp []T, N, H, W, CI, HF, WF, CO int, d Depth) error {
	if err := positive("conv", N, H, W, CI, HF, WF, CO); err != nil {
		return err
	}
	width := HF * WF * CI
	if err := ValidateDepth(width, d); err != nil {
		return err
	}

	switch {
	case a.Len() < N*H*W*CI:
		return shapeErr("conv", "A", N*H*W*CI, a.Len(), ErrShape)
	case b.Len() < HF*WF*CI*CO:
		return shapeErr("conv", "B", HF*WF*CI*CO, b.Len(), ErrShape)
	case len(c) < N*H*W*CO:
		return shapeErr("conv", "C", N*H*W*CO, len(c), ErrShape)
	case len(tmp) < width:
		return shapeErr("conv", "tmp", width, len(tmp), ErrScratch)
	}
	return nil
}

// ValidateSparse walks the sparse encoding the way SparseMatMul does and
// checks that it holds K terminated runs, that every index addresses c and
// that val has one entry per index.
func ValidateSparse(idx []int, valLen, bLen, cLen, K int) error {
	if K < 0 {
		return shapeErr("sparsematmul", "K", 0, K, ErrDim)
	}
	if bLen < K {
		return shapeErr("sparsematmul", "B", K, bLen, ErrShape)
	}

	pos, nonzero := 0, 0
	for k := 0; k < K; k++ {
		for {
			if pos >= len(idx) {
				return shapeErr("sparsematmul", "terminators", K, k, ErrSparse)
			}
			x := idx[pos]
			pos++
			if x == 0 {
				break
			}
			if x < 0 || x > cLen {
				return shapeErr("sparsematmul", "index", cLen, x, ErrShape)
			}
			nonzero++
		}
	}

	if nonzero > valLen {
		return shapeErr("sparsematmul", "values", nonzero, valLen, ErrSparse)
	}
	return nil
}

// ValidateTranspose checks the operands of Transpose, including the square
// shape it requires.
func ValidateTranspose(aLen, bLen, I, J int) error {
	if err := positive("transpose", I, J); err != nil {
		return err
	}
	if I != J {
		return shapeErr("transpose", "J", I, J, ErrNotSquare)
	}
	switch {
	case aLen < I*J:
		return shapeErr("transpose", "A", I*J, aLen, ErrShape)
	case bLen < I*J:
		return shapeErr("transpose", "B", I*J, bLen, ErrShape)
	}
	return nil
}

// ValidateMaxpool checks the operands of Maxpool.
func ValidateMaxpool(aLen, bLen, N, H, W, C, stride int) error {
	if stride <= 0 {
		return shapeErr("maxpool", "stride", 1, stride, ErrStride)
	}
	if err := positive("maxpool", N, H, W, C); err != nil {
		return err
	}
	out := N * (H / stride) * (W / stride) * C
	switch {
	case aLen < N*H*W*C:
		return shapeErr("maxpool", "A", N*H*W*C, aLen, ErrShape)
	case bLen < out:
		return shapeErr("maxpool", "B", out, bLen, ErrShape)
	}
	return nil
}

// validateSame checks that every buffer holds at least rows·cols elements.
func validateSame(op string, rows, cols int, lens ...int) error {
	if err := positive(op, rows, cols); err != nil {
		return err
	}
	for _, n := range lens {
		if n < rows*cols {
			return shapeErr(op, "buffer", rows*cols, n, ErrShape)
		}
	}
	return nil
}

// validateBroadcast checks a scalar-by-tensor call.
func validateBroadcast(op string, rows, cols, scalarLen, tensorLen, outLen int) error {
	if scalarLen < 1 {
		return shapeErr(op, "scalar", 1, scalarLen, ErrShape)
	}
	return validateSame(op, rows, cols, tensorLen, outLen)
}

// validateBias checks a per-last-dimension bias call over rows×cols elements.
func validateBias(op string, rows, cols, aLen, bLen int) error {
	if bLen < cols {
		return shapeErr(op, "bias", cols, bLen, ErrShape)
	}
	return validateSame(op, rows, cols, aLen)
}

func positive(op string, dims ...int) error {
	for _, d := range dims {
		if d <= 0 {
			return shapeErr(op, "dimension", 1, d, ErrDim)
		}
	}
	return nil
}
