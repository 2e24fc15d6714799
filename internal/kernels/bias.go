package kernels

// AddOrSubCir4D adds (add=true) or subtracts the per-channel bias b[C] to
// every element of the N×H×W×C tensor a, in place.
func AddOrSubCir4D[T Float](a, b []T, N, H, W, C int, sh Shifts, add bool) {
	if debug {
		mustHold(validateBias("addorsubcir4d", N*H*W, C, len(a), len(b)))
	}

	for n := 0; n < N; n++ {
		for h := 0; h < H; h++ {
			for w := 0; w < W; w++ {
				base := n*H*W*C + h*W*C + w*C
				addOrSubRow(a[base:base+C], b, add)
			}
		}
	}
}

// AddOrSubCir2D adds (add=true) or subtracts the per-column bias b[W] to every
// row of the H×W matrix a, in place.
func AddOrSubCir2D[T Float](a, b []T, H, W int, sh Shifts, add bool) {
	if debug {
		mustHold(validateBias("addorsubcir2d", H, W, len(a), len(b)))
	}

	for h := 0; h < H; h++ {
		addOrSubRow(a[h*W:h*W+W], b, add)
	}
}

func addOrSubRow[T Float](row, b []T, add bool) {
	if add {
		for c := range row {
			row[c] += b[c]
		}
		return
	}
	for c := range row {
		row[c] -= b[c]
	}
}
