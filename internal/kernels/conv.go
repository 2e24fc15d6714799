package kernels

// Conv computes the zero-padded 2D cross-correlation
// C[N][H][W][CO] = A[N][H][W][CI] # B[HF][WF][CI][CO].
//
// Padding is padH=(HF-1)/2 and padW=(WF-1)/2, which centers odd filters and
// shifts even filters towards the bottom-right. Padding is implicit: input
// positions outside the image read as zero and no padded copy is made.
//
// For each output element the HF·WF·CI products are gathered into tmp in
// (hf, wf, ci) order and collapsed by Reduce, so tmp must hold at least
// HF·WF·CI elements and d must satisfy d.Levels() == Levels(HF·WF·CI).
// Shifts are ignored.
func Conv[T Float, A Reader[T], B Reader[T]](a A, b B, c, tmp []T, N, H, W, CI, HF, WF, CO int, sh Shifts, d Depth) {
	if debug {
		mustHold(ValidateConv[T](a, b, c, tmp, N, H, W, CI, HF, WF, CO, d))
	}

	in := padded[T, A]{
		r:    a,
		H:    H,
		W:    W,
		CI:   CI,
		padH: (HF - 1) / 2,
		padW: (WF - 1) / 2,
	}
	width := HF * WF * CI

	for n := 0; n < N; n++ {
		for h := 0; h < H; h++ {
			for w := 0; w < W; w++ {
				for co := 0; co < CO; co++ {
					counter := 0
					for hf := 0; hf < HF; hf++ {
						for wf := 0; wf < WF; wf++ {
							for ci := 0; ci < CI; ci++ {
								x := in.at(n, h+hf, w+wf, ci)
								f := b.At(hf*WF*CI*CO + wf*CI*CO + ci*CO + co)
								tmp[counter] = x * f
								counter++
							}
						}
					}

					c[n*H*W*CO+h*W*CO+w*CO+co] = Reduce(tmp, width, d)
				}
			}
		}
	}
}

// padded reads an N×H×W×CI input at padded coordinates, returning zero in
// the padding border.
type padded[T Float, R Reader[T]] struct {
	r          R
	H, W, CI   int
	padH, padW int
}

// at returns the input element at padded row ph and column pw, i.e. at image
// position (ph-padH, pw-padW).
func (p padded[T, R]) at(n, ph, pw, ci int) T {
	if ph < p.padH || ph >= p.H+p.padH || pw < p.padW || pw >= p.W+p.padW {
		return 0
	}
	return p.r.At(n*p.H*p.W*p.CI + (ph-p.padH)*p.W*p.CI + (pw-p.padW)*p.CI + ci)
}
