package kernels

// Reduce collapses tmp[0:width] into a single sum using pairwise summation and
// returns it. The result is also left in tmp[0].
//
// Each level adds adjacent pairs, carries an odd leftover unchanged and zeroes
// the slots past the live range:
//
//	level 0: [a b c d e] -> [a+b c+d e 0]
//	level 1:             -> [a+b+c+d e 0]
//	level 2:             -> [a+b+c+d+e 0 0]
//
// The reduction runs d.H1+d.H2 levels, which must equal Levels(width). Levels
// below d.H1 form the rescale phase. Width 1 needs zero levels and returns
// tmp[0] unchanged. Width 0 is not supported.
//
// The reduction is in place: slot p is written only after slots 2p and 2p+1
// have been read, and p <= 2p, so ascending p never clobbers a pending input.
func Reduce[T Float](tmp []T, width int, d Depth) T {
	if debug {
		mustHold(ValidateReduce(len(tmp), width, d))
	}

	count := width
	half := width / 2

	for level := 0; level < d.Levels(); level++ {
		scale := d.Rescales(level)

		for p := 0; p <= half; p++ {
			var sum T
			switch {
			case p < count>>1:
				sum = tmp[2*p] + tmp[2*p+1]
			case p == count>>1 && count&1 == 1:
				sum = tmp[2*p]
			}
			tmp[p] = rescale(sum, scale)
		}

		count = (count + 1) >> 1
	}

	return tmp[0]
}

// rescale is applied to every value a reduction level produces. Float sums
// never need rescaling; the fixed-point kernels sharing this level structure
// shift right by one while scale is set.
func rescale[T Float](v T, scale bool) T {
	return v
}
