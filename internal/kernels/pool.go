package kernels

// Maxpool takes the maximum over non-overlapping stride×stride windows of the
// N×H×W×C tensor a and writes the N×(H/stride)×(W/stride)×C result to b.
//
// Trailing rows and columns that do not fill a whole window are dropped.
//
// Example (stride=2, one channel):
//
//	[[1 2 3 4]         [[6 8]
//	 [5 6 7 8]    ->    [14 16]]
//	 [9 10 11 12]
//	 [13 14 15 16]]
func Maxpool[T Float](a, b []T, N, H, W, C, stride int) {
	if debug {
		mustHold(ValidateMaxpool(len(a), len(b), N, H, W, C, stride))
	}

	HO := H / stride
	WO := W / stride

	for n := 0; n < N; n++ {
		for ho := 0; ho < HO; ho++ {
			for wo := 0; wo < WO; wo++ {
				for c := 0; c < C; c++ {
					hStart := stride * ho
					wStart := stride * wo

					maxVal := a[n*H*W*C+hStart*W*C+wStart*C+c]
					for hs := 0; hs < stride; hs++ {
						rowStart := n*H*W*C + (hStart+hs)*W*C
						for ws := 0; ws < stride; ws++ {
							if v := a[rowStart+(wStart+ws)*C+c]; v > maxVal {
								maxVal = v
							}
						}
					}

					b[n*HO*WO*C+ho*WO*C+wo*C+c] = maxVal
				}
			}
		}
	}
}
