package kernels

// Shifts carries the per-operand power-of-two scale factors of the fixed-point
// kernels that share these call shapes. Float kernels accept and ignore them.
type Shifts struct {
	A int // shrA
	B int // shrB
	C int // shrC
}

// Depth splits the levels of a pairwise reduction into a rescale phase of H1
// levels followed by H2 levels without rescaling.
//
// H1+H2 must equal Levels(width) for the reduction to end on a single value.
type Depth struct {
	H1 int
	H2 int
}

// Levels returns the total number of reduction levels.
func (d Depth) Levels() int {
	return d.H1 + d.H2
}

// Rescales reports whether level falls in the rescale phase.
func (d Depth) Rescales(level int) bool {
	return level < d.H1
}

// Levels returns ceil(log2(width)), the number of pairwise-halving levels
// needed to collapse width values into one. Widths below 2 need none.
func Levels(width int) int {
	levels := 0
	for n := 1; n < width; n <<= 1 {
		levels++
	}
	return levels
}

// DepthFor returns the Depth for a reduction of width values with h1 levels in
// the rescale phase. h1 is clamped to [0, Levels(width)].
func DepthFor(width, h1 int) Depth {
	n := Levels(width)
	h1 = min(max(h1, 0), n)
	return Depth{H1: h1, H2: n - h1}
}
