// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/born-ml/edge/internal/kernels"
)

// Shifts carries the fixed-point scale factors shared with quantized
// kernels. Float kernels ignore them.
type Shifts = kernels.Shifts

// Depth splits a reduction into H1 rescaling and H2 plain levels.
type Depth = kernels.Depth

// RangeObserver receives the values Exp reports for profiling.
type RangeObserver = kernels.RangeObserver

// View is a read-only float32 operand. Build one with ReadOnly.
type View = kernels.View[float32]

// ShapeError describes a failed precondition.
type ShapeError = kernels.ShapeError

// Precondition errors.
var (
	ErrDim       = kernels.ErrDim
	ErrShape     = kernels.ErrShape
	ErrScratch   = kernels.ErrScratch
	ErrDepth     = kernels.ErrDepth
	ErrSparse    = kernels.ErrSparse
	ErrNotSquare = kernels.ErrNotSquare
	ErrStride    = kernels.ErrStride
)

// Levels returns the number of reduction levels for width values.
func Levels(width int) int { return kernels.Levels(width) }

// DepthFor returns the Depth for width values with h1 rescaling levels.
func DepthFor(width, h1 int) Depth { return kernels.DepthFor(width, h1) }

// Reduce collapses tmp[0:width] by pairwise summation and returns the sum.
func Reduce(tmp []float32, width int, d Depth) float32 {
	return kernels.Reduce(tmp, width, d)
}

// MatAdd computes C = A + B.
func MatAdd(a, b, c []float32, I, J int, sh Shifts) { kernels.MatAdd(a, b, c, I, J, sh) }

// MatAddBroadcastA computes C = a[0] + B.
func MatAddBroadcastA(a, b, c []float32, I, J int, sh Shifts) {
	kernels.MatAddBroadcastA(a, b, c, I, J, sh)
}

// MatAddBroadcastB computes C = A + b[0].
func MatAddBroadcastB(a, b, c []float32, I, J int, sh Shifts) {
	kernels.MatAddBroadcastB(a, b, c, I, J, sh)
}

// MatSub computes C = A - B.
func MatSub(a, b, c []float32, I, J int, sh Shifts) { kernels.MatSub(a, b, c, I, J, sh) }

// MatSubBroadcastA computes C = a[0] - B.
func MatSubBroadcastA(a, b, c []float32, I, J int, sh Shifts) {
	kernels.MatSubBroadcastA(a, b, c, I, J, sh)
}

// MatSubBroadcastB computes C = A - b[0].
func MatSubBroadcastB(a, b, c []float32, I, J int, sh Shifts) {
	kernels.MatSubBroadcastB(a, b, c, I, J, sh)
}

// MatMulNN computes C = A · B. tmp must hold K elements.
func MatMulNN(a, b, c, tmp []float32, I, K, J int, sh Shifts, d Depth) {
	kernels.MatMulNN(a, b, c, tmp, I, K, J, sh, d)
}

// MatMulCN computes C = A · B for a read-only A.
func MatMulCN(a View, b, c, tmp []float32, I, K, J int, sh Shifts, d Depth) {
	kernels.MatMulCN(a, b, c, tmp, I, K, J, sh, d)
}

// MatMulNC computes C = A · B for a read-only B.
func MatMulNC(a []float32, b View, c, tmp []float32, I, K, J int, sh Shifts, d Depth) {
	kernels.MatMulNC(a, b, c, tmp, I, K, J, sh, d)
}

// MatMulCC computes C = A · B for read-only A and B.
func MatMulCC(a, b View, c, tmp []float32, I, K, J int, sh Shifts, d Depth) {
	kernels.MatMulCC(a, b, c, tmp, I, K, J, sh, d)
}

// ReadOnly wraps s for the read-only operands of MatMulCN, MatMulNC,
// MatMulCC and Conv.
func ReadOnly(s []float32) View { return kernels.ViewOf(s) }

// SparseMatMul accumulates C += A·B for a sparse A and a K×1 column B.
// c must be zeroed by the caller.
func SparseMatMul(idx []int, val, b, c []float32, K int, sh Shifts) {
	kernels.SparseMatMul(idx, val, b, c, K, sh)
}

// MulCir computes the elementwise product C = A ⊙ B.
func MulCir(a, b, c []float32, I, J int, sh Shifts) { kernels.MulCir(a, b, c, I, J, sh) }

// ScalarMul computes C = a[0] · B.
func ScalarMul(a, b, c []float32, I, J int, sh Shifts) { kernels.ScalarMul(a, b, c, I, J, sh) }

// Conv computes C[N][H][W][CO] = A[N][H][W][CI] # B[HF][WF][CI][CO] with
// implicit zero padding. tmp must hold HF·WF·CI elements.
func Conv(a []float32, b View, c, tmp []float32, N, H, W, CI, HF, WF, CO int, sh Shifts, d Depth) {
	kernels.Conv(kernels.Buffer[float32](a), b, c, tmp, N, H, W, CI, HF, WF, CO, sh, d)
}

// AddOrSubCir4D adds or subtracts the per-channel bias b[C] in place.
func AddOrSubCir4D(a, b []float32, N, H, W, C int, sh Shifts, add bool) {
	kernels.AddOrSubCir4D(a, b, N, H, W, C, sh, add)
}

// AddOrSubCir2D adds or subtracts the per-column bias b[W] in place.
func AddOrSubCir2D(a, b []float32, H, W int, sh Shifts, add bool) {
	kernels.AddOrSubCir2D(a, b, H, W, sh, add)
}

// TanH clips a to [-limit, limit] in place.
func TanH(a []float32, I, J int, limit float32) { kernels.TanH(a, I, J, limit) }

// Sigmoid applies the logistic function to a in place.
func Sigmoid(a []float32, I, J int) { kernels.Sigmoid(a, I, J) }

// Exp computes B = exp(A), reporting -A to obs when obs is non-nil.
func Exp(a []float32, I, J int, sh Shifts, b []float32, obs RangeObserver) {
	kernels.Exp(a, I, J, sh, b, obs)
}

// Relu4D zeroes the negative elements of an N×H×W×C tensor in place.
func Relu4D(a []float32, N, H, W, C int) { kernels.Relu4D(a, N, H, W, C) }

// Relu2D zeroes the negative elements of an H×W matrix in place.
func Relu2D(a []float32, H, W int) { kernels.Relu2D(a, H, W) }

// Maxpool takes the max over non-overlapping stride×stride windows.
func Maxpool(a, b []float32, N, H, W, C, stride int) { kernels.Maxpool(a, b, N, H, W, C, stride) }

// ArgMax returns the flat index of the first largest element.
func ArgMax(a []float32, I, J int) int { return kernels.ArgMax(a, I, J) }

// Transpose writes B = Aᵀ for a square I×J matrix.
func Transpose(a, b []float32, I, J int) { kernels.Transpose(a, b, I, J) }

// ValidateMatMul checks the operands of a MatMul call.
func ValidateMatMul(a, b, c, tmp []float32, I, K, J int, d Depth) error {
	return kernels.ValidateMatMul[float32](kernels.Buffer[float32](a), kernels.Buffer[float32](b), c, tmp, I, K, J, d)
}

// ValidateConv checks the operands of a Conv call.
func ValidateConv(a, b, c, tmp []float32, N, H, W, CI, HF, WF, CO int, d Depth) error {
	return kernels.ValidateConv[float32](kernels.Buffer[float32](a), kernels.Buffer[float32](b), c, tmp, N, H, W, CI, HF, WF, CO, d)
}

// ValidateSparse checks a SparseMatMul encoding.
func ValidateSparse(idx []int, val, b, c []float32, K int) error {
	return kernels.ValidateSparse(idx, len(val), len(b), len(c), K)
}

// ValidateDepth checks that d reduces width values to one.
func ValidateDepth(width int, d Depth) error { return kernels.ValidateDepth(width, d) }

// ValidateTranspose checks a Transpose call, including its square contract.
func ValidateTranspose(a, b []float32, I, J int) error {
	return kernels.ValidateTranspose(len(a), len(b), I, J)
}

// ValidateMaxpool checks a Maxpool call.
func ValidateMaxpool(a, b []float32, N, H, W, C, stride int) error {
	return kernels.ValidateMaxpool(len(a), len(b), N, H, W, C, stride)
}
