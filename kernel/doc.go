// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the float32 inference kernels of the edge runtime.
//
// # Overview
//
// The kernels are the execution backend for generated inference code on
// embedded devices:
//   - Elementwise, broadcast and bias arithmetic
//   - Dense matrix multiplication over a pairwise reduction
//   - Sparse matrix multiplication
//   - Zero-padded 2D convolution
//   - Max pooling, clipping, sigmoid, exp, relu, argmax and transpose
//
// Every kernel works on caller-owned flat buffers with explicit dimensions,
// writes its output in place and never allocates.
//
// # Basic Usage
//
//	a := []float32{1, 2, 3, 4}
//	b := []float32{5, 6, 7, 8}
//	c := make([]float32, 4)
//	tmp := make([]float32, 2) // scratch, at least K elements
//
//	kernel.MatMulNN(a, b, c, tmp, 2, 2, 2, kernel.Shifts{}, kernel.DepthFor(2, 1))
//	// c == [19 22 43 50]
//
// # Reductions
//
// MatMul and Conv sum their products with a log-depth pairwise reduction in
// caller-provided scratch. Depth{H1, H2} must cover exactly Levels(width)
// levels; use DepthFor to build one.
//
// # Preconditions
//
// Kernels do not check shapes. Use the Validate functions to check a call
// up front, or build with -tags edgedebug to assert them inside the kernels.
//
// # Thread Safety
//
// Kernels share no state. TanH, Sigmoid, Relu2D, Relu4D and the AddOrSubCir
// kernels modify their input in place and must not run concurrently on
// overlapping ranges of one buffer.
package kernel
