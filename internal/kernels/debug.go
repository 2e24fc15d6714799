//go:build !edgedebug

package kernels

// debug enables precondition assertions inside the kernels.
// Build with -tags edgedebug to turn them on.
const debug = false
