//go:build edgedebug

package kernels

const debug = true
