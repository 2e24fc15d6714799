package kernels

import "fmt"

// mustHold panics when a debug-build precondition fails.
func mustHold(err error) {
	if err != nil {
		panic(fmt.Sprintf("kernels: %v", err))
	}
}
