// Package kernels implements the float inference kernels of the edge runtime.
//
// Every kernel is a pure function over caller-owned flat buffers. Shapes are
// passed as explicit integer dimensions, outputs are written in place and no
// kernel allocates.
package kernels

// Float is the set of element types the kernels are instantiated for.
type Float interface {
	~float32 | ~float64
}

// Reader is read access to a flat row-major buffer.
//
// MatMul and Conv take their operands through Reader so that a caller can pass
// either a mutable Buffer or a read-only View without a separate kernel per
// combination.
type Reader[T Float] interface {
	At(i int) T
	Len() int
}

// Buffer is a caller-owned mutable buffer.
type Buffer[T Float] []T

// At returns the element at flat offset i.
func (b Buffer[T]) At(i int) T { return b[i] }

// Len returns the number of elements.
func (b Buffer[T]) Len() int { return len(b) }

// View is a read-only view of a caller-owned buffer.
type View[T Float] struct {
	data []T
}

// ViewOf wraps s in a read-only View. The slice is not copied.
func ViewOf[T Float](s []T) View[T] {
	return View[T]{data: s}
}

// At returns the element at flat offset i.
func (v View[T]) At(i int) T { return v.data[i] }

// Len returns the number of elements.
func (v View[T]) Len() int { return len(v.data) }
