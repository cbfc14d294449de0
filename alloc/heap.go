// File: alloc/heap.go
// Author: momentics <momentics@gmail.com>
//
// Plain Go-heap strategies. Freed blocks are left to the GC.

package alloc

import "github.com/momentics/flexgrow/api"

// Heap allocates byte storage with make and lets the GC reclaim it.
type Heap struct{}

// NewHeap returns the heap byte strategy.
func NewHeap() *Heap { return &Heap{} }

func (*Heap) Alloc(capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	return make([]byte, capacity)
}

func (h *Heap) Realloc(buf []byte, capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	if capacity <= cap(buf) {
		return buf[:capacity]
	}
	next := make([]byte, capacity)
	copy(next, buf)
	return next
}

func (*Heap) Free([]byte) {
	// GC handles memory.
}

// HeapSlots is the heap strategy for reference slots.
type HeapSlots[T any] struct{}

// NewHeapSlots returns the heap slot strategy for element type T.
func NewHeapSlots[T any]() *HeapSlots[T] { return &HeapSlots[T]{} }

func (*HeapSlots[T]) AllocSlots(n int) []T {
	if n < 0 {
		panic(api.ErrNegativeCount)
	}
	return make([]T, n)
}

func (*HeapSlots[T]) ReallocSlots(slots []T, n int) []T {
	if n < 0 {
		panic(api.ErrNegativeCount)
	}
	if n <= cap(slots) {
		return slots[:n]
	}
	next := make([]T, n)
	copy(next, slots)
	return next
}

func (*HeapSlots[T]) FreeSlots([]T) {}
