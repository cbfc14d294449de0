// File: api/allocator.go
// Author: momentics <momentics@gmail.com>
//
// Defines the pluggable allocation strategy contracts shared by all
// flexgrow containers. A strategy mirrors the malloc/realloc/free triple:
// containers never call make or append on their own storage.

package api

// Allocator provides byte storage for FlexBuf.
type Allocator interface {
	// Alloc returns a slice with len == cap == capacity. Contents may be
	// dirty when the strategy recycles blocks.
	Alloc(capacity int) []byte

	// Realloc resizes buf to capacity, preserving the leading
	// min(len(buf), capacity) bytes. The returned slice may be the input
	// or a fresh block; the input must not be used afterwards.
	Realloc(buf []byte, capacity int) []byte

	// Free returns buf to the strategy. buf must not be used afterwards.
	Free(buf []byte)
}

// SlotAllocator provides reference-slot storage for Slice[T]. The slots
// hold references only; the pointees are never owned by the strategy.
type SlotAllocator[T any] interface {
	AllocSlots(n int) []T
	ReallocSlots(slots []T, n int) []T
	FreeSlots(slots []T)
}
