// File: alloc/mmap_stub.go
//go:build !linux

//
// Non-Linux fallback: Mmap degrades to the plain heap strategy.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

// Mmap is a heap-backed stand-in on platforms without the Linux
// mapping path.
type Mmap struct {
	heap Heap
}

// NewMmap returns the fallback strategy.
func NewMmap() *Mmap { return &Mmap{} }

func (m *Mmap) Alloc(capacity int) []byte { return m.heap.Alloc(capacity) }

func (m *Mmap) Realloc(buf []byte, capacity int) []byte {
	return m.heap.Realloc(buf, capacity)
}

func (m *Mmap) Free(buf []byte) { m.heap.Free(buf) }
