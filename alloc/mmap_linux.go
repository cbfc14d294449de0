// File: alloc/mmap_linux.go
//go:build linux

//
// Linux byte strategy backed by anonymous private mappings. Storage
// lives outside the Go heap, so freed blocks return to the OS
// immediately instead of waiting for the GC.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/flexgrow/api"
)

const pageSize = 4096

// Mmap allocates page-granular anonymous mappings. Falls back to the
// heap when the kernel refuses a mapping. Not thread-safe, matching the
// containers it serves.
type Mmap struct {
	heap   Heap
	mapped map[*byte]struct{} // base pointers of live mappings
}

// NewMmap returns the mmap byte strategy.
func NewMmap() *Mmap {
	return &Mmap{mapped: make(map[*byte]struct{})}
}

func (m *Mmap) Alloc(capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	if capacity == 0 {
		return []byte{}
	}
	length := ((capacity + pageSize - 1) / pageSize) * pageSize
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return m.heap.Alloc(capacity)
	}
	m.mapped[&data[0]] = struct{}{}
	return data[:capacity]
}

func (m *Mmap) Realloc(buf []byte, capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	if capacity <= cap(buf) {
		return buf[:capacity]
	}
	next := m.Alloc(capacity)
	copy(next, buf)
	m.Free(buf)
	return next
}

func (m *Mmap) Free(buf []byte) {
	if cap(buf) == 0 {
		return
	}
	full := buf[:cap(buf)]
	if _, ok := m.mapped[&full[0]]; !ok {
		return // heap-fallback block, GC handles memory
	}
	delete(m.mapped, &full[0])
	_ = unix.Munmap(full)
}
