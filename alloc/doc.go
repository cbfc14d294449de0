// Package alloc
// Author: momentics <momentics@gmail.com>
//
// Allocation strategies for flexgrow containers.
// Implements the api.Allocator and api.SlotAllocator contracts on top of
// the Go heap, a size-classed recycling freelist, and (on Linux) anonymous
// memory mappings. Strategies are single-threaded like the containers that
// use them; callers sharing a strategy across goroutines must serialize
// externally.
// See heap.go, freelist.go, mmap_linux.go for implementation details.
package alloc
