// File: alloc/default.go
// Author: momentics <momentics@gmail.com>

package alloc

import (
	"sync"

	"github.com/momentics/flexgrow/api"
)

var (
	defaultOnce sync.Once
	defaultByte api.Allocator
)

// Default returns the process-wide byte strategy so containers created
// without an explicit strategy share one allocator instead of
// fragmenting behavior.
func Default() api.Allocator {
	defaultOnce.Do(func() {
		defaultByte = NewHeap()
	})
	return defaultByte
}

// DefaultSlots returns the default slot strategy for element type T.
func DefaultSlots[T any]() api.SlotAllocator[T] {
	return NewHeapSlots[T]()
}
