// File: alloc/freelist.go
// Author: momentics <momentics@gmail.com>
//
// Recycling byte strategy with size class subpooling. Freed blocks are
// parked in per-class queues and handed back out on later Alloc calls.
// Not thread-safe; the queue and the containers share the same
// single-owner discipline.

package alloc

import (
	"github.com/eapache/queue"

	"github.com/momentics/flexgrow/api"
)

// Predefined (power-of-two) block size classes (bytes).
// This table can be tuned for deployment needs.
var sizeClasses = [...]int{
	64,
	256,
	1024,
	4 * 1024,
	16 * 1024,
	64 * 1024,
	256 * 1024,
	1024 * 1024,
}

// classUpperBound returns the smallest class >= requested size, or the
// request itself for sizes beyond the table (no recycling for those).
func classUpperBound(size int) int {
	for _, c := range sizeClasses {
		if size <= c {
			return c
		}
	}
	return size
}

const defaultRetainPerClass = 64

// Freelist recycles freed blocks through per-class FIFO queues.
// Recycled blocks are dirty: Alloc makes no zeroing promise, per the
// api.Allocator contract.
type Freelist struct {
	classes map[int]*queue.Queue
	retain  int // max blocks parked per class; overflow goes to the GC
}

// NewFreelist returns an empty freelist with the default retention cap.
func NewFreelist() *Freelist {
	return &Freelist{
		classes: make(map[int]*queue.Queue),
		retain:  defaultRetainPerClass,
	}
}

func (f *Freelist) Alloc(capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	clz := classUpperBound(capacity)
	if q, ok := f.classes[clz]; ok && q.Length() > 0 {
		blk := q.Remove().([]byte)
		return blk[:capacity]
	}
	return make([]byte, capacity, clz)
}

func (f *Freelist) Realloc(buf []byte, capacity int) []byte {
	if capacity < 0 {
		panic(api.ErrNegativeCount)
	}
	if capacity <= cap(buf) {
		return buf[:capacity]
	}
	next := f.Alloc(capacity)
	copy(next, buf)
	f.Free(buf)
	return next
}

func (f *Freelist) Free(buf []byte) {
	clz := cap(buf)
	if clz == 0 {
		return
	}
	q, ok := f.classes[clz]
	if !ok {
		q = queue.New()
		f.classes[clz] = q
	}
	if q.Length() >= f.retain {
		return // class full, GC handles memory
	}
	q.Add(buf[:cap(buf)])
}

// Parked reports how many blocks are currently retained for the class
// covering size. Exposed for tests and capacity tuning.
func (f *Freelist) Parked(size int) int {
	if q, ok := f.classes[classUpperBound(size)]; ok {
		return q.Length()
	}
	return 0
}

// SlotFreelist recycles reference-slot arrays the same way. Parked
// arrays are cleared first so freed containers do not pin pointees
// against the GC.
type SlotFreelist[T any] struct {
	classes map[int]*queue.Queue
	retain  int
}

// NewSlotFreelist returns an empty slot freelist for element type T.
func NewSlotFreelist[T any]() *SlotFreelist[T] {
	return &SlotFreelist[T]{
		classes: make(map[int]*queue.Queue),
		retain:  defaultRetainPerClass,
	}
}

func (f *SlotFreelist[T]) AllocSlots(n int) []T {
	if n < 0 {
		panic(api.ErrNegativeCount)
	}
	clz := classUpperBound(n)
	if q, ok := f.classes[clz]; ok && q.Length() > 0 {
		slots := q.Remove().([]T)
		return slots[:n]
	}
	return make([]T, n, clz)
}

func (f *SlotFreelist[T]) ReallocSlots(slots []T, n int) []T {
	if n < 0 {
		panic(api.ErrNegativeCount)
	}
	if n <= cap(slots) {
		return slots[:n]
	}
	next := f.AllocSlots(n)
	copy(next, slots)
	f.FreeSlots(slots)
	return next
}

func (f *SlotFreelist[T]) FreeSlots(slots []T) {
	clz := cap(slots)
	if clz == 0 {
		return
	}
	q, ok := f.classes[clz]
	if !ok {
		q = queue.New()
		f.classes[clz] = q
	}
	if q.Length() >= f.retain {
		return
	}
	full := slots[:cap(slots)]
	clear(full) // drop references before parking
	q.Add(full)
}
