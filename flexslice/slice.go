// File: flexslice/slice.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package flexslice

import (
	"github.com/momentics/flexgrow/alloc"
	"github.com/momentics/flexgrow/api"
)

// Slice is a growable array of element references. States are Allocated
// and ZeroState, same shape as flexbuf.Buf. The zero value of T is the
// absent sentinel: Get returns it for any index outside the populated
// range, and sparse Set fills skipped slots with it.
type Slice[T any] struct {
	length int
	slots  []T // len == capacity; nil == ZeroState
	strat  api.SlotAllocator[T]
	opts   api.Options
}

// New allocates a slice with length 0 on the default strategy. A
// capacity request of 0 is coerced up to 1: Allocated always means
// storage exists.
func New[T any](capacity int) *Slice[T] {
	return NewWith[T](capacity, alloc.DefaultSlots[T](), api.Options{})
}

// NewWith allocates a slice on an explicit strategy with explicit
// options.
func NewWith[T any](capacity int, strat api.SlotAllocator[T], opts api.Options) *Slice[T] {
	if capacity == 0 {
		capacity = 1
	}
	return &Slice[T]{
		slots: strat.AllocSlots(capacity),
		strat: strat,
		opts:  opts,
	}
}

// Len reports the populated slot count, sentinel-filled gaps included.
func (s *Slice[T]) Len() int { return s.length }

// Cap reports the allocated slot count. 0 in ZeroState.
func (s *Slice[T]) Cap() int { return len(s.slots) }

// grow ensures room for amt more slots under the shared 1.5x+amount
// policy. Triggers on exact fill (strict >=), like flexbuf.
func (s *Slice[T]) grow(amt int) {
	if amt < 0 {
		panic(api.ErrNegativeCount)
	}
	if s.slots == nil {
		if !s.opts.AutoAllocOnGrow {
			panic(api.ErrUseAfterFree)
		}
		n := amt
		if n == 0 {
			n = 1
		}
		s.slots = s.strat.AllocSlots(n)
	}
	if s.length+amt >= len(s.slots) {
		next := len(s.slots) + len(s.slots)/2 + amt
		if next < len(s.slots) {
			panic(api.ErrNegativeCount) // capacity arithmetic wrapped
		}
		s.slots = s.strat.ReallocSlots(s.slots, next)
	}
}

// Append writes v at length and grows if necessary.
func (s *Slice[T]) Append(v T) {
	s.grow(1)
	s.slots[s.length] = v
	s.length++
}

// Get returns the value at idx, or the zero-value sentinel when the
// slice is in ZeroState or idx lies outside the populated range. Never
// reads storage out of bounds and never signals an error.
func (s *Slice[T]) Get(idx int) T {
	var zero T
	if s.slots == nil || idx < 0 || idx >= s.length {
		return zero
	}
	return s.slots[idx]
}

// Lookup is the comma-ok form of Get: ok is false exactly when Get
// would fall back to the sentinel.
func (s *Slice[T]) Lookup(idx int) (T, bool) {
	var zero T
	if s.slots == nil || idx < 0 || idx >= s.length {
		return zero, false
	}
	return s.slots[idx], true
}

// Set writes v at idx with sparse semantics: storage grows as needed,
// skipped slots in [length, idx) are filled with the sentinel, and
// length becomes idx+1 when idx lies beyond it.
func (s *Slice[T]) Set(idx int, v T) {
	if idx < 0 {
		panic(api.ErrNegativeCount)
	}
	if idx >= len(s.slots) {
		s.grow(idx - len(s.slots))
		if idx >= len(s.slots) {
			// The policy's extra cap/2 truncates to nothing for tiny
			// capacities and lands short of idx; top up so that
			// length <= capacity survives.
			s.slots = s.strat.ReallocSlots(s.slots, idx+1)
		}
	}
	if idx >= s.length {
		var zero T
		for i := s.length; i < idx; i++ {
			s.slots[i] = zero // recycled storage may be dirty
		}
		s.length = idx + 1
	}
	s.slots[idx] = v
}

// ForEach visits indices 0..length-1 in order until fn returns
// api.Stop. Pure side-effecting traversal; no accumulator.
func (s *Slice[T]) ForEach(fn func(idx int, v T) api.Step) {
	for i := 0; i < s.length; i++ {
		if fn(i, s.slots[i]) == api.Stop {
			break
		}
	}
}

// Shrink reallocates capacity down to exactly length+extra slots.
// extra may be 0 for a tight fit; an empty slice keeps one slot so the
// Allocated state still owns storage.
func (s *Slice[T]) Shrink(extra int) {
	if extra < 0 {
		panic(api.ErrNegativeCount)
	}
	if s.slots == nil {
		panic(api.ErrUseAfterFree)
	}
	n := s.length + extra
	if n == 0 {
		n = 1
	}
	s.slots = s.strat.ReallocSlots(s.slots, n)
}

// Free returns slot storage to the strategy and leaves the slice in
// ZeroState. The referenced values are never touched; their lifecycle
// stays with the caller. Safe to call repeatedly.
func (s *Slice[T]) Free() {
	if s.slots == nil {
		return
	}
	s.strat.FreeSlots(s.slots)
	s.slots = nil
	s.length = 0
}
