// File: flexslice/iter.go
// Author: momentics <momentics@gmail.com>
//
// Accumulating and range-over-func traversal forms. Both share
// ForEach's contract: ascending order, early stop, no visit past the
// stopping index.

package flexslice

import (
	"iter"

	"github.com/momentics/flexgrow/api"
)

// Reduce threads a caller-owned accumulator through every visit,
// stopping early when fn returns api.Stop. fn mutates acc in place;
// Reduce itself never touches it. A package function rather than a
// method so the accumulator type stays independent of T.
func Reduce[T, A any](s *Slice[T], acc *A, fn func(acc *A, idx int, v T) api.Step) {
	for i := 0; i < s.length; i++ {
		if fn(acc, i, s.slots[i]) == api.Stop {
			break
		}
	}
}

// All returns a restartable index/value sequence over the populated
// range, so ordinary for-range loops (and break) replace explicit
// callbacks.
func (s *Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}
