// File: flexbuf/buf.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package flexbuf

import (
	"github.com/momentics/flexgrow/alloc"
	"github.com/momentics/flexgrow/api"
)

// Buf is a growable byte buffer. Two states only: Allocated (storage
// held from the strategy) and ZeroState (after Free; no storage).
// Growth operations on a ZeroState Buf panic with api.ErrUseAfterFree
// unless Options.AutoAllocOnGrow resurrects it.
type Buf struct {
	size  int
	data  []byte // len == capacity; nil == ZeroState
	strat api.Allocator
	opts  api.Options
}

// New allocates a buffer with size 0 and the given capacity on the
// default strategy. A capacity of 0 is valid; the buffer grows on the
// first append.
func New(capacity int) *Buf {
	return NewWith(capacity, alloc.Default(), api.Options{})
}

// NewWith allocates a buffer on an explicit strategy with explicit
// options.
func NewWith(capacity int, strat api.Allocator, opts api.Options) *Buf {
	return &Buf{
		data:  strat.Alloc(capacity),
		strat: strat,
		opts:  opts,
	}
}

// Len reports the populated byte count.
func (b *Buf) Len() int { return b.size }

// Cap reports the allocated capacity. 0 in ZeroState.
func (b *Buf) Cap() int { return len(b.data) }

// Bytes returns a view of the populated content. The view is
// invalidated by any growth or by Free.
func (b *Buf) Bytes() []byte { return b.data[:b.size] }

// String copies the populated content out as a string.
func (b *Buf) String() string { return string(b.data[:b.size]) }

// grow ensures room for amt more bytes. Growth triggers even when amt
// would exactly fill remaining capacity, keeping implicit headroom for
// the finalize terminator.
func (b *Buf) grow(amt int) {
	if amt < 0 {
		panic(api.ErrNegativeCount)
	}
	if b.data == nil {
		if !b.opts.AutoAllocOnGrow {
			panic(api.ErrUseAfterFree)
		}
		b.data = b.strat.Alloc(amt)
	}
	if b.size+amt >= len(b.data) {
		next := len(b.data) + len(b.data)/2 + amt
		if next < len(b.data) {
			panic(api.ErrNegativeCount) // capacity arithmetic wrapped
		}
		b.data = b.strat.Realloc(b.data, next)
	}
}

// Append appends a single byte, growing if necessary.
func (b *Buf) Append(c byte) {
	b.grow(1)
	b.data[b.size] = c
	b.size++
}

// AppendN appends the first n bytes of src.
func (b *Buf) AppendN(src []byte, n int) {
	b.grow(n)
	copy(b.data[b.size:], src[:n])
	b.size += n
}

// AppendString appends the whole of s.
func (b *Buf) AppendString(s string) {
	b.grow(len(s))
	copy(b.data[b.size:], s)
	b.size += len(s)
}

// Concat appends the current content of other. other is unaffected.
func (b *Buf) Concat(other *Buf) {
	if other == nil || other.size == 0 {
		return
	}
	b.AppendN(other.data, other.size)
}

// Write makes Buf an io.Writer so callers can io.Copy into it. The
// error is always nil.
func (b *Buf) Write(p []byte) (int, error) {
	b.AppendN(p, len(p))
	return len(p), nil
}

// Shrink reallocates storage down to exactly size+1 capacity, the +1
// reserving room for the Finalize terminator.
func (b *Buf) Shrink() {
	if b.data == nil {
		panic(api.ErrUseAfterFree)
	}
	b.data = b.strat.Realloc(b.data, b.size+1)
}

// Finalize copies exactly size bytes into dst and writes a NUL at
// dst[size]; dst must hold at least size+1 bytes or Finalize panics
// with api.ErrShortDestination. Returns the copied byte count. When
// Options.FreeOnFinalize is set the buffer is also freed, as one
// combined operation.
func (b *Buf) Finalize(dst []byte) int {
	if len(dst) < b.size+1 {
		panic(api.ErrShortDestination)
	}
	n := copy(dst, b.data[:b.size])
	dst[n] = 0
	if b.opts.FreeOnFinalize {
		b.Free()
	}
	return n
}

// Free returns storage to the strategy and leaves the buffer in
// ZeroState. Safe to call repeatedly.
func (b *Buf) Free() {
	if b.data == nil {
		return
	}
	b.strat.Free(b.data)
	b.data = nil
	b.size = 0
}
