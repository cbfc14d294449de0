// File: alloc/freelist_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/flexgrow/alloc"
	"github.com/momentics/flexgrow/api"
)

func TestFreelistRecyclesBlocks(t *testing.T) {
	fl := alloc.NewFreelist()

	blk := fl.Alloc(100)
	require.Equal(t, 100, len(blk))
	require.Equal(t, 0, fl.Parked(100))

	fl.Free(blk)
	assert.Equal(t, 1, fl.Parked(100))

	again := fl.Alloc(50) // same 256-byte class
	assert.Equal(t, 50, len(again))
	assert.Equal(t, 0, fl.Parked(50), "block should have been handed back out")
}

func TestFreelistReallocPreservesPrefix(t *testing.T) {
	fl := alloc.NewFreelist()

	blk := fl.Alloc(4)
	copy(blk, "abcd")

	blk = fl.Realloc(blk, 5000)
	require.Equal(t, 5000, len(blk))
	assert.Equal(t, "abcd", string(blk[:4]))
	fl.Free(blk)
}

func TestFreelistNegativeCapacityPanics(t *testing.T) {
	fl := alloc.NewFreelist()
	assert.PanicsWithValue(t, api.ErrNegativeCount, func() { fl.Alloc(-1) })
	assert.PanicsWithValue(t, api.ErrNegativeCount, func() { fl.Realloc(nil, -1) })
}

func TestHeapReallocPreservesPrefix(t *testing.T) {
	h := alloc.NewHeap()

	blk := h.Alloc(3)
	copy(blk, "xyz")

	blk = h.Realloc(blk, 300)
	require.Equal(t, 300, len(blk))
	assert.Equal(t, "xyz", string(blk[:3]))

	blk = h.Realloc(blk, 2)
	assert.Equal(t, "xy", string(blk))
}

func TestHeapSlotsRealloc(t *testing.T) {
	hs := alloc.NewHeapSlots[string]()

	slots := hs.AllocSlots(2)
	slots[0], slots[1] = "a", "b"

	slots = hs.ReallocSlots(slots, 8)
	require.Equal(t, 8, len(slots))
	assert.Equal(t, "a", slots[0])
	assert.Equal(t, "b", slots[1])
	assert.Equal(t, "", slots[2])
}

func TestSlotFreelistClearsParkedReferences(t *testing.T) {
	fl := alloc.NewSlotFreelist[*int]()

	v := 7
	slots := fl.AllocSlots(4)
	for i := range slots {
		slots[i] = &v
	}
	fl.FreeSlots(slots)

	again := fl.AllocSlots(4)
	for i := range again {
		assert.Nil(t, again[i], "parked slots must not retain references")
	}
}
