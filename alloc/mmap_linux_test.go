// File: alloc/mmap_linux_test.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/flexgrow/alloc"
)

func TestMmapRoundTrip(t *testing.T) {
	m := alloc.NewMmap()

	blk := m.Alloc(5000)
	require.Equal(t, 5000, len(blk))

	copy(blk, "mapped")
	blk = m.Realloc(blk, 20000)
	require.Equal(t, 20000, len(blk))
	assert.Equal(t, "mapped", string(blk[:6]))

	assert.NotPanics(t, func() { m.Free(blk) })
}

func TestMmapZeroCapacity(t *testing.T) {
	m := alloc.NewMmap()
	blk := m.Alloc(0)
	assert.Equal(t, 0, len(blk))
	assert.NotPanics(t, func() { m.Free(blk) })
}

func TestMmapSmallReallocStaysInPlace(t *testing.T) {
	m := alloc.NewMmap()

	blk := m.Alloc(10)
	copy(blk, "0123456789")

	// Page granularity leaves slack; growth within it must not move.
	grown := m.Realloc(blk, 100)
	require.Equal(t, 100, len(grown))
	assert.Equal(t, "0123456789", string(grown[:10]))
	m.Free(grown)
}
