// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderFooterRoundTrip(t *testing.T) {
	h := newTestAllocator(t)
	_, err := h.region.Extend(64)
	require.NoError(t, err)

	const p = Addr(0)
	h.writeHeader(p, 48, true, false)
	require.Equal(t, int64(48), h.readSize(p))
	require.False(t, h.readAlloc(p))
	require.True(t, h.readPrevAlloc(p))

	h.writeFooter(p, 48, false)
	footer := h.word(footerAddr(p, 48))
	require.Equal(t, uint64(48), footer&^flagMask)
	require.Zero(t, footer&allocBit)
}

func TestSetClearPrevAlloc(t *testing.T) {
	h := newTestAllocator(t)
	_, err := h.region.Extend(64)
	require.NoError(t, err)

	const p = Addr(0)
	h.writeHeader(p, 32, false, true)
	require.False(t, h.readPrevAlloc(p))

	h.setPrevAlloc(p)
	require.True(t, h.readPrevAlloc(p))
	require.Equal(t, int64(32), h.readSize(p))
	require.True(t, h.readAlloc(p))

	h.clearPrevAlloc(p)
	require.False(t, h.readPrevAlloc(p))
}

func TestNodeHeaderRoundTrip(t *testing.T) {
	require.Equal(t, Addr(40), nodeOf(32))
	require.Equal(t, Addr(32), headerOf(40))
}

func TestAlignUp(t *testing.T) {
	require.Equal(t, int64(0), alignUp(0))
	require.Equal(t, int64(16), alignUp(1))
	require.Equal(t, int64(16), alignUp(16))
	require.Equal(t, int64(32), alignUp(17))
	require.Equal(t, int64(112), alignUp(108))
}

func TestAligned(t *testing.T) {
	require.True(t, aligned(0))
	require.True(t, aligned(16))
	require.False(t, aligned(8))
	require.False(t, aligned(24))
}
