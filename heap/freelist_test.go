// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFreeListLIFOWithinBucket confirms insert publishes at the head, so
// find_fit within a single bucket returns the most recently freed block
// first - ordering the spec leaves unconstrained but worth pinning down.
func TestFreeListLIFOWithinBucket(t *testing.T) {
	h := newTestAllocator(t)

	a, err := h.Allocate(8)
	require.NoError(t, err)
	b, err := h.Allocate(8)
	require.NoError(t, err)
	c, err := h.Allocate(8)
	require.NoError(t, err)

	h.Free(a)
	h.Free(c)

	var nodes []Addr
	h.Buckets(func(_ int, node Addr) bool { nodes = append(nodes, node); return true })
	require.Len(t, nodes, 2)
	require.Equal(t, c, nodes[0])

	_ = b
}

func TestFindFitReturnsZeroWhenEmpty(t *testing.T) {
	h := newTestAllocator(t)
	require.Zero(t, h.findFit(32))
}

func TestFindFitSearchesLargerBucketsOnMiss(t *testing.T) {
	h := newTestAllocator(t)

	a, err := h.Allocate(24)
	require.NoError(t, err)
	b, err := h.Allocate(200)
	require.NoError(t, err)
	h.Free(a)
	h.Free(b)

	node := h.findFit(64)
	require.NotZero(t, node)
	require.GreaterOrEqual(t, h.readSize(headerOf(node)), int64(64))
}

func TestRemoveSingletonEmptiesBucket(t *testing.T) {
	h := newTestAllocator(t)
	a, err := h.Allocate(8)
	require.NoError(t, err)
	h.Free(a)

	var before int
	h.Buckets(func(int, Addr) bool { before++; return true })
	require.Equal(t, 1, before)

	node := h.findFit(32)
	require.NotZero(t, node)

	var after int
	h.Buckets(func(int, Addr) bool { after++; return true })
	require.Zero(t, after)
}
