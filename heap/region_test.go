// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemRegionExtend(t *testing.T) {
	r := NewMemRegion()
	require.Equal(t, int64(0), r.Lo())
	require.Equal(t, int64(0), r.Hi())

	off, err := r.Extend(10)
	require.NoError(t, err)
	require.Equal(t, int64(0), off)
	require.Equal(t, int64(10), r.Hi())

	off, err = r.Extend(5)
	require.NoError(t, err)
	require.Equal(t, int64(10), off)
	require.Equal(t, int64(15), r.Hi())
}

func TestMemRegionExtendRejectsNegative(t *testing.T) {
	r := NewMemRegion()
	_, err := r.Extend(-1)
	require.Error(t, err)
}

// TestMemRegionCrossPageReadWrite confirms a write spanning a page boundary
// is visible to a read spanning the same span - the bug that motivated
// ReadAt/WriteAt over a slice-view At method.
func TestMemRegionCrossPageReadWrite(t *testing.T) {
	r := NewMemRegion()
	_, err := r.Extend(pgSize * 2)
	require.NoError(t, err)

	span := pgSize - 4
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	r.WriteAt(want, int64(span))

	got := make([]byte, 8)
	r.ReadAt(got, int64(span))
	require.Equal(t, want, got)
}

// TestMemRegionNewPagesZeroed confirms freshly extended space reads back as
// zero, matching the host primitive's implicit zero-fill.
func TestMemRegionNewPagesZeroed(t *testing.T) {
	r := NewMemRegion()
	_, err := r.Extend(64)
	require.NoError(t, err)

	got := make([]byte, 64)
	r.ReadAt(got, 0)
	for _, b := range got {
		require.Zero(t, b)
	}
}
