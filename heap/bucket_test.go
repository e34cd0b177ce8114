// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import "testing"

import "github.com/stretchr/testify/require"

func TestBucketOf(t *testing.T) {
	cases := []struct {
		size int64
		want int
	}{
		{16, 0}, {32, 0},
		{33, 1}, {48, 1},
		{49, 2}, {64, 2},
		{65, 3}, {96, 3},
		{97, 4}, {128, 4},
		{129, 5}, {256, 5},
		{257, 6}, {512, 6},
		{513, 7}, {1024, 7},
		{1025, 8}, {2048, 8},
		{2049, 9}, {4096, 9},
		{4097, 10}, {8192, 10},
		{8193, 11}, {16384, 11},
		{16385, 12}, {65536, 12},
		{65537, 13}, {131072, 13},
		{131073, 14}, {262144, 14},
		{262145, 15}, {1 << 30, 15},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, bucketOf(c.size), "size %d", c.size)
	}
}

func TestBucketOfMonotone(t *testing.T) {
	prev := bucketOf(16)
	for size := int64(16); size <= 1<<20; size += 16 {
		b := bucketOf(size)
		require.GreaterOrEqual(t, b, prev)
		prev = b
	}
}
