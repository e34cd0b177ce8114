// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math/rand"

	"github.com/cznic/heapalloc/heap"
)

// runWorkload drives n randomized Allocate/Free/Realloc calls against h,
// returning the surviving live payload addresses. It mirrors the shape of
// heap's own randomized package test, reused here so bench and walk observe
// the same kind of heap a real client produces.
func runWorkload(h *heap.Allocator, seed int64, ops int, maxSize int64) ([]heap.Addr, error) {
	rng := rand.New(rand.NewSource(seed))
	var live []heap.Addr

	for i := 0; i < ops; i++ {
		switch {
		case len(live) == 0 || rng.Intn(3) != 0:
			n := int64(rng.Intn(int(maxSize)))
			p, err := h.Allocate(n)
			if err != nil {
				return live, err
			}
			live = append(live, p)
		case rng.Intn(2) == 0:
			idx := rng.Intn(len(live))
			h.Free(live[idx])
			live = append(live[:idx], live[idx+1:]...)
		default:
			idx := rng.Intn(len(live))
			n := int64(rng.Intn(int(maxSize)))
			q, err := h.Realloc(live[idx], n)
			if err != nil {
				return live, err
			}
			live[idx] = q
		}
	}
	return live, nil
}
