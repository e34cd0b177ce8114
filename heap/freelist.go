// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// freeList is the free-list registry: N segregated buckets, each an
// optionally empty circular doubly linked list of free block nodes. It
// plays the same role lldb's flt type plays over an FLT, but the heads live
// directly in the Allocator (there is no on-disk table to abstract away).
type freeList struct {
	head [numBuckets]Addr // Addr(0) means "no head", same null convention as lldb handles.
}

// insert publishes node (the list-node address of a free block, i.e.
// nodeOf(header)) into the bucket implied by its block's size. O(1).
func (h *Allocator) insert(node Addr) {
	size := h.readSize(headerOf(node))
	b := bucketOf(size)
	fl := &h.free
	cur := fl.head[b]
	if cur == 0 {
		h.setNext(node, node)
		h.setPrev(node, node)
		fl.head[b] = node
		return
	}

	// Link node immediately before cur: node becomes cur's new predecessor.
	last := h.prevOf(cur)
	h.setNext(last, node)
	h.setPrev(node, last)
	h.setNext(node, cur)
	h.setPrev(cur, node)
	fl.head[b] = node
}

// remove unlinks node from bucket b's circular list. Caller passes b to
// avoid recomputing it from a size that may already have been overwritten.
// O(1).
func (h *Allocator) remove(node Addr, b int) {
	fl := &h.free
	next := h.nextOf(node)
	if next == node {
		// Only element.
		fl.head[b] = 0
		return
	}

	prev := h.prevOf(node)
	h.setNext(prev, next)
	h.setPrev(next, prev)
	if fl.head[b] == node {
		fl.head[b] = next
	}
}

// findFit scans buckets starting at bucketOf(size), walking each bucket's
// list in forward order, and returns the node of the first free block whose
// header size is >= size. The returned node is removed from the registry as
// part of the call. Returns Addr(0) if no list has a sufficient block.
func (h *Allocator) findFit(size int64) Addr {
	for b := bucketOf(size); b < numBuckets; b++ {
		head := h.free.head[b]
		if head == 0 {
			continue
		}

		node := head
		for {
			if h.readSize(headerOf(node)) >= size {
				h.remove(node, b)
				return node
			}

			node = h.nextOf(node)
			if node == head {
				break
			}
		}
	}
	return 0
}

// The forward/back links of a free block's node live in the two words
// immediately following its header - valid only while the block is free.

func (h *Allocator) nextOf(node Addr) Addr { return Addr(h.word(node)) }
func (h *Allocator) prevOf(node Addr) Addr { return Addr(h.word(node + wordSize)) }

func (h *Allocator) setNext(node, v Addr) { h.putWord(node, uint64(v)) }
func (h *Allocator) setPrev(node, v Addr) { h.putWord(node+wordSize, uint64(v)) }
