// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// Block describes one block as seen by Walk: its header address, total
// size, and allocation state. It exists so callers (tests, cmd/heapalloc
// walk) never have to poke at header bits themselves - the point of
// exposing an iterator instead of replicating mm.c's printheap, per
// spec §9.
type Block struct {
	Header    Addr
	Size      int64
	Alloc     bool
	PrevAlloc bool
}

// firstBlock returns the header address of the first block in the chain:
// the prologue itself, which Walk and Verify both start from.
func (h *Allocator) firstBlock() Addr { return padSize }

// Walk calls fn for every block from the prologue (inclusive) to the
// epilogue (exclusive), in address order, stopping early if fn returns
// false. It never inspects anything outside [Lo(), Hi()).
func (h *Allocator) Walk(fn func(Block) bool) {
	for p := h.firstBlock(); ; {
		size := h.readSize(p)
		if size == 0 {
			return // Epilogue.
		}

		b := Block{
			Header:    p,
			Size:      size,
			Alloc:     h.readAlloc(p),
			PrevAlloc: h.readPrevAlloc(p),
		}
		if !fn(b) {
			return
		}
		p += Addr(size)
	}
}

// Buckets calls fn once per bucket index with every free-block node address
// currently published in that bucket's circular list, in forward traversal
// order, stopping early if fn returns false.
func (h *Allocator) Buckets(fn func(bucket int, node Addr) bool) {
	for b := 0; b < numBuckets; b++ {
		head := h.free.head[b]
		if head == 0 {
			continue
		}

		node := head
		for {
			if !fn(b, node) {
				return
			}
			node = h.nextOf(node)
			if node == head {
				break
			}
		}
	}
}

// Verify walks the block chain twice, checking I1-I5/I8 (the second walk
// checks PA bits), then walks every bucket's free list, checking I6/I7,
// reporting every violation it finds to
// log (or, if log is nil, returning the first one). It mirrors the phased
// design of lldb.Allocator.Verify, substituting an in-memory bitmap for the
// second Filer lldb uses to detect lost free blocks.
func (h *Allocator) Verify(log func(error) bool) error {
	report := func(err *ErrCorrupt) error {
		if log == nil {
			return err
		}
		if !log(err) {
			return err
		}
		return nil
	}

	// Phase 1: block chain. free[addr] tracks which headers are free, so
	// phase 3 can cross-check list membership against it.
	free := map[Addr]int64{}
	hi := h.region.Hi()
	prevWasFree := false
	var total int64

	for p := h.firstBlock(); ; {
		if int64(p) >= hi {
			return report(&ErrCorrupt{Kind: CorruptTiling, Addr: p, Detail: "walk ran past region end without finding the epilogue"})
		}

		size := h.readSize(p)
		if size == 0 {
			break // Epilogue.
		}

		if size < minBlock || size%alignment != 0 {
			if err := report(&ErrCorrupt{Kind: CorruptMinSize, Addr: p, Detail: "block smaller than 32 bytes or not 16-aligned"}); err != nil {
				return err
			}
		}

		alloc := h.readAlloc(p)
		if !alloc {
			footer := h.word(footerAddr(p, size))
			if int64(footer&^flagMask) != size || footer&allocBit != 0 {
				if err := report(&ErrCorrupt{Kind: CorruptFreeFooter, Addr: p, Detail: "footer disagrees with header"}); err != nil {
					return err
				}
			}
			free[p] = size
		}

		if prevWasFree && !alloc {
			if err := report(&ErrCorrupt{Kind: CorruptAdjacentFree, Addr: p, Detail: "two adjacent free blocks"}); err != nil {
				return err
			}
		}
		prevWasFree = !alloc

		total += size
		p += Addr(size)
	}

	if want := hi - int64(padSize) - wordSize; total != want {
		if err := report(&ErrCorrupt{Kind: CorruptTiling, Addr: Addr(hi), Detail: "block sizes don't tile the region"}); err != nil {
			return err
		}
	}

	// Phase 2: PA bits. Re-walk so every block can check its predecessor's
	// actual A bit, not just trust its own PA bit.
	prevAlloc := false // The prologue's own bootstrap PA bit is 0 (spec §6); it has no real predecessor to check.
	for p := h.firstBlock(); ; {
		size := h.readSize(p)
		if size == 0 {
			break
		}

		if h.readPrevAlloc(p) != prevAlloc {
			if err := report(&ErrCorrupt{Kind: CorruptPrevAlloc, Addr: p, Detail: "PA bit disagrees with predecessor's A bit"}); err != nil {
				return err
			}
		}
		prevAlloc = h.readAlloc(p)
		p += Addr(size)
	}

	// Phase 3: free lists. Every visited node must be a known free block
	// (from phase 1) in the bucket implied by its size; turn it off as
	// visited so leftover entries in `free` are lost free blocks.
	var chainErr error
	h.Buckets(func(b int, node Addr) bool {
		header := headerOf(node)
		size, isFree := free[header]
		if !isFree {
			chainErr = report(&ErrCorrupt{Kind: CorruptListChaining, Addr: header, Detail: "list node does not refer to a free block"})
			return chainErr == nil
		}
		if bucketOf(size) != b {
			chainErr = report(&ErrCorrupt{Kind: CorruptListMembership, Addr: header, Detail: "block is in the wrong bucket for its size"})
			return chainErr == nil
		}
		delete(free, header)
		return true
	})
	if chainErr != nil {
		return chainErr
	}

	for addr := range free {
		if err := report(&ErrCorrupt{Kind: CorruptListMembership, Addr: addr, Detail: "free block is not in any bucket list"}); err != nil {
			return err
		}
	}

	return nil
}
