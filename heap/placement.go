// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// normalize converts a caller byte count into a 16-aligned, >= minBlock
// total block size, per spec §4.4 step 1.
func normalize(n int64) int64 {
	size := alignUp(n + wordSize)
	if size < minBlock {
		size = minBlock
	}
	return size
}

// place finds or creates a block able to hold size bytes and returns the
// address of its payload (header + wordSize), or an error if the region
// could not be extended. This is the placement engine of spec §4.4.
func (h *Allocator) place(size int64) (Addr, error) {
	if node := h.findFit(size); node != 0 {
		header := headerOf(node)
		return h.split(header, size), nil
	}

	header, err := h.extend(size)
	if err != nil {
		return 0, err
	}
	return nodeOf(header), nil
}

// split carves an allocated block of exactly size bytes out of the free
// block at header (whose total size is >= size), re-inserting any viable
// remainder as a new free block. Returns the payload address of the
// allocated block. Per spec §4.4, a remainder smaller than minBlock is not
// split off; the caller gets the slack instead.
func (h *Allocator) split(header Addr, size int64) Addr {
	total := h.readSize(header)
	remainder := total - size
	prevAlloc := h.readPrevAlloc(header)

	if remainder >= minBlock {
		h.writeHeader(header, size, prevAlloc, true)

		tail := header + Addr(size)
		h.writeHeader(tail, remainder, true, false)
		h.writeFooter(tail, remainder, false)
		h.insert(nodeOf(tail))
	} else {
		h.writeHeader(header, total, prevAlloc, true)
		h.setPrevAlloc(header + Addr(total))
	}

	return nodeOf(header)
}

// extend grows the region by exactly size bytes and turns the space the
// epilogue used to occupy into a new allocated block of that size, moving
// the epilogue to the new high end. The new block is NOT entered into any
// free list - it already satisfies the current request, per spec §4.4's
// edge-case policy and §9's explicit warning against insert-then-remove.
//
// The old epilogue's word (not the freshly extended span) becomes the new
// block's header: Region.Extend(size) supplies the size-8 bytes the block's
// body needs beyond that reused word, plus the 8 bytes for the new epilogue.
func (h *Allocator) extend(size int64) (Addr, error) {
	header := Addr(h.region.Hi()) - wordSize
	prevAlloc := h.readPrevAlloc(header)

	if _, err := h.region.Extend(size); err != nil {
		return 0, wrapExtendErr(err)
	}

	h.writeHeader(header, size, prevAlloc, true)
	h.writeEpilogue(header + Addr(size))
	return header, nil
}

// writeEpilogue writes a zero-size, permanently allocated sentinel header at
// p, marking the new high end of the region.
func (h *Allocator) writeEpilogue(p Addr) {
	h.writeHeader(p, 0, true, true)
}
