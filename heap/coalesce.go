// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

// coalesce merges the block at header - whose client-visible state is
// transitioning to free - with its immediate free predecessor and/or
// successor, if any, then publishes the merged block into the free-list
// registry. Implements the four cases of spec §4.5; I5 guarantees neither
// neighbour's own neighbour needs inspecting.
func (h *Allocator) coalesce(header Addr) {
	size := h.readSize(header)
	pa := h.readPrevAlloc(header)
	successor := header + Addr(size)
	na := h.readAlloc(successor)

	switch {
	case pa && na:
		// Case 1,1: isolated. Just mark self free and clear the
		// successor's PA bit.
		h.writeHeader(header, size, true, false)
		h.writeFooter(header, size, false)
		h.clearPrevAlloc(successor)
		h.insert(nodeOf(header))

	case pa && !na:
		// Case 1,0: right join.
		succSize := h.readSize(successor)
		h.remove(nodeOf(successor), bucketOf(succSize))

		newSize := size + succSize
		h.writeHeader(header, newSize, true, false)
		h.writeFooter(header, newSize, false)
		h.insert(nodeOf(header))

	case !pa && na:
		// Case 0,1: left join. The predecessor's size lives in the word
		// immediately before header (its footer, since it is free).
		predSize := h.word(header - wordSize) &^ flagMask
		predHeader := header - Addr(predSize)
		h.remove(nodeOf(predHeader), bucketOf(int64(predSize)))

		newSize := int64(predSize) + size
		predPrevAlloc := h.readPrevAlloc(predHeader)
		h.writeHeader(predHeader, newSize, predPrevAlloc, false)
		h.writeFooter(predHeader, newSize, false)
		h.clearPrevAlloc(successor)
		h.insert(nodeOf(predHeader))

	default:
		// Case 0,0: middle join.
		predSize := h.word(header - wordSize) &^ flagMask
		predHeader := header - Addr(predSize)
		h.remove(nodeOf(predHeader), bucketOf(int64(predSize)))

		succSize := h.readSize(successor)
		h.remove(nodeOf(successor), bucketOf(succSize))

		newSize := int64(predSize) + size + succSize
		predPrevAlloc := h.readPrevAlloc(predHeader)
		h.writeHeader(predHeader, newSize, predPrevAlloc, false)
		h.writeFooter(predHeader, newSize, false)
		h.insert(nodeOf(predHeader))
	}
}
