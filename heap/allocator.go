// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The storage space management: the public entry points glued on top of the
// placement engine and coalescer.

package heap

import "github.com/cznic/mathutil"

const padSize = wordSize // 8-byte pad preceding the prologue, per spec §6.
const prologueSize = 2 * wordSize // 16-byte prologue: header + footer, no payload.

// Allocator manages a single contiguous Region as a dynamic memory heap: an
// inline-boundary-tag, segregated-free-list design in the tradition of
// dlmalloc/lldb.Allocator, but holding everything in one in-process Region
// instead of a persistent Filer.
type Allocator struct {
	region Region
	free   freeList

	// Debug, when true, makes Allocate/Free/Realloc/Calloc call Verify
	// after every operation and panic on the first violation found. It is
	// off by default, mirroring lldb.Allocator.Compress being an opt-in
	// field rather than a build tag.
	Debug bool

	allocs int // running count, used by Stats.
	frees  int
}

// NewAllocator bootstraps a fresh Allocator over region, which MUST be
// empty (Hi() == Lo()). It writes the 8-byte pad, the 16-byte prologue
// sentinel, and the epilogue sentinel described in spec §6, and leaves all
// bucket heads empty.
func NewAllocator(region Region) (*Allocator, error) {
	if region.Hi() != region.Lo() {
		return nil, &ErrInvalid{Name: "NewAllocator: region", Arg: "not empty"}
	}

	h := &Allocator{region: region}
	if _, err := region.Extend(padSize + prologueSize + wordSize); err != nil {
		return nil, wrapExtendErr(err)
	}

	prologue := Addr(padSize)
	h.writeHeader(prologue, prologueSize, false, true)
	h.writeFooter(prologue, prologueSize, true)
	h.writeEpilogue(prologue + prologueSize)
	return h, nil
}

// payloadHeader converts a payload Addr (as returned by Allocate) back to
// its block's header Addr.
func payloadHeader(p Addr) Addr { return p - wordSize }

// Allocate reserves at least n bytes and returns the address of the 16-byte
// aligned payload, or Addr(0) if the region could not be extended to
// satisfy the request. Allocate(0) collapses to a minimum-sized block
// rather than returning null - see DESIGN.md's Open Question resolution.
func (h *Allocator) Allocate(n int64) (Addr, error) {
	if n < 0 {
		return 0, &ErrInvalid{Name: "Allocate: n", Arg: n}
	}

	size := normalize(n)
	p, err := h.place(size)
	if err != nil {
		return 0, err
	}

	h.allocs++
	h.checkDebug()
	return p, nil
}

// Free releases the block at payload address p. Addr(0) is a no-op. p MUST
// have been obtained from Allocate, Calloc or Realloc on this Allocator and
// must still be valid - Free does not validate its argument (spec §7): a
// bad p produces undefined results.
func (h *Allocator) Free(p Addr) {
	if p == 0 {
		return
	}

	h.coalesce(payloadHeader(p))
	h.frees++
	h.checkDebug()
}

// Realloc changes the size of the block at p to n bytes, preserving the
// first min(n, old payload size) bytes of content, and returns the address
// of the (possibly different) block. A nil p behaves like Allocate; n == 0
// behaves like Free and returns Addr(0). This always allocates a fresh
// block and copies, matching mm.c's realloc (see SPEC_FULL.md §5) rather
// than lldb.Allocator.Realloc's in-place shrink/grow/relocate.
func (h *Allocator) Realloc(p Addr, n int64) (Addr, error) {
	if p == 0 {
		return h.Allocate(n)
	}
	if n == 0 {
		h.Free(p)
		return 0, nil
	}

	oldHeader := payloadHeader(p)
	oldPayloadSize := h.readSize(oldHeader) - wordSize

	q, err := h.Allocate(n)
	if err != nil {
		return 0, err
	}

	min := mathutil.MinInt64(n, oldPayloadSize)
	if min > 0 {
		buf := make([]byte, min)
		h.region.ReadAt(buf, int64(p))
		h.region.WriteAt(buf, int64(q))
	}

	h.Free(p)
	return q, nil
}

// Calloc allocates space for k elements of n bytes each and zero-fills it.
// Overflow of k*n is not checked, matching mm.c's calloc (see
// SPEC_FULL.md §5).
func (h *Allocator) Calloc(k, n int64) (Addr, error) {
	total := k * n
	p, err := h.Allocate(total)
	if err != nil || p == 0 {
		return p, err
	}

	zero := make([]byte, total)
	h.region.WriteAt(zero, int64(p))
	return p, nil
}

// Stats reports running allocator counters, useful for cmd/heapalloc's
// bench command.
type Stats struct {
	Allocs    int
	Frees     int
	RegionLen int64
}

// Stats returns a snapshot of the Allocator's running counters.
func (h *Allocator) Stats() Stats {
	return Stats{Allocs: h.allocs, Frees: h.frees, RegionLen: h.region.Hi()}
}

// checkDebug runs Verify when Debug is set, panicking on the first
// violation found - a heap corruption is a programming error, not a
// recoverable condition (spec §7, severity 3).
func (h *Allocator) checkDebug() {
	if !h.Debug {
		return
	}
	if err := h.Verify(nil); err != nil {
		panic(err)
	}
}
