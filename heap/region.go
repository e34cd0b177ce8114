// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// A memory-only implementation of Region, grown in fixed-size pages the way
// lldb's MemFiler grows a memory-backed Filer in fixed-size pages.

package heap

// Region is the downward interface an Allocator requires of its host: a
// single contiguous byte region that can only grow. The Allocator never
// asks a Region to shrink. ReadAt/WriteAt mirror lldb.Filer's addressed,
// non-sequential access model.
type Region interface {
	// Lo returns the inclusive low bound of the currently managed region.
	// It is always 0 for the lifetime of an Allocator.
	Lo() int64

	// Hi returns the exclusive high bound (i.e. current size) of the
	// currently managed region.
	Hi() int64

	// Extend grows the region by delta bytes and returns the offset of the
	// first newly added byte, or an error if the growth failed. A failed
	// Extend MUST NOT partially grow the region.
	Extend(delta int64) (int64, error)

	// ReadAt fills b from the region starting at off. off+len(b) MUST NOT
	// exceed Hi().
	ReadAt(b []byte, off int64)

	// WriteAt writes b into the region starting at off. off+len(b) MUST
	// NOT exceed Hi().
	WriteAt(b []byte, off int64)
}

const (
	pgBits = 16
	pgSize = 1 << pgBits
	pgMask = pgSize - 1
)

var _ Region = (*memRegion)(nil)

// memRegion is a memory-backed Region, organized as a map of fixed-size
// pages so that growing it never has to copy previously written pages -
// the same trade lldb.MemFiler makes for its in-memory Filer.
type memRegion struct {
	pages map[int64]*[pgSize]byte
	size  int64
}

// NewMemRegion returns a new, empty memory-backed Region.
func NewMemRegion() Region {
	return &memRegion{pages: map[int64]*[pgSize]byte{}}
}

func (r *memRegion) Lo() int64 { return 0 }
func (r *memRegion) Hi() int64 { return r.size }

func (r *memRegion) page(pg int64) *[pgSize]byte {
	p := r.pages[pg]
	if p == nil {
		p = &[pgSize]byte{}
		r.pages[pg] = p
	}
	return p
}

func (r *memRegion) Extend(delta int64) (int64, error) {
	if delta < 0 {
		return 0, &ErrInvalid{Name: "Region.Extend: delta", Arg: delta}
	}
	off := r.size
	r.size += delta
	// Touch every page the new span covers so ReadAt/WriteAt never have to
	// special-case a missing page; pages are allocated zeroed, matching
	// the host primitive's implicit zero-fill of freshly mapped memory.
	first, last := off>>pgBits, (r.size-1)>>pgBits
	for pg := first; pg <= last; pg++ {
		r.page(pg)
	}
	return off, nil
}

func (r *memRegion) ReadAt(b []byte, off int64) {
	var got int
	for got < len(b) {
		pg, po := (off+int64(got))>>pgBits, (off+int64(got))&pgMask
		got += copy(b[got:], r.page(pg)[po:])
	}
}

func (r *memRegion) WriteAt(b []byte, off int64) {
	var put int
	for put < len(b) {
		pg, po := (off+int64(put))>>pgBits, (off+int64(put))&pgMask
		put += copy(r.page(pg)[po:], b[put:])
	}
}
