// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package heap implements a single-threaded dynamic memory allocator over a
single contiguous, grow-only byte region.

The terms MUST or MUST NOT, if/where used in the documentation of Allocator,
written in all caps as seen here, are a requirement for any possible
alternative implementation aiming for compatibility with this one.

Region

A Region is a linear, contiguous sequence of bytes that can only grow. The
Allocator never asks a Region to shrink and never inspects bytes below its
own low address. A Region implementation is free to back its storage however
it likes; the shipped memRegion backs it with a map of fixed-size pages so
growth never has to copy already-written bytes.

Addresses

An Addr is a byte offset from the start of the Region, not a real
unsafe.Pointer. Handing out offsets instead of pointers means the backing
storage is free to move (e.g. on slice growth) between calls without
invalidating any Addr a caller is holding: Addr is always resolved against
the live Region at the time of the call, exactly the way lldb.Allocator
handles are atom offsets resolved against the live Filer.

Atoms and alignment

Every block occupies a contiguous, 16-byte aligned span whose size is a
multiple of 16 and at least 32 bytes. All payload addresses returned to a
caller are 16-byte aligned. Word size is 8 bytes.

Block layout

Every block's first word is the header, encoding (size, predecessor-
allocated flag, this-block-allocated flag). A free block additionally
carries a footer mirroring the header, and the two words following the
header hold the forward/back links of the block's segregated free list
membership - those words are only valid while the block is free.

Heap framing

The managed region, once bootstrapped, has the form: an 8-byte pad, a
16-byte prologue block (a permanently allocated sentinel), zero or more user
blocks, and a zero-size epilogue sentinel header at the high end. Every real
block therefore has an allocated or free neighbour on both sides without any
boundary special-casing in the coalescer or the block walker.

Free lists

Free blocks are organized into N = 16 segregated, singly-headed circular
doubly linked lists, selected by total block size via a fixed step table.
Insertion is O(1) at the list head; removal is O(1) given the bucket index.
Allocator.findFit scans buckets starting at the bucket implied by the
request size and returns the first sufficiently large block it finds
(first-fit), never searching for a better one.

Debug checking

Allocator.Verify walks the block chain twice, then walks every free list,
and reports any invariant violation it finds to a caller-supplied log
function - mirroring lldb.Allocator.Verify's phased design, but against an
in-memory bitmap instead of a second Filer.

*/
package heap
