// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heap

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalid reports an invalid argument: a negative size passed to
// Allocate (and so to Realloc or Calloc), a negative Region.Extend delta, or
// a non-empty Region passed to NewAllocator. Addrs are never validated.
type ErrInvalid struct {
	Name string // Name of the offending parameter, "Allocate: n", etc.
	Arg  interface{}
}

func (e *ErrInvalid) Error() string {
	return fmt.Sprintf("invalid argument: %s == %v", e.Name, e.Arg)
}

// CorruptKind enumerates the invariant violations Verify can detect.
type CorruptKind int

const (
	CorruptTiling        CorruptKind = iota // I1: blocks don't tile the region
	CorruptMinSize                          // I2/P7: block smaller than 32 bytes or misaligned
	CorruptFreeFooter                       // I3/P4: free block footer doesn't match header
	CorruptPrevAlloc                        // I4/P3: PA bit disagrees with predecessor's A bit
	CorruptAdjacentFree                     // I5/P5: two adjacent blocks are both free
	CorruptListMembership                   // I6/I7/P6: a block's list membership disagrees with its A bit
	CorruptListChaining                     // I7: a free list link points outside the heap or to a non-free block
)

func (k CorruptKind) String() string {
	switch k {
	case CorruptTiling:
		return "tiling"
	case CorruptMinSize:
		return "min-size"
	case CorruptFreeFooter:
		return "free-footer"
	case CorruptPrevAlloc:
		return "prev-alloc"
	case CorruptAdjacentFree:
		return "adjacent-free"
	case CorruptListMembership:
		return "list-membership"
	case CorruptListChaining:
		return "list-chaining"
	default:
		return "unknown"
	}
}

// ErrCorrupt reports a heap invariant violation found by Verify. It is a
// programming error - an Allocator that surfaces one has already been used
// incorrectly (e.g. a stray write past a payload's size, or a double Free).
type ErrCorrupt struct {
	Kind   CorruptKind
	Addr   Addr
	Detail string
}

func (e *ErrCorrupt) Error() string {
	return fmt.Sprintf("heap corrupt at %#x: %s (%s)", e.Addr, e.Kind, e.Detail)
}

// ErrOutOfMemory supplies the message wrapExtendErr prefixes to a failed
// Region.Extend's error. Allocate, Realloc and Calloc then return Addr(0)
// together with that annotated error, so callers that don't care about the
// cause can simply check for a nil Addr.
var ErrOutOfMemory = errors.New("heap: out of memory")

// wrapExtendErr annotates a Region.Extend failure with ErrOutOfMemory's
// message so the original cause survives for errors.Cause. The result does
// not wrap ErrOutOfMemory itself: errors.Is(err, ErrOutOfMemory) is false,
// and only the message identifies it.
func wrapExtendErr(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, ErrOutOfMemory.Error())
}
