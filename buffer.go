// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     buffer.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import (
	"github.com/OmarAglan/Qalam-sub000/encoding"
	"github.com/OmarAglan/Qalam-sub000/qerr"
)

const (
	// InitialCapacity is the number of code units a freshly created, empty
	// Buffer allocates.
	InitialCapacity = 4096

	// InitialGap is the extra room left after the content when a Buffer is
	// constructed from existing text.
	InitialGap = 2048

	// GapGrowSize is added to the strictly-needed size when the gap must be
	// grown, so consecutive nearby edits don't each trigger a reallocation.
	GapGrowSize = 2048

	// growFactor is the multiplier applied to the current capacity when
	// growing, per spec.md section 4.2.2 step 1 ("max(2*capacity, ...)").
	growFactor = 2

	// MaxBufferCodeUnits bounds total capacity to roughly 100MB worth of
	// 16-bit code units (spec.md section 3, invariant 7).
	MaxBufferCodeUnits = 50 * 1024 * 1024

	// MaxFileBytes bounds the size of a file from-file/Load will read.
	MaxFileBytes = 100 * 1024 * 1024
)

// Direction classifies a line's dominant reading direction.
type Direction int

const (
	// DirectionAuto means the line has no strong directional characters, or
	// has both RTL and LTR characters without either view being exclusive.
	DirectionAuto Direction = iota
	// DirectionLTR means the line contains Latin-range characters and no
	// RTL-range characters.
	DirectionLTR
	// DirectionRTL means the line contains Arabic or Hebrew range
	// characters and no Latin-range characters.
	DirectionRTL
)

// String returns the lower-case name used in status output.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "auto"
	}
}

// LineEnding classifies the line-ending style detected when a Buffer is
// populated from a file: the style of the first line ending in the file. It is purely informational - spec.md
// section 6 is explicit that "the core does not normalize" line endings,
// and this module never rewrites content based on it.
type LineEnding int

const (
	LineEndingLF LineEnding = iota
	LineEndingCRLF
	LineEndingCR
)

// FileEncoding tags the encoding of a loaded file. This module only ever
// accepts UTF-8 documents (spec.md sections 1 and 6), so this is always
// EncodingUTF8 in practice; it exists so outer layers that display it
// (compare original_source/statusbar.c) have a stable field instead of a
// magic string.
type FileEncoding int

const (
	EncodingUTF8 FileEncoding = iota
)

// Position is a single cursor-valued location: a (line, column) pair plus
// the absolute code-unit offset it corresponds to.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Buffer is the gap-buffered owner of a document's text, held as 16-bit
// code units with a single relocatable gap. See the package doc comment for
// the data layout. The zero value is not usable; construct with Empty,
// WithCapacity, FromUTF8, or FromFile.
//
// A Buffer is not safe for concurrent use: all mutation must happen from a
// single goroutine (conventionally the UI goroutine), per spec.md section 5.
// Concurrent reads are the caller's responsibility to synchronize.
type Buffer struct {
	data     []uint16
	gapStart int
	gapEnd   int

	wantColumn int // sticky column for vertical cursor motion

	lineStarts []int // code-unit offset of the start of each line

	selection *Selection

	filepath   string
	modified   bool
	readonly   bool
	lineEnding LineEnding
	fileEnc    FileEncoding
}

// Empty constructs a new, empty Buffer with InitialCapacity code units of
// storage, all of it gap.
func Empty() *Buffer {
	return WithCapacity(InitialCapacity)
}

// WithCapacity constructs a new, empty Buffer whose backing array holds at
// least n code units; n is clamped up to InitialCapacity.
func WithCapacity(n int) *Buffer {
	if n < InitialCapacity {
		n = InitialCapacity
	}

	return &Buffer{
		data:       make([]uint16, n),
		gapStart:   0,
		gapEnd:     n,
		lineStarts: []int{0},
		fileEnc:    EncodingUTF8,
		lineEnding: LineEndingLF,
	}
}

// FromUTF8 constructs a Buffer from UTF-8 bytes, converting to internal code
// units and placing the content at the front of the array with at least
// InitialGap code units of trailing gap (the array is never smaller than
// InitialCapacity). The cursor starts at the end of the content, where the
// gap is.
func FromUTF8(text []byte) (*Buffer, error) {
	units, err := encoding.ToUTF16(text)
	if err != nil {
		return nil, err
	}

	size := len(units) + InitialGap
	if size < InitialCapacity {
		size = InitialCapacity
	}

	b := &Buffer{
		data:       make([]uint16, size),
		fileEnc:    EncodingUTF8,
		lineEnding: LineEndingLF,
	}
	copy(b.data, units)
	b.gapStart = len(units)
	b.gapEnd = size
	b.rebuildLines()

	return b, nil
}

// capacity returns the total number of code units allocated, gap included.
func (b *Buffer) capacity() int {
	return len(b.data)
}

// ContentLength returns the number of code units of actual content, gap
// excluded.
func (b *Buffer) ContentLength() int {
	return b.capacity() - (b.gapEnd - b.gapStart)
}

// Capacity returns the total number of code units currently allocated.
func (b *Buffer) Capacity() int {
	return b.capacity()
}

// GapSize returns the number of unused code units currently in the gap.
func (b *Buffer) GapSize() int {
	return b.gapEnd - b.gapStart
}

// IsReadonly reports the buffer's read-only flag.
func (b *Buffer) IsReadonly() bool {
	return b.readonly
}

// SetReadonly sets the buffer's read-only flag. The flag is advisory: it is
// not enforced by this package's mutation methods, matching spec.md's choice
// to leave enforcement to the outer editor layer that owns input routing.
func (b *Buffer) SetReadonly(readonly bool) {
	b.readonly = readonly
}

// Filepath returns the path a Buffer was loaded from or last saved to, or
// "" if it has never been associated with a file.
func (b *Buffer) Filepath() string {
	return b.filepath
}

// LineEnding returns the line-ending style detected at load time (that of
// the first line ending in the file). See spec.md section 9's supplemented-feature note: this is metadata
// only, never used to normalize content.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// FileEncodingTag returns the encoding tag recorded for the buffer's
// content. Always EncodingUTF8 today; see the FileEncoding doc comment.
func (b *Buffer) FileEncodingTag() FileEncoding {
	return b.fileEnc
}

// codeUnitAt returns the code unit at logical offset i (0-indexed into the
// content, gap not counted). Callers must ensure 0 <= i < ContentLength().
func (b *Buffer) codeUnitAt(i int) uint16 {
	if i < b.gapStart {
		return b.data[i]
	}

	return b.data[i+(b.gapEnd-b.gapStart)]
}

// logicalSlice copies out the code units in [start, end) of logical content
// space, bridging the gap transparently.
func (b *Buffer) logicalSlice(start, end int) []uint16 {
	if start >= end {
		return nil
	}

	out := make([]uint16, 0, end-start)

	if start < b.gapStart {
		upper := end
		if upper > b.gapStart {
			upper = b.gapStart
		}

		out = append(out, b.data[start:upper]...)
	}

	if end > b.gapStart {
		lower := start
		if lower < b.gapStart {
			lower = b.gapStart
		}

		physStart := lower + (b.gapEnd - b.gapStart)
		physEnd := end + (b.gapEnd - b.gapStart)
		out = append(out, b.data[physStart:physEnd]...)
	}

	return out
}

// moveGapTo relocates the gap so that gapStart equals offset, copying the
// code units between the old gap position and offset across the gap. This
// is the only non-constant-time part of a typical edit.
func (b *Buffer) moveGapTo(offset int) {
	switch {
	case offset < b.gapStart:
		n := b.gapStart - offset
		copy(b.data[b.gapEnd-n:b.gapEnd], b.data[offset:b.gapStart])
		b.gapStart = offset
		b.gapEnd -= n
	case offset > b.gapStart:
		n := offset - b.gapStart
		copy(b.data[b.gapStart:b.gapStart+n], b.data[b.gapEnd:b.gapEnd+n])
		b.gapStart = offset
		b.gapEnd += n
	}
}

// ensureGapCapacity grows the backing array if the gap cannot currently
// hold `needed` more code units, per spec.md section 4.2.2 step 1.
func (b *Buffer) ensureGapCapacity(needed int) error {
	if b.gapEnd-b.gapStart >= needed {
		return nil
	}

	contentLen := b.ContentLength()

	newCap := contentLen + needed + GapGrowSize
	if doubled := b.capacity() * growFactor; doubled > newCap {
		newCap = doubled
	}

	if newCap > MaxBufferCodeUnits {
		if contentLen+needed > MaxBufferCodeUnits {
			return qerr.New(qerr.CodeOutOfMemory, "edit would exceed the maximum buffer size")
		}

		newCap = MaxBufferCodeUnits
	}

	tmp := make([]uint16, newCap)
	copy(tmp, b.data[:b.gapStart])
	newGapEnd := newCap - (b.capacity() - b.gapEnd)
	copy(tmp[newGapEnd:], b.data[b.gapEnd:])
	b.data = tmp
	b.gapEnd = newGapEnd

	return nil
}
