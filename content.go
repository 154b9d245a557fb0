// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     content.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import (
	"github.com/OmarAglan/Qalam-sub000/encoding"
	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// LineInfo describes one line of the document: its number, where it starts
// and how long it is (in both code units and UTF-8 bytes), and its
// direction classification (spec.md section 4.2.4).
type LineInfo struct {
	Line        int
	StartOffset int
	Length      int // code units, newline excluded
	ByteLength  int // UTF-8 bytes, newline excluded
	Direction   Direction
	HasRTL      bool
	HasLTR      bool
}

// GetLine returns line n (0-based), with its trailing newline excluded, as
// UTF-8 text. Fails with qerr.CodeInvalidRange if n is out of range.
func (b *Buffer) GetLine(n int) (string, error) {
	if n < 0 || n >= b.GetLineCount() {
		return "", qerr.New(qerr.CodeInvalidRange, "get-line: line index out of range")
	}

	units := b.logicalSlice(b.lineStartOffset(n), b.lineEndOffset(n))

	return encoding.ToString(units), nil
}

// GetRange returns the UTF-8 text of the code units in [start, end),
// normalizing start and end into ascending order and clamping both to
// [0, ContentLength()]. An empty (or inverted-then-clamped-to-empty) range
// returns an empty string, not an error.
func (b *Buffer) GetRange(start, end int) string {
	if start > end {
		start, end = end, start
	}

	contentLen := b.ContentLength()

	if start < 0 {
		start = 0
	}

	if end > contentLen {
		end = contentLen
	}

	if start >= end {
		return ""
	}

	return encoding.ToString(b.logicalSlice(start, end))
}

// GetContent returns the entire document as UTF-8 text.
func (b *Buffer) GetContent() string {
	return b.GetRange(0, b.ContentLength())
}

// GetLineInfo returns line n's offset, length, and direction
// classification. Fails with qerr.CodeInvalidRange if n is out of range.
func (b *Buffer) GetLineInfo(n int) (LineInfo, error) {
	if n < 0 || n >= b.GetLineCount() {
		return LineInfo{}, qerr.New(qerr.CodeInvalidRange, "get-line-info: line index out of range")
	}

	start := b.lineStartOffset(n)
	end := b.lineEndOffset(n)
	units := b.logicalSlice(start, end)

	dir, hasRTL, hasLTR := classifyDirection(units)

	return LineInfo{
		Line:        n,
		StartOffset: start,
		Length:      end - start,
		ByteLength:  encoding.EncodedLen(units),
		Direction:   dir,
		HasRTL:      hasRTL,
		HasLTR:      hasLTR,
	}, nil
}
