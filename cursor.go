// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     cursor.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import "github.com/OmarAglan/Qalam-sub000/encoding"

// snapOffset adjusts offset so it never sits between the two halves of a
// surrogate pair (spec.md section 3, invariant 4): if the code unit at
// offset is a low surrogate and the one before it is a high surrogate, the
// offset snaps back to the high surrogate.
func (b *Buffer) snapOffset(offset int) int {
	if offset <= 0 || offset >= b.ContentLength() {
		return offset
	}

	if encoding.IsLowSurrogate(b.codeUnitAt(offset)) && encoding.IsHighSurrogate(b.codeUnitAt(offset-1)) {
		return offset - 1
	}

	return offset
}

// GetCursor returns the cursor's current (line, column, offset). Line and
// column are both 0-based; column counts code units from the start of the
// current line.
func (b *Buffer) GetCursor() Position {
	line, column := b.recomputeCursorLine()

	return Position{Line: line, Column: column, Offset: b.gapStart}
}

// SetCursor moves the cursor to (line, column), clamping line to
// [0, GetLineCount()) and column to the target line's code-unit length.
func (b *Buffer) SetCursor(line, column int) error {
	if line < 0 {
		line = 0
	}

	if line >= b.GetLineCount() {
		line = b.GetLineCount() - 1
	}

	lineStart := b.lineStartOffset(line)
	lineLen := b.lineEndOffset(line) - lineStart

	if column < 0 {
		column = 0
	}

	if column > lineLen {
		column = lineLen
	}

	offset := b.snapOffset(lineStart + column)
	b.moveGapTo(offset)
	b.wantColumn = offset - lineStart

	return nil
}

// SetCursorOffset moves the cursor to the given absolute code-unit offset,
// clamping to [0, ContentLength()] and snapping off a mid-surrogate
// position.
func (b *Buffer) SetCursorOffset(offset int) error {
	if offset < 0 {
		offset = 0
	}

	if offset > b.ContentLength() {
		offset = b.ContentLength()
	}

	offset = b.snapOffset(offset)
	b.moveGapTo(offset)

	_, column := b.recomputeCursorLine()
	b.wantColumn = column

	return nil
}

// MoveCursor moves the cursor by a signed number of lines and columns
// relative to its current position, saturating at the first and last line
// and, for horizontal motion, at the start and end of the current line.
// When deltaLine is nonzero the column component tries to preserve the
// cursor's sticky "wants" column (spec.md section 4.2.3), the same
// vertical-motion behavior the teacher's GapBuffer.UpMv/DownMv implement.
func (b *Buffer) MoveCursor(deltaLine, deltaColumn int) error {
	if deltaLine != 0 {
		line, _ := b.recomputeCursorLine()
		target := line + deltaLine

		if target < 0 {
			target = 0
		}

		if target >= b.GetLineCount() {
			target = b.GetLineCount() - 1
		}

		col := b.wantColumn
		if deltaColumn != 0 {
			col += deltaColumn
		}

		return b.setCursorPreserveWant(target, col)
	}

	line, column := b.recomputeCursorLine()
	column += deltaColumn

	if column < 0 {
		// Saturate at the start of the current line rather than wrapping
		// to the previous line - spec.md describes a "saturating clamp".
		column = 0
	}

	lineStart := b.lineStartOffset(line)
	lineLen := b.lineEndOffset(line) - lineStart

	if column > lineLen {
		column = lineLen
	}

	offset := b.snapOffset(lineStart + column)
	b.moveGapTo(offset)
	b.wantColumn = offset - lineStart

	return nil
}

// setCursorPreserveWant is like SetCursor but does not overwrite
// wantColumn, so repeated vertical motion keeps aiming at the same column
// even across short lines it had to clamp against.
func (b *Buffer) setCursorPreserveWant(line, column int) error {
	want := b.wantColumn
	if err := b.SetCursor(line, column); err != nil {
		return err
	}

	b.wantColumn = want

	return nil
}

// ToStart moves the cursor to the very beginning of the document.
func (b *Buffer) ToStart() {
	b.moveGapTo(0)
	b.wantColumn = 0
}

// ToEnd moves the cursor to the very end of the document.
func (b *Buffer) ToEnd() {
	b.moveGapTo(b.ContentLength())

	_, column := b.recomputeCursorLine()
	b.wantColumn = column
}

// ToLineStart moves the cursor to the start of its current line.
func (b *Buffer) ToLineStart() {
	line, _ := b.recomputeCursorLine()
	b.moveGapTo(b.lineStartOffset(line))
	b.wantColumn = 0
}

// ToLineEnd moves the cursor to the end of its current line (before the
// trailing newline, if any).
func (b *Buffer) ToLineEnd() {
	line, _ := b.recomputeCursorLine()
	end := b.lineEndOffset(line)
	b.moveGapTo(end)
	b.wantColumn = end - b.lineStartOffset(line)
}
