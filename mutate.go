// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     mutate.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import (
	"github.com/OmarAglan/Qalam-sub000/encoding"
	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// Insert inserts text at the current cursor position and leaves the cursor
// at the end of the inserted text. text must be valid UTF-8.
func (b *Buffer) Insert(text []byte) error {
	return b.InsertAt(b.gapStart, text)
}

// InsertAt inserts text at the given code-unit offset. If offset is not the
// current cursor position, the cursor moves there first; afterwards the
// cursor sits at the end of the inserted text.
func (b *Buffer) InsertAt(offset int, text []byte) error {
	if text == nil {
		return qerr.New(qerr.CodeNullPointer, "insert: text is nil")
	}

	units, err := encoding.ToUTF16(text)
	if err != nil {
		return err
	}

	if offset < 0 || offset > b.ContentLength() {
		return qerr.New(qerr.CodeInvalidRange, "insert: offset out of range")
	}

	if len(units) == 0 {
		return nil
	}

	if err := b.ensureGapCapacity(len(units) + 1); err != nil {
		return err
	}

	b.moveGapTo(offset)
	n := copy(b.data[b.gapStart:b.gapEnd], units)
	b.gapStart += n

	b.afterMutation()

	return nil
}

// Delete removes count unicode code points relative to the cursor: a
// positive count deletes forward (like the "delete" key), a negative count
// deletes backward (like "backspace"). Deleting from an empty buffer, or
// past either edge, silently clamps rather than failing - spec.md section 8
// is explicit that "delete from empty buffer returns ok (zero-effect), not
// an error", and section 9's open question about overrun is resolved the
// same way here: truncate, don't fail.
func (b *Buffer) Delete(count int) error {
	switch {
	case count > 0:
		b.deleteForward(count)
	case count < 0:
		b.deleteBackward(-count)
	}

	return nil
}

// deleteForward deletes up to n code points starting at the cursor,
// extending across trailing surrogate pairs so one is never split
// (spec.md section 4.2.2 step 4).
func (b *Buffer) deleteForward(n int) {
	contentLen := b.ContentLength()

	k := 0
	for i := 0; i < n; i++ {
		if b.gapStart+k >= contentLen {
			break
		}

		u := b.codeUnitAt(b.gapStart + k)
		k++

		if encoding.IsHighSurrogate(u) && b.gapStart+k < contentLen {
			if low := b.codeUnitAt(b.gapStart + k); encoding.IsLowSurrogate(low) {
				k++
			}
		}
	}

	if k == 0 {
		return
	}

	b.gapEnd += k
	b.afterMutation()
}

// deleteBackward deletes up to n code points ending at the cursor,
// retreating across leading surrogate pairs so one is never split
// (spec.md section 4.2.2 step 4).
func (b *Buffer) deleteBackward(n int) {
	k := 0
	for i := 0; i < n; i++ {
		if b.gapStart-k <= 0 {
			break
		}

		u := b.codeUnitAt(b.gapStart - k - 1)
		k++

		if encoding.IsLowSurrogate(u) && b.gapStart-k > 0 {
			if high := b.codeUnitAt(b.gapStart - k - 1); encoding.IsHighSurrogate(high) {
				k++
			}
		}
	}

	if k == 0 {
		return
	}

	b.gapStart -= k
	b.afterMutation()
}

// DeleteRange removes the code units in [start, end), normalizing start and
// end into ascending order and clamping both to [0, ContentLength()].
func (b *Buffer) DeleteRange(start, end int) error {
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
		return nil
	}

	b.moveGapTo(start)
	b.gapEnd += end - start
	b.afterMutation()

	return nil
}

// Replace deletes [start, end) and then inserts text in its place, leaving
// the cursor at the end of the inserted text. The two steps are not atomic:
// if the insert fails (for example on nil or invalid UTF-8 text), the
// deletion has already been applied.
func (b *Buffer) Replace(start, end int, text []byte) error {
	if err := b.DeleteRange(start, end); err != nil {
		return err
	}

	if start > end {
		start, end = end, start
	}

	return b.InsertAt(start, text)
}

// afterMutation implements spec.md section 4.2.2 steps 5-7: recompute the
// line index, recompute the cursor's (line, column), and mark the buffer
// modified.
func (b *Buffer) afterMutation() {
	b.rebuildLines()

	_, column := b.recomputeCursorLine()
	b.wantColumn = column

	b.modified = true
}
