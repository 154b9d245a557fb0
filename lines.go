// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     lines.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import "sort"

const newline uint16 = '\n'

// rebuildLines recomputes lineStarts by scanning the full logical content
// for newlines. spec.md section 9 explicitly allows this O(content) rescan
// strategy ("acceptable for <=10MB documents... optional optimization, not
// a correctness requirement" for the incrementally-updated alternative), in
// preference to porting the teacher's cursor-adjacent-motion-only line
// index, which cannot represent an arbitrary-offset insert or delete.
func (b *Buffer) rebuildLines() {
	starts := make([]int, 1, 16)
	starts[0] = 0

	left := b.data[:b.gapStart]
	for i, u := range left {
		if u == newline {
			starts = append(starts, i+1)
		}
	}

	right := b.data[b.gapEnd:]
	for i, u := range right {
		if u == newline {
			starts = append(starts, b.gapStart+i+1)
		}
	}

	b.lineStarts = starts
}

// GetLineCount returns the number of lines; always at least 1, and equal to
// 1 plus the number of U+000A code units in the content (spec.md section 3,
// invariant 3).
func (b *Buffer) GetLineCount() int {
	return len(b.lineStarts)
}

// lineStartOffset returns the code-unit offset of the first character of
// line n. Caller must ensure 0 <= n < GetLineCount().
func (b *Buffer) lineStartOffset(n int) int {
	return b.lineStarts[n]
}

// lineEndOffset returns the code-unit offset one past the last character of
// line n, excluding its trailing newline (if any).
func (b *Buffer) lineEndOffset(n int) int {
	var end int
	if n+1 < len(b.lineStarts) {
		end = b.lineStarts[n+1] - 1 // exclude the newline itself
	} else {
		end = b.ContentLength()
	}

	start := b.lineStarts[n]
	if end < start {
		end = start
	}

	return end
}

// lineOfOffset returns the index of the line containing logical offset.
func (b *Buffer) lineOfOffset(offset int) int {
	// The last lineStarts entry <= offset.
	idx := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})

	return idx - 1
}

// recomputeCursorLine derives the cursor's (line, column) from gapStart, per
// spec.md section 4.2.2 step 6.
func (b *Buffer) recomputeCursorLine() (line, column int) {
	line = b.lineOfOffset(b.gapStart)
	column = b.gapStart - b.lineStartOffset(line)

	return line, column
}

// classifyDirection implements spec.md section 4.2.4's direction
// classification as a pure function over a code-unit range, per the
// redesign guidance in spec.md section 9 ("extract as a pure function").
func classifyDirection(units []uint16) (dir Direction, hasRTL, hasLTR bool) {
	for _, u := range units {
		switch {
		case isRTLCodeUnit(u):
			hasRTL = true
		case isLTRCodeUnit(u):
			hasLTR = true
		}
	}

	switch {
	case hasRTL && !hasLTR:
		dir = DirectionRTL
	case hasLTR && !hasRTL:
		dir = DirectionLTR
	default:
		dir = DirectionAuto
	}

	return dir, hasRTL, hasLTR
}

// isRTLCodeUnit reports whether u lies in an Arabic or Hebrew Unicode block.
func isRTLCodeUnit(u uint16) bool {
	switch {
	case u >= 0x0600 && u <= 0x06FF: // Arabic
		return true
	case u >= 0x0750 && u <= 0x077F: // Arabic Supplement
		return true
	case u >= 0x08A0 && u <= 0x08FF: // Arabic Extended-A
		return true
	case u >= 0xFB50 && u <= 0xFDFF: // Arabic Presentation Forms-A
		return true
	case u >= 0xFE70 && u <= 0xFEFF: // Arabic Presentation Forms-B
		return true
	case u >= 0x0590 && u <= 0x05FF: // Hebrew
		return true
	default:
		return false
	}
}

// isLTRCodeUnit reports whether u lies in the ASCII Latin alphabetic range.
func isLTRCodeUnit(u uint16) bool {
	return (u >= 'A' && u <= 'Z') || (u >= 'a' && u <= 'z')
}
