// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     properties_test.go
// Date:     30.Jul.2026
//
// =============================================================================

// Property-based testing of the buffer's universal invariants.
package qalam_test

import (
	"strings"
	"testing"
	"testing/quick"

	qalam "github.com/OmarAglan/Qalam-sub000"
	"github.com/stretchr/testify/require"
)

// Property 1: line_count == 1 + count(U+000A in content).
func TestPropertyLineCountMatchesNewlineCount(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		b, err := qalam.FromUTF8([]byte(s))
		if err != nil {
			return true // non-UTF-8 input is out of scope for this property
		}

		return b.GetLineCount() == 1+strings.Count(s, "\n")
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 300}))
}

// Property 2: setting the cursor to any offset p leaves GetCursor().Offset
// equal to the snapped form of p.
func TestPropertySetCursorOffsetSnaps(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("A\U0001D11EB quick مرحبا fox"))
	require.NoError(t, err)

	size := b.GetSize()

	f := func(p uint8) bool {
		offset := int(p) % (size + 1)

		if err := b.SetCursorOffset(offset); err != nil {
			return false
		}

		got := b.GetCursor().Offset

		// Offset 2 is the only one that bisects the surrogate pair (code
		// units 1 and 2); it snaps back to 1. Every other offset is kept.
		want := offset
		if offset == 2 {
			want = 1
		}

		if got != want {
			return false
		}

		// A snapped offset, re-applied, is a fixed point.
		if err := b.SetCursorOffset(got); err != nil {
			return false
		}

		return b.GetCursor().Offset == got
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 300}))
}

// Property 3: insert(s) followed by delete(-len(s)) at the same cursor
// position restores the pre-state content and line count.
func TestPropertyInsertThenDeleteIsIdentity(t *testing.T) {
	t.Parallel()

	f := func(prefix, s string) bool {
		if strings.ContainsRune(s, 0) || strings.ContainsRune(prefix, 0) {
			return true // NUL bytes round-trip oddly through os/UTF-8 fixtures, skip
		}

		b, err := qalam.FromUTF8([]byte(prefix))
		if err != nil {
			return true
		}

		before := b.GetContent()
		beforeLines := b.GetLineCount()

		b.ToEnd()

		runes := len([]rune(s))
		if err := b.Insert([]byte(s)); err != nil {
			return true
		}

		// Delete counts unicode code points, not code units - a rune of s
		// that is a surrogate pair is still a single code point to delete.
		if err := b.Delete(-runes); err != nil {
			return false
		}

		return b.GetContent() == before && b.GetLineCount() == beforeLines
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 300}))
}

// Property 4: insert(s) at offset p, then get-range(p, p+len(s)) returns s.
// Checked here with p = 0, inserting into an empty buffer.
func TestPropertyInsertThenGetRangeRoundTrips(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		if s == "" {
			return true
		}

		b := qalam.Empty()

		if err := b.Insert([]byte(s)); err != nil {
			return true
		}

		return b.GetRange(0, utf16Len(s)) == s
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 300}))
}

// Property 6: get-line(n) returns the substring strictly between the n-th
// and (n+1)-th newline.
func TestPropertyGetLineMatchesSplit(t *testing.T) {
	t.Parallel()

	f := func(lines []string) bool {
		for _, l := range lines {
			if strings.ContainsRune(l, '\n') || strings.ContainsRune(l, 0) {
				return true
			}
		}

		content := strings.Join(lines, "\n")

		b, err := qalam.FromUTF8([]byte(content))
		if err != nil {
			return true
		}

		for n, want := range lines {
			got, err := b.GetLine(n)
			if err != nil || got != want {
				return false
			}
		}

		return true
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}

// Property 7: after any mutation, content_length + gap_size == capacity.
func TestPropertyGapInvariantHoldsAfterEdits(t *testing.T) {
	t.Parallel()

	f := func(inserts []string) bool {
		b := qalam.Empty()

		for _, s := range inserts {
			if strings.ContainsRune(s, 0) {
				continue
			}

			_ = b.Insert([]byte(s))
			_ = b.Delete(1)
		}

		return b.Capacity() == b.GetSize()+b.GapSize()
	}

	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}

// utf16Len returns the number of UTF-16 code units s encodes to.
func utf16Len(s string) int {
	n := 0

	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}

	return n
}
