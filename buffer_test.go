// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     buffer_test.go
// Date:     30.Jul.2026
//
// =============================================================================

// Black-box testing of the gap buffer.
package qalam_test

import (
	"os"
	"path/filepath"
	"testing"

	qalam "github.com/OmarAglan/Qalam-sub000"
	"github.com/OmarAglan/Qalam-sub000/qerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==============================================================================
//                       Construction

func TestEmpty(t *testing.T) {
	t.Parallel()

	b := qalam.Empty()
	assert.Equal(t, "", b.GetContent())
	assert.Equal(t, 1, b.GetLineCount())
	assert.False(t, b.IsModified())
}

func TestFromUTF8(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Hello World!"))
	require.NoError(t, err)
	assert.Equal(t, "Hello World!", b.GetContent())
}

func TestFromUTF8InvalidEncoding(t *testing.T) {
	t.Parallel()

	_, err := qalam.FromUTF8([]byte{0xFF, 0xFE})
	require.Error(t, err)
	assert.True(t, qerr.Is(err, qerr.CodeEncoding))
}

// ==============================================================================
//                       S1-S8 concrete scenarios (spec.md section 8)

func TestS1InsertIntoEmpty(t *testing.T) {
	t.Parallel()

	b := qalam.Empty()
	require.NoError(t, b.Insert([]byte("Hello")))

	assert.Equal(t, "Hello", b.GetContent())
	assert.Equal(t, 1, b.GetLineCount())

	cur := b.GetCursor()
	assert.Equal(t, 0, cur.Line)
	assert.Equal(t, 5, cur.Column)
	assert.True(t, b.IsModified())
}

func TestS2InsertAtCursor(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Hello World"))
	require.NoError(t, err)
	require.NoError(t, b.SetCursorOffset(5))
	require.NoError(t, b.Insert([]byte(",")))

	assert.Equal(t, "Hello, World", b.GetContent())
	assert.Equal(t, 1, b.GetLineCount())
}

func TestS3LineCount(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Line1\nLine2\nLine3"))
	require.NoError(t, err)
	assert.Equal(t, 3, b.GetLineCount())
}

func TestS4DeleteRange(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Line1\nLine2\nLine3"))
	require.NoError(t, err)
	require.NoError(t, b.DeleteRange(5, 6))

	assert.Equal(t, "Line1Line2\nLine3", b.GetContent())
	assert.Equal(t, 2, b.GetLineCount())
}

func TestS5SurrogatePairAtomicity(t *testing.T) {
	t.Parallel()

	b := qalam.Empty()
	require.NoError(t, b.Insert([]byte("A\U0001D11EB")))

	assert.Equal(t, 4, b.GetSize(), "A + surrogate pair + B = 4 code units")

	require.NoError(t, b.SetCursorOffset(2))
	cur := b.GetCursor()
	assert.Equal(t, 1, cur.Offset, "offset 2 bisects the surrogate pair, snaps to 1")

	require.NoError(t, b.SetCursorOffset(1))
	require.NoError(t, b.Delete(1))
	assert.Equal(t, "AB", b.GetContent(), "deleting at the pair boundary removes both halves")
}

func TestS6ArabicLineDirection(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Hello\nمرحبا\nWorld"))
	require.NoError(t, err)

	info, err := b.GetLineInfo(1)
	require.NoError(t, err)
	assert.Equal(t, qalam.DirectionRTL, info.Direction)
	assert.True(t, info.HasRTL)
	assert.False(t, info.HasLTR)
}

func TestS8LargeDocumentEditStaysModified(t *testing.T) {
	t.Parallel()

	var content []byte
	for i := 0; i < 2000; i++ {
		content = append(content, []byte("0123456789 the quick brown fox\n")...)
	}

	b, err := qalam.FromUTF8(content)
	require.NoError(t, err)

	require.NoError(t, b.SetCursorOffset(b.GetSize()/2))
	require.NoError(t, b.Insert([]byte("X")))

	assert.True(t, b.IsModified())
}

// ==============================================================================
//                       Cursor & selection

func TestMoveCursorVertical(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Some text\nNo\nMore text"))
	require.NoError(t, err)
	b.ToEnd()
	require.NoError(t, b.SetCursor(2, 5))

	require.NoError(t, b.MoveCursor(-1, 0))
	cur := b.GetCursor()
	assert.Equal(t, 1, cur.Line)

	require.NoError(t, b.MoveCursor(-1, 0))
	cur = b.GetCursor()
	assert.Equal(t, 0, cur.Line)
	assert.Equal(t, 5, cur.Column, "sticky column is restored on a long-enough line")
}

func TestSelectionRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Hello, World!"))
	require.NoError(t, err)

	b.SetSelection(0, 7, 0, 12, false)
	assert.Equal(t, "World", b.GetSelectedText())

	sel := b.GetSelection()
	assert.True(t, sel.Active)

	b.ClearSelection()
	assert.False(t, b.GetSelection().Active)
	assert.Equal(t, "", b.GetSelectedText())
}

func TestSelectionNormalizesDescendingEndpoints(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("Hello, World!"))
	require.NoError(t, err)

	b.SetSelection(0, 12, 0, 7, false)
	assert.Equal(t, "World", b.GetSelectedText())
}

// ==============================================================================
//                       File I/O

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	b, err := qalam.FromUTF8([]byte("مرحبا بالعالم\nHello, World!\n"))
	require.NoError(t, err)
	require.NoError(t, b.Save(path))
	assert.False(t, b.IsModified())

	loaded, err := qalam.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.GetContent(), loaded.GetContent())
	assert.False(t, loaded.IsModified())
}

func TestLoadResetsModifiedAndCursor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	seed, err := qalam.FromUTF8([]byte("one\ntwo\nthree\n"))
	require.NoError(t, err)
	require.NoError(t, seed.Save(path))

	b, err := qalam.FromUTF8([]byte("scratch"))
	require.NoError(t, err)
	require.NoError(t, b.Load(path))

	assert.Equal(t, "one\ntwo\nthree\n", b.GetContent())
	assert.False(t, b.IsModified())

	cur := b.GetCursor()
	assert.Equal(t, 0, cur.Line)
	assert.Equal(t, 0, cur.Column)
}

func TestFromFileTolleratesBOM(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")

	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Hello")...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	b, err := qalam.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", b.GetContent())
}

func TestFromFileNotFound(t *testing.T) {
	t.Parallel()

	_, err := qalam.FromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, qerr.Is(err, qerr.CodeFileNotFound))
}

// ==============================================================================
//                       Error paths (spec.md section 8)

func TestDeleteFromEmptyIsZeroEffectNotError(t *testing.T) {
	t.Parallel()

	b := qalam.Empty()
	require.NoError(t, b.Delete(5))
	require.NoError(t, b.Delete(-5))
	assert.Equal(t, "", b.GetContent())
}

func TestGetLineOutOfRangeFails(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("a\nb\nc"))
	require.NoError(t, err)

	_, err = b.GetLine(999)
	require.Error(t, err)
	assert.True(t, qerr.Is(err, qerr.CodeInvalidRange))
}

func TestGetRangeOutOfRangeClampsRatherThanErrors(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("abcde"))
	require.NoError(t, err)

	assert.Equal(t, "", b.GetRange(100, 200))
}

func TestInsertNilFails(t *testing.T) {
	t.Parallel()

	b := qalam.Empty()
	err := b.Insert(nil)
	require.Error(t, err)
	assert.True(t, qerr.Is(err, qerr.CodeNullPointer))
}

// ==============================================================================
//                       Stats

func TestGetStats(t *testing.T) {
	t.Parallel()

	b, err := qalam.FromUTF8([]byte("the quick brown fox\njumps over"))
	require.NoError(t, err)

	stats := b.GetStats()
	assert.Equal(t, 2, stats.TotalLines)
	assert.Equal(t, 6, stats.WordCount)
	assert.False(t, stats.IsModified)
	assert.Equal(t, qalam.LineEndingLF, stats.LineEnding)
}
