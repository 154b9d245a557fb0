// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     buffer_whitebox_test.go
// Date:     30.Jul.2026
//
// =============================================================================

// Whitebox testing of the gap buffer's internal invariants.
package qalam

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGapInvariantAfterGrow(t *testing.T) {
	t.Parallel()

	b := WithCapacity(4)
	require.NoError(t, b.Insert([]byte(strings.Repeat("x", 5000))))

	assert.GreaterOrEqual(t, b.gapEnd, b.gapStart)
	assert.Equal(t, b.capacity(), b.ContentLength()+b.GapSize())
}

func TestEnsureGapCapacityRespectsMax(t *testing.T) {
	t.Parallel()

	b := WithCapacity(16)
	b.gapStart = 0
	b.gapEnd = 16

	err := b.ensureGapCapacity(MaxBufferCodeUnits + 1)
	require.Error(t, err)
}

func TestMoveGapToBothDirections(t *testing.T) {
	t.Parallel()

	b, err := FromUTF8([]byte("abcdefghij"))
	require.NoError(t, err)

	b.moveGapTo(3)
	assert.Equal(t, "abc", string(encodeForTest(b.logicalSlice(0, 3))))

	b.moveGapTo(8)
	assert.Equal(t, "abcdefgh", string(encodeForTest(b.logicalSlice(0, 8))))

	b.moveGapTo(0)
	assert.Equal(t, "", string(encodeForTest(b.logicalSlice(0, 0))))
	assert.Equal(t, "abcdefghij", string(encodeForTest(b.logicalSlice(0, 10))))
}

func TestLogicalSliceBridgesGap(t *testing.T) {
	t.Parallel()

	b, err := FromUTF8([]byte("Hello World"))
	require.NoError(t, err)

	b.moveGapTo(5)
	units := b.logicalSlice(2, 9)
	assert.Equal(t, "llo Wor", string(encodeForTest(units)))
}

func TestSnapOffsetOnlySnapsMidSurrogate(t *testing.T) {
	t.Parallel()

	b := Empty()
	require.NoError(t, b.Insert([]byte("A\U0001D11EB")))

	assert.Equal(t, 1, b.snapOffset(2), "bisects the pair, snaps back")
	assert.Equal(t, 1, b.snapOffset(1), "already on a boundary, unchanged")
	assert.Equal(t, 3, b.snapOffset(3), "already on a boundary, unchanged")
	assert.Equal(t, 0, b.snapOffset(0))
	assert.Equal(t, 4, b.snapOffset(4))
}

func TestRebuildLinesCountsNewlinesAcrossGap(t *testing.T) {
	t.Parallel()

	b, err := FromUTF8([]byte("a\nb\nc\nd"))
	require.NoError(t, err)
	assert.Equal(t, 4, b.GetLineCount())

	b.moveGapTo(2)
	require.NoError(t, b.Insert([]byte("\n")))
	assert.Equal(t, 5, b.GetLineCount())
}

func TestDeleteBackwardAcrossSurrogate(t *testing.T) {
	t.Parallel()

	b := Empty()
	require.NoError(t, b.Insert([]byte("A\U0001D11EB")))
	require.NoError(t, b.SetCursorOffset(3)) // right after the pair, before 'B'
	require.NoError(t, b.Delete(-1))

	assert.Equal(t, "AB", b.GetContent())
}

func encodeForTest(units []uint16) []byte {
	runes := make([]rune, len(units))
	for i, u := range units {
		runes[i] = rune(u)
	}

	return []byte(string(runes))
}
