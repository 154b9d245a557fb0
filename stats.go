// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     stats.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import "unicode"

// Stats summarizes a buffer's size and state (spec.md section 4.2.7), plus
// the word count, line-ending style, and encoding tag this implementation
// supplements from original_source/buffer.h (spec.md section 9 - none of
// these touch the spec's Non-goals).
type Stats struct {
	TotalBytes   int // UTF-8 byte length of the content
	TotalChars   int // code units of content, gap excluded
	TotalLines   int
	GapSize      int
	Capacity     int
	IsModified   bool
	IsReadonly   bool
	WordCount    int
	LineEnding   LineEnding
	FileEncoding FileEncoding
}

// GetStats returns a snapshot of the buffer's size and state.
func (b *Buffer) GetStats() Stats {
	content := b.logicalSlice(0, b.ContentLength())

	return Stats{
		TotalBytes:   len(b.GetContent()),
		TotalChars:   b.ContentLength(),
		TotalLines:   b.GetLineCount(),
		GapSize:      b.GapSize(),
		Capacity:     b.Capacity(),
		IsModified:   b.modified,
		IsReadonly:   b.readonly,
		WordCount:    countWords(content),
		LineEnding:   b.lineEnding,
		FileEncoding: b.fileEnc,
	}
}

// GetSize returns the content length in code units.
func (b *Buffer) GetSize() int {
	return b.ContentLength()
}

// IsModified reports whether the buffer has unsaved changes.
func (b *Buffer) IsModified() bool {
	return b.modified
}

// ClearModified resets the modified flag to false without touching
// content - used after an external save the buffer itself didn't perform.
func (b *Buffer) ClearModified() {
	b.modified = false
}

// countWords approximates a word count as the number of maximal runs of
// non-whitespace code units - the same "approximate" caveat
// original_source/buffer.h attaches to its own word_count field.
func countWords(units []uint16) int {
	count := 0
	inWord := false

	for _, u := range units {
		isSpace := unicode.IsSpace(rune(u))

		switch {
		case !isSpace && !inWord:
			count++
			inWord = true
		case isSpace:
			inWord = false
		}
	}

	return count
}
