// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     doc.go
// Date:     30.Jul.2026
//
// =============================================================================

// Package qalam implements the gap-buffered text model at the heart of the
// Qalam editor: the container for the document text of a BiDi-aware (Arabic
// and Latin) text editor.
//
// A gap buffer is a contiguous array with a single "gap" of unused space
// that sits at the cursor position. Insertion and deletion at the cursor are
// O(1) amortized; moving the cursor is O(distance moved), because the gap
// has to be physically relocated by copying the intervening code units.
//
// Unlike a typical Go gap buffer, storage here is 16-bit code units, not
// bytes: the document is edited and measured in the same unit the BiDi
// layout contract (package layout) hands positions in, so that a cursor
// offset computed by this package is directly usable as a text position
// there, with no re-encoding step in between.
//
// The string "Hello, World!" with the cursor after "Hello," looks like this
// in the underlying array (gap shown as the blank cells):
//
//	Hello,| gap |  World!
//	['H','e','l','l','o',',', _, _, _, _, ' ','W','o','r','l','d','!']
//	  0    1   2   3   4   5  |   gap    |  6   7   8   9  10  11  12
//
// Moving the cursor slides the gap by copying code units across it;
// inserting writes into the start of the gap and advances gap_start;
// deleting forward/backward widens the gap by advancing its end/retreating
// its start. Surrogate pairs (characters outside the Basic Multilingual
// Plane, encoded as two adjacent 16-bit code units) are never split by any
// of these operations - see the encoding package's IsHighSurrogate and
// IsLowSurrogate.
//
// Lines are tracked by scanning the logical content for U+000A on every
// mutation rather than maintaining an incrementally-updated index; this is
// the simpler of the two strategies spec.md section 9 sanctions, and is
// accurate enough for the documents (<=10MB) this module targets. See
// lines.go.
package qalam
