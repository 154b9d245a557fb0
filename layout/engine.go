// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     engine.go
// Date:     30.Jul.2026
//
// =============================================================================

package layout

import (
	"errors"

	"golang.org/x/image/math/fixed"

	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// Sentinel errors a ShapingEngine implementation may return from Shape.
// mapEngineError classifies them the way spec.md section 4.3.6 classifies
// the platform's HRESULT-like error surface.
var (
	ErrOutOfMemory     = errors.New("layout: out of memory")
	ErrInvalidArgument = errors.New("layout: invalid argument")
	ErrNullPointer     = errors.New("layout: null pointer")
	ErrUnsupportedFont = errors.New("layout: unsupported font family, weight, or style")
)

// ShapingEngine turns a run of UTF-16 code units plus a TextFormat into
// shaped lines. A production build would back this with HarfBuzz or
// DirectWrite; the engine registered by Factory.Init by default is a
// metrics-only reference implementation (see default_engine.go).
type ShapingEngine interface {
	Shape(text []uint16, format *TextFormat, maxWidth, maxHeight fixed.Int26_6) (ShapedLines, error)
}

// ShapedGlyph is one shaped glyph (or glyph-equivalent code unit run) within
// a ShapedLine, positioned in visual order.
type ShapedGlyph struct {
	CodeUnitOffset int // offset into the full text passed to Shape
	CodeUnitLength int // 1, or 2 for a surrogate pair
	VisualIndex    int // this glyph's 0-based rank in the line's visual order
	X0, X1         fixed.Int26_6
}

// ShapedLine is one line of shaped output - the unit Shape splits text into
// at each U+000A.
type ShapedLine struct {
	CodeUnitStart int // offset of this line's first code unit in the full text
	CodeUnitEnd   int // offset just past this line's last code unit (newline excluded)
	Direction     Direction
	Glyphs        []ShapedGlyph
	Width         fixed.Int26_6
	Ascent        fixed.Int26_6
	Descent       fixed.Int26_6
}

// ShapedLines is the complete output of one Shape call.
type ShapedLines struct {
	Lines                   []ShapedLine
	Width                   fixed.Int26_6
	Height                  fixed.Int26_6
	LineHeight              fixed.Int26_6
	TrailingWhitespaceWidth fixed.Int26_6
}

// mapEngineError classifies a ShapingEngine failure into the qerr code
// vocabulary, per spec.md section 4.3.6's table.
func mapEngineError(err error) qerr.Code {
	switch {
	case err == nil:
		return qerr.CodeOK
	case errors.Is(err, ErrOutOfMemory):
		return qerr.CodeOutOfMemory
	case errors.Is(err, ErrInvalidArgument):
		return qerr.CodeInvalidArgument
	case errors.Is(err, ErrNullPointer):
		return qerr.CodeNullPointer
	case errors.Is(err, ErrUnsupportedFont):
		return qerr.CodeDirectWriteInit
	default:
		return qerr.CodeUnknown
	}
}
