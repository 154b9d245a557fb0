// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     default_engine.go
// Date:     30.Jul.2026
//
// =============================================================================

package layout

import (
	"unicode/utf16"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/OmarAglan/Qalam-sub000/encoding"
)

// fallbackAdvanceDivisor divides the face's line height to give the advance
// used for any rune the face reports no advance for - half the line height,
// wide enough that hit-testing still has something non-degenerate to report.
const fallbackAdvanceDivisor = 2

// metricsEngine is the ShapingEngine Factory.Init installs by default: it
// measures text with a golang.org/x/image/font.Face and resolves each line's
// paragraph direction with golang.org/x/text/unicode/bidi, but does not
// rasterize glyphs. An RTL line is placed as a single run in reverse
// logical order; embedded runs of the opposite direction are not reordered. It is line-breaking-free: maxWidth/maxHeight
// are accepted for interface compatibility with a real engine, but only an
// explicit U+000A ever starts a new output line here.
type metricsEngine struct {
	face font.Face
}

func newMetricsEngine(face font.Face) *metricsEngine {
	return &metricsEngine{face: face}
}

// Shape implements ShapingEngine.
func (e *metricsEngine) Shape(text []uint16, format *TextFormat, maxWidth, maxHeight fixed.Int26_6) (ShapedLines, error) {
	if format == nil {
		return ShapedLines{}, ErrNullPointer
	}

	metrics := e.face.Metrics()
	lineHeight := metrics.Height

	var (
		lines                   []ShapedLine
		maxLineWidth            fixed.Int26_6
		trailingWhitespaceWidth fixed.Int26_6
	)

	start := 0

	for start <= len(text) {
		end := start

		for end < len(text) && text[end] != '\n' {
			end++
		}

		line := e.shapeLine(text, start, end, format.Direction)
		lines = append(lines, line)

		if line.Width > maxLineWidth {
			maxLineWidth = line.Width
		}

		if end == len(text) {
			trailingWhitespaceWidth = trailingWhitespaceOf(e.face, text[start:end])

			break
		}

		start = end + 1
	}

	return ShapedLines{
		Lines:                   lines,
		Width:                   maxLineWidth,
		Height:                  lineHeight * fixed.Int26_6(len(lines)),
		LineHeight:              lineHeight,
		TrailingWhitespaceWidth: trailingWhitespaceWidth,
	}, nil
}

// shapeLine shapes one newline-delimited run, text[start:end], and reports
// it with code-unit offsets relative to the full text passed to Shape.
func (e *metricsEngine) shapeLine(text []uint16, start, end int, direction Direction) ShapedLine {
	metrics := e.face.Metrics()

	dir := direction
	if para := classifyParagraphDirection(text[start:end]); para != directionAuto {
		// An explicit RTL format always wins (spec.md section 4.3.3's
		// "format's RTL setting is not sufficient ... flow direction is
		// layout-scoped" cuts the other way too: an LTR format still lays
		// out a strongly-RTL paragraph as RTL, matching what BiDi resolution
		// would do underneath a real engine).
		if direction == DirectionLTR {
			dir = para
		}
	}

	type unit struct {
		offset, length int
		advance        fixed.Int26_6
	}

	var units []unit

	for i := start; i < end; {
		length := 1
		r := rune(text[i])

		if encoding.IsHighSurrogate(text[i]) && i+1 < end && encoding.IsLowSurrogate(text[i+1]) {
			r = utf16.DecodeRune(rune(text[i]), rune(text[i+1]))
			length = 2
		}

		adv, ok := e.face.GlyphAdvance(r)
		if !ok {
			adv = metrics.Height / fallbackAdvanceDivisor
		}

		units = append(units, unit{offset: i, length: length, advance: adv})
		i += length
	}

	glyphs := make([]ShapedGlyph, len(units))

	var width fixed.Int26_6

	if dir == DirectionRTL {
		x := fixed.Int26_6(0)

		for i := len(units) - 1; i >= 0; i-- {
			u := units[i]
			glyphs[i] = ShapedGlyph{
				CodeUnitOffset: u.offset,
				CodeUnitLength: u.length,
				VisualIndex:    len(units) - 1 - i,
				X0:             x,
				X1:             x + u.advance,
			}
			x += u.advance
		}

		width = x
	} else {
		x := fixed.Int26_6(0)

		for i, u := range units {
			glyphs[i] = ShapedGlyph{
				CodeUnitOffset: u.offset,
				CodeUnitLength: u.length,
				VisualIndex:    i,
				X0:             x,
				X1:             x + u.advance,
			}
			x += u.advance
		}

		width = x
	}

	return ShapedLine{
		CodeUnitStart: start,
		CodeUnitEnd:   end,
		Direction:     dir,
		Glyphs:        glyphs,
		Width:         width,
		Ascent:        metrics.Ascent,
		Descent:       metrics.Descent,
	}
}

// directionAuto is an internal tri-state used only while classifying a
// paragraph - it is not part of the public Direction enum, since a
// ShapedLine always ends up resolved to one of DirectionLTR/DirectionRTL.
const directionAuto Direction = -1

// classifyParagraphDirection reports the paragraph's BiDi base direction,
// or directionAuto if bidi finds no strong directional character.
func classifyParagraphDirection(units []uint16) Direction {
	s := encoding.ToString(units)
	if s == "" {
		return directionAuto
	}

	var p bidi.Paragraph
	if _, err := p.SetString(s); err != nil {
		return directionAuto
	}

	switch p.Direction() {
	case bidi.RightToLeft:
		return DirectionRTL
	case bidi.LeftToRight:
		return DirectionLTR
	default:
		return directionAuto
	}
}

// trailingWhitespaceOf measures the width of the maximal run of whitespace
// code units at the end of units.
func trailingWhitespaceOf(face font.Face, units []uint16) fixed.Int26_6 {
	metrics := face.Metrics()

	i := len(units)
	for i > 0 && isWhitespaceCodeUnit(units[i-1]) {
		i--
	}

	var width fixed.Int26_6

	for _, u := range units[i:] {
		adv, ok := face.GlyphAdvance(rune(u))
		if !ok {
			adv = metrics.Height / fallbackAdvanceDivisor
		}

		width += adv
	}

	return width
}

func isWhitespaceCodeUnit(u uint16) bool {
	return u == ' ' || u == '\t' || u == '\r'
}
