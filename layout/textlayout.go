// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     textlayout.go
// Date:     30.Jul.2026
//
// =============================================================================

package layout

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// TextLayout is an immutable, shaped run of text sized to a pair of
// constraints (spec.md section 4.3.3). Construct with
// Factory.NewTextLayout or Factory.NewRTLTextLayout.
type TextLayout struct {
	text  []uint16
	lines ShapedLines
}

// Metrics summarizes a TextLayout as a whole (spec.md section 4.3.4).
type Metrics struct {
	Width                   float64
	Height                  float64
	LineCount               int
	TrailingWhitespaceWidth float64
	Top                     float64
}

// HitTestMetrics describes one character's hit-test bounding box (spec.md
// section 4.3.5).
type HitTestMetrics struct {
	TextPosition int
	Length       int
	Left         float64
	Top          float64
	Width        float64
	Height       float64
	IsText       bool
}

// HitTestResult is the outcome of TextLayout.HitTestPoint.
type HitTestResult struct {
	Position      int
	IsTrailingHit bool
	IsInside      bool
	Metrics       HitTestMetrics
}

// PointResult is the outcome of TextLayout.HitTestPosition.
type PointResult struct {
	X       float64
	Y       float64
	Metrics HitTestMetrics
}

// NewTextLayout produces an immutable layout of text sized to
// (maxWidth, maxHeight), using format's own direction (spec.md section
// 4.3.3). Fails with qerr.CodeNullPointer if format is nil (not
// qerr.CodeInvalidArgument - spec.md section 8's error-path scenarios are
// explicit on this point), or qerr.CodeNotInitialized if the Factory hasn't
// been Init'd. Must succeed on empty text.
func (f *Factory) NewTextLayout(text []uint16, format *TextFormat, maxWidth, maxHeight float64) (*TextLayout, error) {
	return f.newTextLayout(text, format, maxWidth, maxHeight, false)
}

// NewRTLTextLayout is like NewTextLayout, but then forces the layout's
// reading and flow direction to RTL regardless of format's own Direction -
// format's RTL setting alone is not sufficient because flow direction is
// layout-scoped (spec.md section 4.3.3).
func (f *Factory) NewRTLTextLayout(text []uint16, format *TextFormat, maxWidth, maxHeight float64) (*TextLayout, error) {
	return f.newTextLayout(text, format, maxWidth, maxHeight, true)
}

func (f *Factory) newTextLayout(text []uint16, format *TextFormat, maxWidth, maxHeight float64, forceRTL bool) (*TextLayout, error) {
	if format == nil {
		return nil, qerr.New(qerr.CodeNullPointer, "new-text-layout: format is nil")
	}

	f.mu.Lock()

	if f.refCount == 0 {
		f.mu.Unlock()

		return nil, notInitializedError("new-text-layout")
	}

	engine := f.engine
	f.mu.Unlock()

	effective := *format
	if forceRTL {
		effective.Direction = DirectionRTL
	}

	lines, err := engine.Shape(text, &effective, fixedFromFloat64(maxWidth), fixedFromFloat64(maxHeight))
	if err != nil {
		return nil, qerr.Wrap(mapEngineError(err), "new-text-layout: shaping failed", err)
	}

	return &TextLayout{text: text, lines: lines}, nil
}

// Measure returns the layout's overall metrics (spec.md section 4.3.4).
func (t *TextLayout) Measure() Metrics {
	return Metrics{
		Width:                   floatFromFixed(t.lines.Width),
		Height:                  floatFromFixed(t.lines.Height),
		LineCount:               len(t.lines.Lines),
		TrailingWhitespaceWidth: floatFromFixed(t.lines.TrailingWhitespaceWidth),
		Top:                     0,
	}
}

// HitTestPoint maps a point, relative to the layout's origin, to a text
// position (spec.md section 4.3.5). Point->Position is defined on the
// entire plane: outside the text, IsInside is false and Position snaps to
// the nearest edge.
func (t *TextLayout) HitTestPoint(x, y float64) HitTestResult {
	if len(t.lines.Lines) == 0 {
		return HitTestResult{Position: 0, IsInside: false}
	}

	lineIdx := int(y / floatFromFixed(t.lines.LineHeight))

	switch {
	case lineIdx < 0:
		lineIdx = 0
	case lineIdx >= len(t.lines.Lines):
		lineIdx = len(t.lines.Lines) - 1
	}

	line := t.lines.Lines[lineIdx]
	insideY := y >= 0 && y < floatFromFixed(t.lines.Height)

	if len(line.Glyphs) == 0 {
		return HitTestResult{
			Position: line.CodeUnitStart,
			IsInside: false,
			Metrics: HitTestMetrics{
				TextPosition: line.CodeUnitStart,
				Top:          float64(lineIdx) * floatFromFixed(t.lines.LineHeight),
				Height:       floatFromFixed(t.lines.LineHeight),
				IsText:       false,
			},
		}
	}

	px := fixedFromFloat64(x)

	// Glyphs are indexed by logical position; their visual X0 only
	// increases with index for an LTR line (for RTL it decreases), so every
	// glyph is checked for containment rather than assuming either order.
	for _, g := range line.Glyphs {
		if px >= g.X0 && px < g.X1 {
			trailing := px >= (g.X0+g.X1)/2

			return HitTestResult{
				Position:      g.CodeUnitOffset,
				IsTrailingHit: trailing,
				IsInside:      insideY,
				Metrics:       hitTestMetricsOf(g, line, lineIdx, t.lines.LineHeight),
			}
		}
	}

	// Outside every glyph's span: snap to the nearest edge (spec.md section
	// 4.3.5), found by visual (not logical) leftmost/rightmost extent.
	leftmost, rightmost := line.Glyphs[0], line.Glyphs[0]

	for _, g := range line.Glyphs {
		if g.X0 < leftmost.X0 {
			leftmost = g
		}

		if g.X1 > rightmost.X1 {
			rightmost = g
		}
	}

	if px < leftmost.X0 {
		return HitTestResult{
			Position: leftmost.CodeUnitOffset,
			IsInside: false,
			Metrics:  hitTestMetricsOf(leftmost, line, lineIdx, t.lines.LineHeight),
		}
	}

	return HitTestResult{
		Position:      rightmost.CodeUnitOffset + rightmost.CodeUnitLength,
		IsTrailingHit: true,
		IsInside:      false,
		Metrics:       hitTestMetricsOf(rightmost, line, lineIdx, t.lines.LineHeight),
	}
}

// HitTestPosition maps a (position, isTrailing) text location to the (x, y)
// of its corresponding edge (spec.md section 4.3.5). For an LTR layout, x
// is monotonically non-decreasing as position increases with
// isTrailing = false. For an RTL layout that monotonicity holds on visual
// order, not logical order - callers must not assume logical monotonicity
// there.
func (t *TextLayout) HitTestPosition(position int, isTrailing bool) PointResult {
	for lineIdx, line := range t.lines.Lines {
		if position < line.CodeUnitStart || position > line.CodeUnitEnd {
			continue
		}

		top := float64(lineIdx) * floatFromFixed(t.lines.LineHeight)

		for _, g := range line.Glyphs {
			if position >= g.CodeUnitOffset && position < g.CodeUnitOffset+g.CodeUnitLength {
				x := g.X0
				if isTrailing {
					x = g.X1
				}

				return PointResult{
					X:       floatFromFixed(x),
					Y:       top,
					Metrics: hitTestMetricsOf(g, line, lineIdx, t.lines.LineHeight),
				}
			}
		}

		// position is exactly at the line's end, one past its last glyph.
		if len(line.Glyphs) > 0 {
			last := line.Glyphs[len(line.Glyphs)-1]

			return PointResult{
				X:       floatFromFixed(last.X1),
				Y:       top,
				Metrics: hitTestMetricsOf(last, line, lineIdx, t.lines.LineHeight),
			}
		}

		return PointResult{X: 0, Y: top}
	}

	return PointResult{}
}

func hitTestMetricsOf(g ShapedGlyph, line ShapedLine, lineIdx int, lineHeight fixed.Int26_6) HitTestMetrics {
	return HitTestMetrics{
		TextPosition: g.CodeUnitOffset,
		Length:       g.CodeUnitLength,
		Left:         floatFromFixed(g.X0),
		Top:          float64(lineIdx) * floatFromFixed(lineHeight),
		Width:        floatFromFixed(g.X1 - g.X0),
		Height:       floatFromFixed(lineHeight),
		IsText:       true,
	}
}

func fixedFromFloat64(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func floatFromFixed(f fixed.Int26_6) float64 {
	return float64(f) / 64
}
