// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     format.go
// Date:     30.Jul.2026
//
// =============================================================================

package layout

// Direction is a layout's or format's reading/flow direction.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// Weight is a coarse font-weight request, matching the handful of weights
// the reference engine's monospace face actually distinguishes.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

// Style is a coarse font-style request.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
)

// Alignment is a paragraph or text alignment setting.
type Alignment int

const (
	AlignmentLeading Alignment = iota
	AlignmentTrailing
	AlignmentCenter
)

// TextFormat is an immutable description of how a run of text should be
// shaped: family, size, weight, style, locale, reading direction, and
// alignment (spec.md section 4.3.2). Construct with
// Factory.NewTextFormat or Factory.NewArabicTextFormat.
type TextFormat struct {
	Family             string
	Size               float64 // device-independent pixels
	Weight             Weight
	Style              Style
	Locale             string
	Direction          Direction
	ParagraphAlignment Alignment
	TextAlignment      Alignment
}

// NewTextFormat creates an LTR format bound to locale en-US. Fails with
// qerr.CodeNotInitialized if the Factory hasn't been Init'd, or
// qerr.CodeDirectWriteInit if family/weight/style name an unsupported
// combination (spec.md section 4.3.2).
func (f *Factory) NewTextFormat(family string, size float64, weight Weight, style Style) (*TextFormat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.refCount == 0 {
		return nil, notInitializedError("new-text-format")
	}

	if err := f.validateFaceLocked(family, weight, style); err != nil {
		return nil, err
	}

	return &TextFormat{
		Family:             family,
		Size:               size,
		Weight:             weight,
		Style:              style,
		Locale:             "en-US",
		Direction:          DirectionLTR,
		ParagraphAlignment: AlignmentLeading,
		TextAlignment:      AlignmentLeading,
	}, nil
}

// NewArabicTextFormat creates an RTL format with locale ar, reading
// direction RTL, paragraph alignment near (leading) and text alignment
// trailing (spec.md section 4.3.2). The alignment choices here can never
// themselves fail in this implementation - unlike the platform API this is
// modeled on, there is no separate alignment-setter step that can fail
// independently of format construction - so there is nothing to log.
func (f *Factory) NewArabicTextFormat(family string, size float64) (*TextFormat, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.refCount == 0 {
		return nil, notInitializedError("new-arabic-text-format")
	}

	if err := f.validateFaceLocked(family, WeightRegular, StyleNormal); err != nil {
		return nil, err
	}

	return &TextFormat{
		Family:             family,
		Size:               size,
		Weight:             WeightRegular,
		Style:              StyleNormal,
		Locale:             "ar",
		Direction:          DirectionRTL,
		ParagraphAlignment: AlignmentLeading, // "near" for an RTL format reads as leading
		TextAlignment:      AlignmentTrailing,
	}, nil
}
