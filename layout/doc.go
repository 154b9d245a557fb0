// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     doc.go
// Date:     30.Jul.2026
//
// =============================================================================

// Package layout implements the text layout and hit-testing contract: a
// Factory lifecycle, immutable TextFormat and TextLayout values, and the
// measurement and hit-testing operations built on top of them.
//
// The actual glyph shaping and BiDi resolution that a real text renderer
// needs is modeled as a ShapingEngine, an interface this package is built
// around rather than implements directly - a platform shaping engine is
// out of scope here, the same way it is out of scope for the core buffer.
// The ShapingEngine this package ships is a metrics-only reference
// implementation built on golang.org/x/image/font and
// golang.org/x/text/unicode/bidi, sufficient to exercise the layout
// contract's monotonicity and hit-testing guarantees without a real font
// rasterizer wired in.
package layout
