// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     factory.go
// Date:     30.Jul.2026
//
// =============================================================================

package layout

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// DefaultFamily is the face name Factory registers itself with on Init, and
// the only family NewTextFormat accepts unless RegisterFace adds more.
const DefaultFamily = "monospace"

// Factory is the process-wide, reference-counted layout context (spec.md
// section 4.3.1): a single lock-guarded holder of the active ShapingEngine
// and a font.Face registry, standing in for the platform's pair of COM
// factories and system font collection.
type Factory struct {
	mu       sync.Mutex
	refCount int
	engine   ShapingEngine
	faces    map[string]font.Face
}

// NewFactory constructs an uninitialized Factory. Call Init before creating
// any TextFormat or TextLayout.
func NewFactory() *Factory {
	return &Factory{}
}

// Init takes the lock and either increments the reference count of an
// already-initialized Factory, or performs first-time setup: registering
// the default monospace face and, if engine is nil, installing the
// metrics-only reference ShapingEngine (spec.md section 4.3.1 steps 1-4).
// Calls from multiple goroutines are safe.
func (f *Factory) Init(engine ShapingEngine) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.refCount > 0 {
		f.refCount++

		return nil
	}

	faces := map[string]font.Face{
		DefaultFamily: basicfont.Face7x13,
	}

	if engine == nil {
		engine = newMetricsEngine(faces[DefaultFamily])
	}

	f.faces = faces
	f.engine = engine
	f.refCount = 1

	return nil
}

// Shutdown decrements the reference count; at zero it releases the face
// registry and engine (spec.md section 4.3.1's "shutdown").
func (f *Factory) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.refCount == 0 {
		return
	}

	f.refCount--

	if f.refCount == 0 {
		f.faces = nil
		f.engine = nil
	}
}

// IsInitialized reports whether the Factory currently holds at least one
// reference.
func (f *Factory) IsInitialized() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.refCount > 0
}

// RegisterFace adds (or replaces) a font.Face under family, so NewTextFormat
// can subsequently accept that family name. Only meaningful after Init.
func (f *Factory) RegisterFace(family string, face font.Face) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.faces == nil {
		f.faces = map[string]font.Face{}
	}

	f.faces[family] = face
}

// validateFaceLocked reports qerr.CodeDirectWriteInit if family is not a
// registered face, or if weight/style name a value this reference
// implementation does not recognize. Callers must hold f.mu.
func (f *Factory) validateFaceLocked(family string, weight Weight, style Style) error {
	if _, ok := f.faces[family]; !ok {
		return qerr.Wrap(qerr.CodeDirectWriteInit, "unknown font family", ErrUnsupportedFont)
	}

	if weight != WeightRegular && weight != WeightBold {
		return qerr.Wrap(qerr.CodeDirectWriteInit, "unknown font weight", ErrUnsupportedFont)
	}

	if style != StyleNormal && style != StyleItalic {
		return qerr.Wrap(qerr.CodeDirectWriteInit, "unknown font style", ErrUnsupportedFont)
	}

	return nil
}

func notInitializedError(op string) error {
	return qerr.New(qerr.CodeNotInitialized, op+": factory is not initialized")
}
