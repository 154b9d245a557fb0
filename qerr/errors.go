// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     errors.go
// Date:     30.Jul.2026
//
// =============================================================================

// Package qerr defines the single enumerated result vocabulary shared by the
// gap buffer (package qalam) and the layout contract (package layout).
//
// Every fallible operation in this module returns a *qerr.Error (or nil) by
// value instead of relying on exceptions or out-of-band signaling. Codes are
// grouped into fixed numeric ranges so that outer layers not covered by this
// module - window/UI and terminal - can be assigned their own codes without
// ever colliding with a buffer or file code returned from here.
package qerr

import (
	"fmt"
	"sync"
)

// Code classifies a failure into one of the kinds the core distinguishes.
// The zero value, CodeOK, is not itself an error - it is what a successful,
// "no out-of-band signal" operation would report if it needed to report
// anything at all.
type Code int

// General-purpose codes, range 1..99.
const (
	CodeOK Code = iota
	CodeUnknown
	CodeNullPointer
	CodeInvalidArgument
	CodeOutOfMemory
	CodeNotInitialized
	CodeDirectWriteInit
	CodeD2DInit
)

// Buffer codes, range 100..199.
const (
	CodeInvalidPosition Code = iota + 100
	CodeInvalidRange
	CodeEncoding
)

// Window/UI codes, range 200..299. Reserved: this module never emits them -
// the window shell that consumes this core owns that range.
const (
	_ Code = iota + 200
)

// Terminal codes, range 300..399. Reserved: the ConPTY wrapper that consumes
// this core owns that range.
const (
	_ Code = iota + 300
)

// File codes, range 400..499.
const (
	CodeFileNotFound Code = iota + 400
	CodeFileAccess
	CodeFileRead
	CodeFileWrite
	CodeFileTooLarge
)

// String returns the lower-kebab-case name used throughout spec
// documentation and log output ("invalid-range", not "InvalidRange").
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeUnknown:
		return "unknown"
	case CodeNullPointer:
		return "null-pointer"
	case CodeInvalidArgument:
		return "invalid-argument"
	case CodeOutOfMemory:
		return "out-of-memory"
	case CodeNotInitialized:
		return "not-initialized"
	case CodeDirectWriteInit:
		return "directwrite-init"
	case CodeD2DInit:
		return "d2d-init"
	case CodeInvalidPosition:
		return "invalid-position"
	case CodeInvalidRange:
		return "invalid-range"
	case CodeEncoding:
		return "encoding"
	case CodeFileNotFound:
		return "file-not-found"
	case CodeFileAccess:
		return "file-access"
	case CodeFileRead:
		return "file-read"
	case CodeFileWrite:
		return "file-write"
	case CodeFileTooLarge:
		return "file-too-large"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error is the rich result value every fallible operation in this module
// returns. It satisfies the standard error interface and chains onto an
// optional underlying cause so callers can still use errors.Is/errors.As.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the chained cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New builds an Error of the given code and records it as the last
// diagnostic (see LastDiagnostic).
func New(code Code, message string) *Error {
	e := &Error{Code: code, Message: message}
	recordDiagnostic(e)

	return e
}

// Wrap builds an Error of the given code chained onto cause, and records it
// as the last diagnostic (see LastDiagnostic).
func Wrap(code Code, message string, cause error) *Error {
	e := &Error{Code: code, Message: message, Cause: cause}
	recordDiagnostic(e)

	return e
}

// Is reports whether err is a *qerr.Error carrying the given code. It is a
// thin convenience wrapper; callers may also use errors.As directly.
func Is(err error, code Code) bool {
	var qe *Error

	for err != nil {
		if e, ok := err.(*Error); ok {
			qe = e

			break
		}

		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}

		err = u.Unwrap()
	}

	return qe != nil && qe.Code == code
}

// Diagnostic is the extended, thread-local-shaped last-error record that
// spec.md section 4.4 allows (but does not require) for tooling. Go has no
// true thread-local storage, so this is a single process-wide slot guarded
// by a mutex - a compatibility shim, not a correctness requirement. Nothing
// in this module reads LastDiagnostic to make a decision; it exists purely
// so an outer C-ABI layer (or a debugger) has somewhere to look.
type Diagnostic struct {
	Code       Code
	Message    string
	Underlying int32
}

var (
	diagMu   sync.RWMutex
	lastDiag Diagnostic
)

func recordDiagnostic(e *Error) {
	diagMu.Lock()
	defer diagMu.Unlock()

	lastDiag = Diagnostic{Code: e.Code, Message: e.Message}
}

// LastDiagnostic returns the most recently constructed Error's diagnostic
// snapshot. See the Diagnostic doc comment: this is a compatibility shim,
// not part of this module's correctness contract.
func LastDiagnostic() Diagnostic {
	diagMu.RLock()
	defer diagMu.RUnlock()

	return lastDiag
}

// ClearDiagnostic resets the last-diagnostic slot to its zero value.
func ClearDiagnostic() {
	diagMu.Lock()
	defer diagMu.Unlock()

	lastDiag = Diagnostic{}
}

// SetUnderlying attaches a platform-specific underlying code (for example an
// HRESULT) to the last recorded diagnostic, for tooling that wants it.
func SetUnderlying(code int32) {
	diagMu.Lock()
	defer diagMu.Unlock()

	lastDiag.Underlying = code
}
