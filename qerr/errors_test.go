// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     errors_test.go
// Date:     30.Jul.2026
//
// =============================================================================

package qerr_test

import (
	"errors"
	"testing"

	"github.com/OmarAglan/Qalam-sub000/qerr"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := qerr.New(qerr.CodeInvalidRange, "offset out of bounds")
	assert.Equal(t, "invalid-range: offset out of bounds", err.Error())
}

func TestErrorMessageWithCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := qerr.Wrap(qerr.CodeFileWrite, "could not save", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := qerr.New(qerr.CodeEncoding, "invalid utf-8")
	assert.True(t, qerr.Is(err, qerr.CodeEncoding))
	assert.False(t, qerr.Is(err, qerr.CodeInvalidRange))
	assert.False(t, qerr.Is(nil, qerr.CodeEncoding))
}

func TestCodeRanges(t *testing.T) {
	t.Parallel()

	assert.True(t, qerr.CodeUnknown < 100)
	assert.True(t, qerr.CodeInvalidPosition >= 100 && qerr.CodeInvalidPosition < 200)
	assert.True(t, qerr.CodeFileNotFound >= 400 && qerr.CodeFileNotFound < 500)
}

func TestLastDiagnostic(t *testing.T) {
	qerr.ClearDiagnostic()
	qerr.New(qerr.CodeOutOfMemory, "capacity exceeded")

	diag := qerr.LastDiagnostic()
	assert.Equal(t, qerr.CodeOutOfMemory, diag.Code)
	assert.Equal(t, "capacity exceeded", diag.Message)
}

func TestCodeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file-too-large", qerr.CodeFileTooLarge.String())
	assert.Equal(t, "d2d-init", qerr.CodeD2DInit.String())
}
