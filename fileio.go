// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     fileio.go
// Date:     30.Jul.2026
//
// =============================================================================

package qalam

import (
	"errors"
	"os"

	"github.com/OmarAglan/Qalam-sub000/encoding"
	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// FromFile reads path into memory and constructs a Buffer from its
// contents, converting to internal code units (spec.md section 4.2.1). A
// leading UTF-8 BOM is tolerated and stripped. Fails with
// qerr.CodeFileTooLarge above MaxFileBytes, qerr.CodeFileNotFound if the
// file does not exist, qerr.CodeFileAccess on a permission error, or
// qerr.CodeFileRead on any other read failure.
func FromFile(path string) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, mapFileError(err)
	}

	if info.Size() > MaxFileBytes {
		return nil, qerr.New(qerr.CodeFileTooLarge, "file exceeds the maximum supported size")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, mapFileError(err)
	}

	b, err := FromUTF8(encoding.StripBOM(raw))
	if err != nil {
		return nil, err
	}

	b.filepath = path
	b.lineEnding = detectLineEnding(raw)
	b.modified = false

	return b, nil
}

// Save converts the buffer's content to UTF-8 and overwrites path with it.
// On success the buffer's filepath is updated and its modified flag is
// cleared. On failure the in-memory state is left unchanged (spec.md
// section 4.2.6): atomicity of the file itself is not guaranteed, but the
// Buffer's own state only changes after the write succeeds.
func (b *Buffer) Save(path string) error {
	content := encoding.ToUTF8(b.logicalSlice(0, b.ContentLength()))

	if err := os.WriteFile(path, content, 0o644); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return qerr.Wrap(qerr.CodeFileAccess, "permission denied", err)
		}

		return qerr.Wrap(qerr.CodeFileWrite, "file write error", err)
	}

	b.filepath = path
	b.modified = false

	return nil
}

// Load replaces the buffer's content with the contents of path. It builds
// the replacement in a temporary Buffer first and only swaps state into
// self once that has fully succeeded (spec.md section 4.2.6); on failure
// self is unchanged. Cursor and selection are reset to the start of the
// document, matching the one original call site that does so explicitly
// (spec.md section 9's open question on this point).
func (b *Buffer) Load(path string) error {
	tmp, err := FromFile(path)
	if err != nil {
		return err
	}

	b.data = tmp.data
	b.gapStart = tmp.gapStart
	b.gapEnd = tmp.gapEnd
	b.lineStarts = tmp.lineStarts
	b.filepath = tmp.filepath
	b.lineEnding = tmp.lineEnding
	b.fileEnc = tmp.fileEnc
	b.modified = false
	b.selection = nil
	b.wantColumn = 0

	b.ToStart()

	return nil
}

// mapFileError classifies an os error into the spec's file-error taxonomy.
func mapFileError(err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return qerr.Wrap(qerr.CodeFileNotFound, "file not found", err)
	case errors.Is(err, os.ErrPermission):
		return qerr.Wrap(qerr.CodeFileAccess, "permission denied", err)
	default:
		return qerr.Wrap(qerr.CodeFileRead, "file read error", err)
	}
}

// detectLineEnding inspects raw bytes for the first line-ending sequence it
// finds and returns that sequence's style; later line endings are not
// examined (spec.md section 9's
// supplemented feature, from original_source/buffer.h's LineEnding enum).
func detectLineEnding(raw []byte) LineEnding {
	for i, c := range raw {
		switch c {
		case '\r':
			if i+1 < len(raw) && raw[i+1] == '\n' {
				return LineEndingCRLF
			}

			return LineEndingCR
		case '\n':
			return LineEndingLF
		}
	}

	return LineEndingLF
}
