// SPDX-FileCopyrightText:  Copyright 2026 OmarAglan
// SPDX-License-Identifier: MIT
//
// Project:  Qalam
// File:     encoding.go
// Date:     30.Jul.2026
//
// =============================================================================

// Package encoding is the bridge between the external UTF-8 byte interface
// every public qalam API uses and the internal 16-bit code-unit storage the
// gap buffer actually keeps. No internal encoding detail ever crosses this
// boundary unconverted.
package encoding

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/OmarAglan/Qalam-sub000/qerr"
)

// bomBytes is the 3-byte UTF-8 byte order mark.
var bomBytes = [3]byte{0xEF, 0xBB, 0xBF}

// HighSurrogateMin and HighSurrogateMax bound the high (leading) surrogate
// range. LowSurrogateMin and LowSurrogateMax bound the low (trailing) one.
const (
	HighSurrogateMin uint16 = 0xD800
	HighSurrogateMax uint16 = 0xDBFF
	LowSurrogateMin  uint16 = 0xDC00
	LowSurrogateMax  uint16 = 0xDFFF
)

// IsHighSurrogate reports whether u is a high (leading) surrogate code unit.
func IsHighSurrogate(u uint16) bool {
	return u >= HighSurrogateMin && u <= HighSurrogateMax
}

// IsLowSurrogate reports whether u is a low (trailing) surrogate code unit.
func IsLowSurrogate(u uint16) bool {
	return u >= LowSurrogateMin && u <= LowSurrogateMax
}

// StripBOM removes a leading UTF-8 byte order mark from b, if present. The
// file format is fixed at UTF-8 (spec.md sections 1 and 6), so this is a
// plain 3-byte prefix check rather than the multi-encoding BOM sniffing
// golang.org/x/text/encoding/unicode provides - there is nothing to sniff
// among when only one encoding is ever accepted.
func StripBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == bomBytes[0] && b[1] == bomBytes[1] && b[2] == bomBytes[2] {
		return b[3:]
	}

	return b
}

// ToUTF16 converts UTF-8 bytes to internal 16-bit code units. Input may be
// any valid, possibly partial, UTF-8 byte sequence; invalid input fails with
// qerr.CodeEncoding and writes no partial output.
func ToUTF16(b []byte) ([]uint16, error) {
	if !utf8.Valid(b) {
		return nil, qerr.New(qerr.CodeEncoding, "invalid UTF-8 input")
	}

	runes := make([]rune, 0, utf8.RuneCount(b))

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return nil, qerr.New(qerr.CodeEncoding, "invalid UTF-8 rune")
		}

		runes = append(runes, r)
		i += size
	}

	return utf16.Encode(runes), nil
}

// EncodedLen returns the number of UTF-8 bytes needed to hold u, without
// building the UTF-8 output itself. Callers that need a reusable output buffer should size it
// with this first, per spec.md's "length queries always precede allocation"
// policy.
func EncodedLen(u []uint16) int {
	n := 0
	for _, r := range utf16.Decode(u) {
		n += utf8.RuneLen(r)
	}

	return n
}

// Encode fills dst (which must be at least EncodedLen(u) bytes) with the
// UTF-8 encoding of u and returns the number of bytes written.
func Encode(dst []byte, u []uint16) int {
	n := 0
	for _, r := range utf16.Decode(u) {
		n += utf8.EncodeRune(dst[n:], r)
	}

	return n
}

// ToUTF8 converts internal code units to a freshly allocated UTF-8 byte
// slice.
func ToUTF8(u []uint16) []byte {
	dst := make([]byte, EncodedLen(u))
	Encode(dst, u)

	return dst
}

// ToString converts internal code units directly to a Go string.
func ToString(u []uint16) string {
	return string(utf16.Decode(u))
}
