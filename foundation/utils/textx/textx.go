// File: textx.go
// Title: Resource Text Decoding
// Description: Prepares raw resource bytes for the token reader (byte order
//              mark removal, UTF-16 to UTF-8) and turns token spans into
//              display text.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

// Package textx converts resource bytes between their stored encoding and the
// UTF-8 text the rest of mLaunch works with.
package textx

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// StripBOM removes a leading byte order mark. UTF-8 input loses its BOM and is
// otherwise unchanged; UTF-16 input with a BOM is transcoded to UTF-8. Input
// without a BOM is returned as is.
func StripBOM(data []byte) ([]byte, error) {
	if !HasBOM(data) {
		return data, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HasBOM reports whether data starts with a UTF-8 or UTF-16 byte order mark.
func HasBOM(data []byte) bool {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return true
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return true
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return true
	}
	return false
}

// Decode returns span bytes as display text. Invalid UTF-8 sequences are
// replaced with U+FFFD; no unescaping is done.
func Decode(span []byte) string {
	return strings.ToValidUTF8(string(span), "�")
}
