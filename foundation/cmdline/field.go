// File: field.go
// Title: Quote-Aware Field Lexer
// Description: Breaks a command line into whitespace separated fields while
//              keeping the byte offsets of each field in the source.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package cmdline

import "strings"

// DefaultQuote delimits fields that contain whitespace
const DefaultQuote = '"'

// Field is one lexical field of a command line
type Field struct {
	Value string // text with quote characters removed
	Start int    // byte offset of the first source byte, quotes included
	End   int    // byte offset just past the last source byte
}

// Raw returns the source text the field was read from
func (f Field) Raw(src string) string {
	return src[f.Start:f.End]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

// Lex splits raw into fields. Whitespace inside a quoted span does not end a
// field. Quote characters are dropped from Value, and a backslash directly
// before a quote yields a literal quote. An unterminated quote runs to the
// end of the input.
func Lex(raw string, quote byte) []Field {
	var fields []Field
	var value strings.Builder

	pos := 0
	for pos < len(raw) {
		for pos < len(raw) && isSpace(raw[pos]) {
			pos++
		}
		if pos >= len(raw) {
			break
		}

		start := pos
		quoted := false
		value.Reset()

		for pos < len(raw) {
			c := raw[pos]
			if !quoted && isSpace(c) {
				break
			}
			switch {
			case c == '\\' && pos+1 < len(raw) && raw[pos+1] == quote:
				value.WriteByte(quote)
				pos += 2
				continue
			case c == quote:
				quoted = !quoted
			default:
				value.WriteByte(c)
			}
			pos++
		}

		fields = append(fields, Field{Value: value.String(), Start: start, End: pos})
	}

	return fields
}
