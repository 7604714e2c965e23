// File: token.go
// Title: JSON Token Types
// Description: Token kinds, spans and the flat token record.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package jsontok

import "fmt"

// Kind is the type of a token
type Kind uint8

const (
	KindUndefined Kind = iota
	KindObject
	KindArray
	KindString
	KindPrimitive // number, true, false or null
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "OBJECT"
	case KindArray:
		return "ARRAY"
	case KindString:
		return "STRING"
	case KindPrimitive:
		return "PRIMITIVE"
	default:
		return "UNDEFINED"
	}
}

// IsContainer reports whether tokens of this kind have children
func (k Kind) IsContainer() bool {
	return k == KindObject || k == KindArray
}

// Span is a half-open byte range [Start, End) of the source buffer.
// String spans exclude the surrounding quotes.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span
func (s Span) Len() int {
	return s.End - s.Start
}

// Token is one entry of the flat token stream
type Token struct {
	Kind Kind
	Span
	Size int // immediate children; keys and values both count for objects
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("%s[%d:%d] size=%d", t.Kind, t.Start, t.End, t.Size)
}
