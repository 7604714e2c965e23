// File: stream.go
// Title: Token Stream Accessors
// Description: Read-only access to a parsed token stream by index.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package jsontok

import "bytes"

// Stream is the result of Parse: the flat token slice plus the source buffer
// the spans point into.
type Stream struct {
	src    []byte
	tokens []Token
}

// Len returns the number of tokens
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Token returns the token at index i. It panics if i is out of range.
func (s *Stream) Token(i int) Token {
	return s.tokens[i]
}

// Tokens returns the token slice. Callers must not modify it.
func (s *Stream) Tokens() []Token {
	return s.tokens
}

// Source returns the buffer the token spans refer to
func (s *Stream) Source() []byte {
	return s.src
}

// Bytes returns the source bytes covered by token i
func (s *Stream) Bytes(i int) []byte {
	t := s.tokens[i]
	return s.src[t.Start:t.End]
}

// Text returns the raw source text of token i. String escapes are not decoded.
func (s *Stream) Text(i int) string {
	return string(s.Bytes(i))
}

// SpanText returns the raw source text covered by span
func (s *Stream) SpanText(span Span) string {
	return string(s.src[span.Start:span.End])
}

// Equals reports whether token i is a String whose span equals literal byte
// for byte. Non-string tokens never compare equal, not even to "". Indexes
// out of range compare unequal.
func (s *Stream) Equals(i int, literal string) bool {
	if i < 0 || i >= len(s.tokens) {
		return false
	}
	t := s.tokens[i]
	if t.Kind != KindString || t.Len() != len(literal) {
		return false
	}
	return bytes.Equal(s.src[t.Start:t.End], []byte(literal))
}

// Skip returns the index of the first token after token i's subtree. For a
// leaf that is i+1; for a container it is the first token that starts at or
// beyond the container's end offset.
func (s *Stream) Skip(i int) int {
	end := s.tokens[i].End
	j := i + 1
	for j < len(s.tokens) && s.tokens[j].Start < end {
		j++
	}
	return j
}

// Depths returns the nesting depth of every token; top-level tokens have
// depth 0.
func (s *Stream) Depths() []int {
	depths := make([]int, len(s.tokens))
	var open []int // end offsets of enclosing containers

	for i, t := range s.tokens {
		for len(open) > 0 && t.Start >= open[len(open)-1] {
			open = open[:len(open)-1]
		}
		depths[i] = len(open)
		if t.Kind.IsContainer() {
			open = append(open, t.End)
		}
	}
	return depths
}
