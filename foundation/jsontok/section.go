// File: section.go
// Title: Section and Object Extraction
// Description: Locates named sections (a string followed by an object or
//              array) and yields the direct key/value pairs of an object.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package jsontok

import "iter"

// Pair is one member of an object whose key and value are both strings
type Pair struct {
	Key   Span
	Value Span
}

// FindSection returns the index of the first Object or Array token that
// directly follows a String token equal to name. A matching string followed
// by anything else is an ordinary value and is passed over.
func (s *Stream) FindSection(name string) (int, bool) {
	for index := range s.Sections(name) {
		return index, true
	}
	return 0, false
}

// Sections yields the index of every section called name in document order.
// After a section is yielded the scan continues past its whole subtree, so
// nested content of a found section is never scanned again.
func (s *Stream) Sections(name string) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i+1 < len(s.tokens); i++ {
			if !s.Equals(i, name) || !s.tokens[i+1].Kind.IsContainer() {
				continue
			}
			if !yield(i + 1) {
				return
			}
			i = s.Skip(i+1) - 1
		}
	}
}

// ExtractPairs returns the direct members of the object at index obj whose
// key and value are both strings, in document order. Members with non-string
// values are skipped along with their whole subtree. Anything other than an
// Object yields nil.
func (s *Stream) ExtractPairs(obj int) []Pair {
	if obj < 0 || obj >= len(s.tokens) || s.tokens[obj].Kind != KindObject {
		return nil
	}

	members := s.tokens[obj].Size / 2
	pairs := make([]Pair, 0, members)

	j := obj + 1
	for m := 0; m < members && j+1 < len(s.tokens); m++ {
		key, value := s.tokens[j], s.tokens[j+1]
		if key.Kind == KindString && value.Kind == KindString {
			pairs = append(pairs, Pair{Key: key.Span, Value: value.Span})
		}
		j = s.Skip(j + 1)
	}

	return pairs
}

// PairText returns the raw key and value text of p
func (s *Stream) PairText(p Pair) (string, string) {
	return s.SpanText(p.Key), s.SpanText(p.Value)
}
