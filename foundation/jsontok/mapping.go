// File: mapping.go
// Title: Section Mapping Builder
// Description: Builds a string map from the string pairs of a named section.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package jsontok

import (
	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	mdwtextx "github.com/msto63/mLaunch/foundation/utils/textx"
)

// SectionMap collects the string pairs of every Object section called name,
// in document order. Keys are taken as-is; values are decoded to valid UTF-8
// text. The first occurrence of a key wins. Array sections are passed over
// and a missing section yields an empty map.
func (s *Stream) SectionMap(name string) map[string]string {
	out := make(map[string]string)

	for index := range s.Sections(name) {
		if s.tokens[index].Kind != KindObject {
			continue
		}
		for _, p := range s.ExtractPairs(index) {
			key := s.SpanText(p.Key)
			if _, exists := out[key]; exists {
				continue
			}
			out[key] = mdwtextx.Decode(s.src[p.Value.Start:p.Value.End])
		}
	}

	return out
}

// ParseSection strips a leading byte order mark from buf, parses it and
// returns the pairs of the named section. On a parse failure the map is nil.
func ParseSection(buf []byte, name string) (map[string]string, error) {
	data, err := mdwtextx.StripBOM(buf)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot decode byte order mark").
			WithCode(mdwerror.CodeMalformedInput).
			WithOperation("jsontok.ParseSection")
	}

	stream, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return stream.SectionMap(name), nil
}
