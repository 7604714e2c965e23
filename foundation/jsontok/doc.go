// File: doc.go
// Title: JSON Token Stream Package Documentation
// Description: Flat, non-recursive JSON token reader and section extractor.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

/*
Package jsontok turns a JSON document into a flat, pre-order slice of typed
tokens and extracts named sections from it without building a tree.

Every token records its kind, the byte span it covers in the source buffer and
the number of immediate children. Strings and primitives are recorded by span
only; nothing is unescaped or converted. An object counts its keys and its
values as children, so an object with N members has Size 2*N.

	stream, err := jsontok.Parse(data)
	if err != nil {
		// jsontok.IsMalformed(err) reports unbalanced or truncated input
	}

	if obj, ok := stream.FindSection("Translations"); ok {
		for _, pair := range stream.ExtractPairs(obj) {
			key, value := stream.PairText(pair)
			...
		}
	}

All structure is addressed by token index. Skip returns the index just past a
token's subtree, computed from span nesting, so a single linear scan can step
over arbitrarily deep sections without recursion.

The Stream keeps a reference to the source buffer; the buffer must not be
modified while the Stream is in use. A Stream is read-only after Parse and may
be shared between goroutines.
*/
package jsontok
