// File: parser.go
// Title: JSON Token Stream Reader
// Description: Two-pass tokenizer. The first pass validates the structure and
//              counts tokens, the second pass fills an exactly sized slice.
//              Both passes share one state machine; the counting pass simply
//              has no slice to write to.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02

package jsontok

import (
	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

// container states
type state uint8

const (
	stateObjectKeyOrClose state = iota // after '{'
	stateObjectKey                     // after ',' in an object
	stateObjectColon                   // after a key
	stateObjectValue                   // after ':'
	stateObjectCommaOrClose            // after a member value
	stateArrayValueOrClose             // after '['
	stateArrayValue                    // after ',' in an array
	stateArrayCommaOrClose             // after an element
)

type frame struct {
	index int // token index of the container
	kind  Kind
	state state
}

type parser struct {
	src    []byte
	pos    int
	tokens []Token // nil during the counting pass
	count  int
	stack  []frame
}

// Parse tokenizes buf. On failure no tokens are returned and the error carries
// mdwerror.CodeMalformedInput with the failing byte offset as detail "offset".
// Empty or whitespace-only input yields an empty Stream.
func Parse(buf []byte) (*Stream, error) {
	n, err := Count(buf)
	if err != nil {
		return nil, err
	}

	p := &parser{src: buf, tokens: make([]Token, 0, n)}
	if err := p.run(); err != nil {
		return nil, err
	}

	return &Stream{src: buf, tokens: p.tokens}, nil
}

// Count validates buf and returns the number of tokens Parse would produce.
func Count(buf []byte) (int, error) {
	p := &parser{src: buf}
	if err := p.run(); err != nil {
		return 0, err
	}
	return p.count, nil
}

// IsMalformed reports whether err is a structural parse failure
func IsMalformed(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeMalformedInput)
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]

		switch c {
		case ' ', '\t', '\r', '\n':
			p.pos++

		case '{', '[':
			kind := KindObject
			st := stateObjectKeyOrClose
			if c == '[' {
				kind = KindArray
				st = stateArrayValueOrClose
			}
			if err := p.beginValue(kind); err != nil {
				return err
			}
			index := p.alloc(kind, p.pos, -1)
			p.stack = append(p.stack, frame{index: index, kind: kind, state: st})
			p.pos++

		case '}', ']':
			if err := p.close(c); err != nil {
				return err
			}
			p.pos++

		case '"':
			if err := p.parseString(); err != nil {
				return err
			}

		case ':':
			top := p.top()
			if top == nil || top.state != stateObjectColon {
				return p.fail("unexpected ':'")
			}
			top.state = stateObjectValue
			p.pos++

		case ',':
			top := p.top()
			switch {
			case top == nil:
				return p.fail("unexpected ',' at top level")
			case top.state == stateObjectCommaOrClose:
				top.state = stateObjectKey
			case top.state == stateArrayCommaOrClose:
				top.state = stateArrayValue
			default:
				return p.fail("unexpected ','")
			}
			p.pos++

		default:
			if err := p.parsePrimitive(); err != nil {
				return err
			}
		}
	}

	if len(p.stack) > 0 {
		return p.fail("unexpected end of input: unclosed " + p.top().kind.String())
	}
	return nil
}

func (p *parser) top() *frame {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

// beginValue checks that a value of the given kind may start here and
// advances the enclosing container. Strings in key position are handled by
// parseString and never reach this point.
func (p *parser) beginValue(kind Kind) error {
	top := p.top()
	if top == nil {
		return nil
	}

	switch top.state {
	case stateObjectValue:
		top.state = stateObjectCommaOrClose
	case stateArrayValueOrClose, stateArrayValue:
		top.state = stateArrayCommaOrClose
	case stateObjectKeyOrClose, stateObjectKey:
		return p.fail("object key must be a string, got " + kind.String())
	case stateObjectColon:
		return p.fail("expected ':' after object key")
	default:
		return p.fail("expected ',' or closing bracket")
	}
	return nil
}

// alloc records a token and bumps the parent's child count. end < 0 leaves
// the end open for containers.
func (p *parser) alloc(kind Kind, start, end int) int {
	index := p.count
	p.count++

	if p.tokens == nil {
		return index
	}

	p.tokens = append(p.tokens, Token{Kind: kind, Span: Span{Start: start, End: end}})
	if len(p.stack) > 0 {
		p.tokens[p.top().index].Size++
	}
	return index
}

func (p *parser) close(c byte) error {
	top := p.top()
	if top == nil {
		return p.fail("unexpected '" + string(c) + "'")
	}

	switch {
	case c == '}' && top.kind != KindObject, c == ']' && top.kind != KindArray:
		return p.fail("mismatched '" + string(c) + "' closing " + top.kind.String())
	case top.state == stateObjectKey || top.state == stateArrayValue:
		return p.fail("trailing ',' before '" + string(c) + "'")
	case top.state == stateObjectColon || top.state == stateObjectValue:
		return p.fail("object member without value")
	}

	if p.tokens != nil {
		p.tokens[top.index].End = p.pos + 1
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

func (p *parser) parseString() error {
	start := p.pos

	isKey := false
	if top := p.top(); top != nil && (top.state == stateObjectKeyOrClose || top.state == stateObjectKey) {
		isKey = true
	} else if err := p.beginValue(KindString); err != nil {
		return err
	}

	p.pos++
	for p.pos < len(p.src) {
		c := p.src[p.pos]

		if c == '"' {
			p.alloc(KindString, start+1, p.pos)
			if isKey {
				p.top().state = stateObjectColon
			}
			p.pos++
			return nil
		}

		if c == '\\' {
			if p.pos+1 >= len(p.src) {
				break
			}
			p.pos++
			switch p.src[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
			case 'u':
				for i := 0; i < 4; i++ {
					p.pos++
					if p.pos >= len(p.src) {
						return p.failAt(start, "unterminated string")
					}
					if !isHex(p.src[p.pos]) {
						return p.fail("invalid \\u escape")
					}
				}
			default:
				return p.fail("invalid escape character")
			}
		}
		p.pos++
	}

	return p.failAt(start, "unterminated string")
}

func (p *parser) parsePrimitive() error {
	start := p.pos
	switch c := p.src[p.pos]; {
	case c == '-', c >= '0' && c <= '9', c == 't', c == 'f', c == 'n':
	default:
		return p.fail("unexpected character")
	}

	if err := p.beginValue(KindPrimitive); err != nil {
		return err
	}

	for ; p.pos < len(p.src); p.pos++ {
		c := p.src[p.pos]
		switch c {
		case ' ', '\t', '\r', '\n', ',', ']', '}', ':':
			p.alloc(KindPrimitive, start, p.pos)
			return nil
		case '"', '{', '[':
			return p.fail("unexpected character in primitive")
		}
		if c < 0x20 || c >= 0x7f {
			return p.fail("invalid byte in primitive")
		}
	}

	// a primitive may end the input only at top level
	if len(p.stack) > 0 {
		return p.failAt(start, "unexpected end of input in primitive")
	}
	p.alloc(KindPrimitive, start, p.pos)
	return nil
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func (p *parser) fail(message string) error {
	return p.failAt(p.pos, message)
}

func (p *parser) failAt(offset int, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeMalformedInput).
		WithOperation("jsontok.Parse").
		WithDetail("offset", offset)
}
