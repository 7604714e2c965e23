// File: tokenizer.go
// Title: Command-Line Tokenizer
// Description: Separates the application field, the leading option fields and
//              the raw command remainder of a launcher command line.
// Author: msto63
// Version: v0.1.1
// Created: 2025-11-03
// Modified: 2025-12-15
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation
// - 2025-12-15 v0.1.1: Platform dependent default prefixes

package cmdline

import (
	"runtime"
	"strings"

	mdwstringx "github.com/msto63/mLaunch/foundation/utils/stringx"
)

// Result is the structural split of one command line
type Result struct {
	// Application is the first field with quotes removed
	Application string
	// ApplicationToken is the source text of the first field
	ApplicationToken string
	// Options holds every option found, keyed by lower-cased name
	Options Options
	// OptionTokens is the source text of each option field, and of each
	// consumed parameter field, in order
	OptionTokens []string
	// Remainder is the source text from the first non-option field to the
	// end, trailing whitespace removed
	Remainder string
}

// Rebuild joins the parts of r back into a command line
func (r Result) Rebuild() string {
	parts := make([]string, 0, len(r.OptionTokens)+2)
	parts = append(parts, r.ApplicationToken)
	parts = append(parts, r.OptionTokens...)
	if r.Remainder != "" {
		parts = append(parts, r.Remainder)
	}
	return strings.Join(parts, " ")
}

// DefaultPrefixes returns the option prefixes for the running platform,
// longest first. "/" marks an option only on Windows; elsewhere it starts
// an absolute path.
func DefaultPrefixes() []string {
	if runtime.GOOS == "windows" {
		return []string{"--", "-", "/"}
	}
	return []string{"--", "-"}
}

// DefaultSeparators returns the option name/parameter separators
func DefaultSeparators() []string {
	return []string{"=", ":"}
}

// Tokenizer holds the split configuration. The zero value recognizes no
// options; use New for a ready configuration.
type Tokenizer struct {
	// Prefixes mark the start of an option field, tried in order
	Prefixes []string
	// Separators join an option name to an inline parameter, tried in order
	Separators []string
	// Quote delimits fields containing whitespace
	Quote byte
	// ParamOptions names the options that take the following field as their
	// parameter when no inline parameter is given. Matched case-insensitively.
	ParamOptions []string
}

// New creates a tokenizer with the default quote character
func New(prefixes, separators []string) *Tokenizer {
	return &Tokenizer{
		Prefixes:   prefixes,
		Separators: separators,
		Quote:      DefaultQuote,
	}
}

// Split is a convenience for New(prefixes, separators).Split(raw)
func Split(raw string, prefixes, separators []string) Result {
	return New(prefixes, separators).Split(raw)
}

// Split breaks raw into application, options and remainder
func (t *Tokenizer) Split(raw string) Result {
	res := Result{Options: make(Options)}

	quote := t.Quote
	if quote == 0 {
		quote = DefaultQuote
	}

	fields := Lex(raw, quote)
	if len(fields) == 0 {
		return res
	}

	res.Application = fields[0].Value
	res.ApplicationToken = fields[0].Raw(raw)

	i := 1
	for i < len(fields) {
		name, param, ok := t.option(fields[i].Value)
		if !ok {
			break
		}
		res.OptionTokens = append(res.OptionTokens, fields[i].Raw(raw))
		i++

		if !param.inline && i < len(fields) && mdwstringx.EqualFoldAny(name, t.ParamOptions...) {
			if _, _, next := t.option(fields[i].Value); !next {
				param.value = fields[i].Value
				res.OptionTokens = append(res.OptionTokens, fields[i].Raw(raw))
				i++
			}
		}

		res.Options[strings.ToLower(name)] = param.value
	}

	if i < len(fields) {
		res.Remainder = strings.TrimRight(raw[fields[i].Start:], " \t\r\n\v\f")
	}

	return res
}

type parameter struct {
	value  string
	inline bool
}

// option reports whether field is an option field and splits it into name
// and inline parameter
func (t *Tokenizer) option(field string) (string, parameter, bool) {
	for _, prefix := range t.Prefixes {
		if prefix == field {
			// a bare marker is never an option
			return "", parameter{}, false
		}
	}

	for _, prefix := range t.Prefixes {
		if prefix == "" || !strings.HasPrefix(field, prefix) {
			continue
		}
		rest := field[len(prefix):]

		for _, sep := range t.Separators {
			if sep == "" {
				continue
			}
			if idx := strings.Index(rest, sep); idx >= 0 {
				return rest[:idx], parameter{value: rest[idx+len(sep):], inline: true}, true
			}
		}
		return rest, parameter{}, true
	}

	return "", parameter{}, false
}
