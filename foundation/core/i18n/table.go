// File: table.go
// Title: Translation Table
// Description: Loads the "Translations" section of JSON, TOML or YAML
//              resources into a flat key to text map.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-11-03
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-11-03 v0.2.0: Flat Table loaded from JSON resources via jsontok

package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	"github.com/msto63/mLaunch/foundation/jsontok"
	mdwtextx "github.com/msto63/mLaunch/foundation/utils/textx"
)

// SectionName is the resource section holding translations
const SectionName = "Translations"

// Format represents the resource file format
type Format int

const (
	// FormatJSON represents a JSON resource (default)
	FormatJSON Format = iota

	// FormatTOML represents a TOML resource
	FormatTOML

	// FormatYAML represents a YAML resource
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Table maps text ids to display text
type Table struct {
	entries map[string]string
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

// Load replaces the table contents with the translations of a JSON
// resource. On failure the previous contents are kept.
func (t *Table) Load(buf []byte) error {
	return t.LoadFormat(buf, FormatJSON)
}

// LoadFormat replaces the table contents with the translations of a resource
// in the given format. On failure the previous contents are kept.
func (t *Table) LoadFormat(buf []byte, format Format) error {
	var (
		entries map[string]string
		err     error
	)

	switch format {
	case FormatJSON:
		entries, err = jsontok.ParseSection(buf, SectionName)
	case FormatTOML, FormatYAML:
		entries, err = loadStructured(buf, format)
	default:
		err = mdwerror.Newf("unsupported resource format %d", int(format)).
			WithCode(mdwerror.CodeInvalidInput)
	}
	if err != nil {
		return mdwerror.Wrap(err, "failed to load translations").
			WithOperation("i18n.Load").
			WithDetail("format", format.String())
	}

	t.entries = entries
	return nil
}

// LoadFile reads a resource file, choosing the format by extension
func (t *Table) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInternal
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read translation file").
			WithCode(code).
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}

	if err := t.LoadFormat(content, FormatFromPath(path)); err != nil {
		return mdwerror.Wrap(err, "failed to load translation file").
			WithOperation("i18n.LoadFile").
			WithDetail("path", path)
	}
	return nil
}

// T returns the text for key, or "" if the key is unknown
func (t *Table) T(key string) string {
	return t.entries[key]
}

// Lookup returns the text for key and whether it exists
func (t *Table) Lookup(key string) (string, bool) {
	v, ok := t.entries[key]
	return v, ok
}

// Set adds or replaces one entry
func (t *Table) Set(key, text string) {
	if t.entries == nil {
		t.entries = make(map[string]string)
	}
	t.entries[key] = text
}

// Len returns the number of entries
func (t *Table) Len() int {
	return len(t.entries)
}

// Keys returns all keys in sorted order
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// loadStructured reads the Translations table of a TOML or YAML document
func loadStructured(buf []byte, format Format) (map[string]string, error) {
	data, err := mdwtextx.StripBOM(buf)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot decode byte order mark").
			WithCode(mdwerror.CodeMalformedInput)
	}

	var doc map[string]interface{}
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("invalid %s resource", format)).
			WithCode(mdwerror.CodeMalformedInput)
	}

	entries := make(map[string]string)
	if section, ok := doc[SectionName].(map[string]interface{}); ok {
		flatten("", section, entries)
	}
	return entries, nil
}

// flatten walks nested tables in key order and joins keys with dots.
// Non-string leaves are skipped.
func flatten(prefix string, data map[string]interface{}, out map[string]string) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch v := data[k].(type) {
		case string:
			if _, exists := out[key]; !exists {
				out[key] = mdwtextx.Decode([]byte(v))
			}
		case map[string]interface{}:
			flatten(key, v, out)
		}
	}
}
