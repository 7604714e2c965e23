// File: options.go
// Title: Option Map
// Description: Case-insensitive view over the parsed option map.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03

package cmdline

import (
	"sort"
	"strings"
)

// Options maps lower-cased option names to their parameters. An option given
// without a parameter maps to "".
type Options map[string]string

// Get returns the parameter of the named option
func (o Options) Get(name string) (string, bool) {
	v, ok := o[strings.ToLower(name)]
	return v, ok
}

// Has reports whether the named option was given
func (o Options) Has(name string) bool {
	_, ok := o[strings.ToLower(name)]
	return ok
}

// Names returns the option names in sorted order
func (o Options) Names() []string {
	names := make([]string, 0, len(o))
	for name := range o {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
