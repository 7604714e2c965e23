// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Shortcut (alias) table
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package launcher

import (
	"os"
	"sort"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	"github.com/msto63/mLaunch/foundation/jsontok"
)

// ShortcutSection is the resource section holding shortcuts
const ShortcutSection = "ShortCutList_V2"

// Shortcut is one alias and the command it stands for
type Shortcut struct {
	Name    string `json:"name" yaml:"name"`
	Command string `json:"command" yaml:"command"`
}

// ShortcutTable maps alias names to full commands
type ShortcutTable struct {
	entries map[string]string
}

// NewShortcutTable creates an empty table
func NewShortcutTable() *ShortcutTable {
	return &ShortcutTable{entries: make(map[string]string)}
}

// Load replaces the table contents with the shortcuts of a JSON resource.
// On failure the previous contents are kept.
func (s *ShortcutTable) Load(buf []byte) error {
	entries, err := jsontok.ParseSection(buf, ShortcutSection)
	if err != nil {
		return mdwerror.Wrap(err, "failed to load shortcuts").
			WithOperation("launcher.ShortcutTable.Load")
	}
	s.entries = entries
	return nil
}

// LoadFile reads a shortcut resource file
func (s *ShortcutTable) LoadFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeInternal
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return mdwerror.Wrap(err, "failed to read shortcut file").
			WithCode(code).
			WithOperation("launcher.ShortcutTable.LoadFile").
			WithDetail("path", path)
	}

	if err := s.Load(content); err != nil {
		return mdwerror.Wrap(err, "failed to load shortcut file").
			WithDetail("path", path)
	}
	return nil
}

// Resolve returns the command an alias stands for. Anything that is not an
// alias is returned unchanged.
func (s *ShortcutTable) Resolve(command string) string {
	if full, ok := s.entries[command]; ok {
		return full
	}
	return command
}

// Lookup returns the command of an alias and whether it exists
func (s *ShortcutTable) Lookup(name string) (string, bool) {
	full, ok := s.entries[name]
	return full, ok
}

// Len returns the number of shortcuts
func (s *ShortcutTable) Len() int {
	return len(s.entries)
}

// Entries returns all shortcuts sorted by name
func (s *ShortcutTable) Entries() []Shortcut {
	out := make([]Shortcut, 0, len(s.entries))
	for name, command := range s.entries {
		out = append(out, Shortcut{Name: name, Command: command})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
