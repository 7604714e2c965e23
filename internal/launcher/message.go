// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Launcher result messages
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package launcher

import "strings"

// Message is the result of interpreting and launching one command line
type Message int

const (
	MessageSuccess Message = iota
	MessagePrivilegeNotHeld
	MessageInvalidCommandParameter
	MessageInvalidTextBoxParameter
	MessageCreateProcessFailed
	MessageShowHelp
	MessageShowVersion
)

var messageNames = map[Message]string{
	MessageSuccess:                 "Success",
	MessagePrivilegeNotHeld:        "PrivilegeNotHeld",
	MessageInvalidCommandParameter: "InvalidCommandParameter",
	MessageInvalidTextBoxParameter: "InvalidTextBoxParameter",
	MessageCreateProcessFailed:     "CreateProcessFailed",
	MessageShowHelp:                "ShowHelp",
	MessageShowVersion:             "ShowVersion",
}

func (m Message) String() string { return enumName(messageNames, m) }

// MarshalText implements encoding.TextMarshaler
func (m Message) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// TranslationID returns the translation key of the message text. Help and
// version have no message text and return "".
func (m Message) TranslationID() string {
	switch m {
	case MessageShowHelp, MessageShowVersion:
		return ""
	}
	if name, ok := messageNames[m]; ok {
		return "Message." + name
	}
	return ""
}

// IsError reports whether the message ends the launcher with a failure code
func (m Message) IsError() bool {
	switch m {
	case MessageSuccess, MessageShowHelp, MessageShowVersion:
		return false
	default:
		return true
	}
}

// ParseMessage returns the message with the given name, ignoring case
func ParseMessage(name string) (Message, bool) {
	for m, n := range messageNames {
		if strings.EqualFold(n, name) {
			return m, true
		}
	}
	return 0, false
}
