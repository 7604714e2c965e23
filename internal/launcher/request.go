// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Launch request and option interpretation
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package launcher

import (
	"strings"

	"github.com/msto63/mLaunch/foundation/cmdline"
	mdwstringx "github.com/msto63/mLaunch/foundation/utils/stringx"
)

// UserMode selects the account the process runs under
type UserMode int

const (
	UserDefault UserMode = iota
	UserTrustedInstaller
	UserSystem
	UserCurrentUser
	UserCurrentProcess
	UserCurrentProcessDropRight
)

var userModeNames = map[UserMode]string{
	UserDefault:                 "Default",
	UserTrustedInstaller:        "TrustedInstaller",
	UserSystem:                  "System",
	UserCurrentUser:             "CurrentUser",
	UserCurrentProcess:          "CurrentProcess",
	UserCurrentProcessDropRight: "CurrentProcessDropRight",
}

func (u UserMode) String() string { return enumName(userModeNames, u) }

// MarshalText implements encoding.TextMarshaler
func (u UserMode) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// Elevated reports whether the mode needs a privileged engine
func (u UserMode) Elevated() bool {
	return u == UserTrustedInstaller || u == UserSystem
}

// PrivilegeMode selects how token privileges are adjusted
type PrivilegeMode int

const (
	PrivilegesDefault PrivilegeMode = iota
	PrivilegesEnableAll
	PrivilegesDisableAll
)

var privilegeModeNames = map[PrivilegeMode]string{
	PrivilegesDefault:    "Default",
	PrivilegesEnableAll:  "EnableAll",
	PrivilegesDisableAll: "DisableAll",
}

func (p PrivilegeMode) String() string { return enumName(privilegeModeNames, p) }

// MarshalText implements encoding.TextMarshaler
func (p PrivilegeMode) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// MandatoryLabel selects the integrity level. LabelUntrusted leaves the
// level unchanged.
type MandatoryLabel int

const (
	LabelUntrusted MandatoryLabel = iota
	LabelSystem
	LabelHigh
	LabelMedium
	LabelLow
)

var mandatoryLabelNames = map[MandatoryLabel]string{
	LabelUntrusted: "Untrusted",
	LabelSystem:    "System",
	LabelHigh:      "High",
	LabelMedium:    "Medium",
	LabelLow:       "Low",
}

func (m MandatoryLabel) String() string { return enumName(mandatoryLabelNames, m) }

// MarshalText implements encoding.TextMarshaler
func (m MandatoryLabel) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// PriorityClass is the scheduling class of the new process
type PriorityClass int

const (
	PriorityNormal PriorityClass = iota
	PriorityIdle
	PriorityBelowNormal
	PriorityAboveNormal
	PriorityHigh
	PriorityRealTime
)

var priorityClassNames = map[PriorityClass]string{
	PriorityNormal:      "Normal",
	PriorityIdle:        "Idle",
	PriorityBelowNormal: "BelowNormal",
	PriorityAboveNormal: "AboveNormal",
	PriorityHigh:        "High",
	PriorityRealTime:    "RealTime",
}

func (p PriorityClass) String() string { return enumName(priorityClassNames, p) }

// MarshalText implements encoding.TextMarshaler
func (p PriorityClass) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// WindowMode is the initial window state of the new process
type WindowMode int

const (
	WindowDefault WindowMode = iota
	WindowShow
	WindowHide
	WindowMaximize
	WindowMinimize
)

var windowModeNames = map[WindowMode]string{
	WindowDefault:  "Default",
	WindowShow:     "Show",
	WindowHide:     "Hide",
	WindowMaximize: "Maximize",
	WindowMinimize: "Minimize",
}

func (w WindowMode) String() string { return enumName(windowModeNames, w) }

// MarshalText implements encoding.TextMarshaler
func (w WindowMode) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func enumName[T comparable](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return "Unknown"
}

// Request describes one process launch
type Request struct {
	User       UserMode       `json:"user" yaml:"user"`
	Privileges PrivilegeMode  `json:"privileges" yaml:"privileges"`
	Label      MandatoryLabel `json:"label" yaml:"label"`
	Priority   PriorityClass  `json:"priority" yaml:"priority"`
	Window     WindowMode     `json:"window" yaml:"window"`
	// Wait blocks until the process exits
	Wait bool `json:"wait" yaml:"wait"`
	// NewConsole is false when the process shares the launcher's console
	NewConsole bool `json:"new_console" yaml:"new_console"`
	// CurrentDirectory is empty until Resources fills in the app directory
	CurrentDirectory string `json:"current_directory" yaml:"current_directory"`
	// Command is the alias-resolved command line
	Command string `json:"command" yaml:"command"`
}

// DefaultRequest returns a request with every option at its default
func DefaultRequest() Request {
	return Request{NewConsole: true}
}

// Interpret maps the split command line to a launch request. The remainder
// of res must already be alias-resolved. Option names and values match
// case-insensitively; options are applied in name order.
func Interpret(res cmdline.Result) (Request, Message) {
	req := DefaultRequest()

	if len(res.Options) == 0 && mdwstringx.IsBlank(res.Remainder) {
		return req, MessageShowHelp
	}

	if len(res.Options) == 1 && mdwstringx.IsBlank(res.Remainder) {
		for name := range res.Options {
			switch name {
			case "?", "h", "help":
				return req, MessageShowHelp
			case "version":
				return req, MessageShowVersion
			}
		}
		return req, MessageInvalidCommandParameter
	}

	for _, name := range res.Options.Names() {
		if !applyOption(&req, name, res.Options[name]) {
			return req, MessageInvalidCommandParameter
		}
	}

	if mdwstringx.IsBlank(res.Remainder) {
		return req, MessageInvalidCommandParameter
	}

	req.Command = res.Remainder
	return req, MessageSuccess
}

// applyOption sets the field named by a lower-cased option. It reports false
// for unknown options and values.
func applyOption(req *Request, name, value string) bool {
	switch name {
	case "u":
		return pick(value, map[string]UserMode{
			"t": UserTrustedInstaller,
			"s": UserSystem,
			"c": UserCurrentUser,
			"p": UserCurrentProcess,
			"d": UserCurrentProcessDropRight,
		}, &req.User)
	case "p":
		return pick(value, map[string]PrivilegeMode{
			"e": PrivilegesEnableAll,
			"d": PrivilegesDisableAll,
		}, &req.Privileges)
	case "m":
		return pick(value, map[string]MandatoryLabel{
			"s": LabelSystem,
			"h": LabelHigh,
			"m": LabelMedium,
			"l": LabelLow,
		}, &req.Label)
	case "wait":
		// the parameter is ignored
		req.Wait = true
		return true
	case "priority":
		return pick(value, map[string]PriorityClass{
			"idle":        PriorityIdle,
			"belownormal": PriorityBelowNormal,
			"normal":      PriorityNormal,
			"abovenormal": PriorityAboveNormal,
			"high":        PriorityHigh,
			"realtime":    PriorityRealTime,
		}, &req.Priority)
	case "currentdirectory":
		req.CurrentDirectory = value
		return true
	case "showwindowmode":
		return pick(value, map[string]WindowMode{
			"show":     WindowShow,
			"hide":     WindowHide,
			"maximize": WindowMaximize,
			"minimize": WindowMinimize,
		}, &req.Window)
	case "usecurrentconsole":
		req.NewConsole = false
		return true
	default:
		return false
	}
}

func pick[T any](value string, choices map[string]T, dst *T) bool {
	v, ok := choices[strings.ToLower(value)]
	if ok {
		*dst = v
	}
	return ok
}
