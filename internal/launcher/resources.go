// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Resource context and launch pipeline
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package launcher

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/mLaunch/foundation/cmdline"
	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	"github.com/msto63/mLaunch/foundation/core/i18n"
	mdwstringx "github.com/msto63/mLaunch/foundation/utils/stringx"
	"github.com/msto63/mLaunch/pkg/core/logging"
	"github.com/msto63/mLaunch/pkg/core/version"
)

// Built-in translation ids. Built-ins take precedence over resource files.
const (
	KeyVersionText     = "Launcher.VersionText"
	KeyLogoText        = "Launcher.LogoText"
	KeyCommandLineHelp = "Launcher.String.CommandLineHelp"
	KeyLinks           = "Launcher.String.Links"
)

// DefaultShortcutsFile is looked up in the app directory
const DefaultShortcutsFile = "shortcuts.json"

// Exit codes of Run
const (
	ExitSuccess = 0
	ExitFailure = -1
)

var (
	//go:embed resources/translations.json
	defaultTranslations []byte

	//go:embed resources/help.txt
	commandLineHelp string

	//go:embed resources/links.txt
	links string
)

// Options configures NewResources
type Options struct {
	// ExecutablePath defaults to the running executable
	ExecutablePath string
	// ShortcutsFile defaults to shortcuts.json in the app directory
	ShortcutsFile string
	// TranslationsFile replaces the embedded translations when set
	TranslationsFile string
	// Tokenizer defaults to cmdline.New with the launcher's prefixes
	Tokenizer *cmdline.Tokenizer
	// Engine defaults to a PlanEngine without output
	Engine Engine
	Logger *logging.Logger
}

// Resources is the shared launcher state: translations, shortcuts and the
// location of the executable. Reloads replace a table only after it parsed.
type Resources struct {
	mu           sync.RWMutex
	translations *i18n.Table
	shortcuts    *ShortcutTable

	exePath          string
	appDir           string
	shortcutsFile    string
	translationsFile string

	tokenizer *cmdline.Tokenizer
	engine    Engine
	logger    *logging.Logger
}

// Outcome is the result of running one command line
type Outcome struct {
	RequestID string
	Result    cmdline.Result
	// Unresolved is the remainder before shortcut resolution
	Unresolved string
	// Command is the remainder after shortcut resolution
	Command  string
	Request  Request
	Message  Message
	Text     string
	ExitCode int
	Err      error
}

// NewResources loads the translations and the shortcut file. A missing
// shortcut file leaves the shortcut table empty.
func NewResources(opts Options) (*Resources, error) {
	exePath := opts.ExecutablePath
	if exePath == "" {
		p, err := os.Executable()
		if err != nil {
			return nil, mdwerror.Wrap(err, "cannot locate executable").
				WithCode(mdwerror.CodeInternal).
				WithOperation("launcher.NewResources")
		}
		exePath = p
	}
	appDir := filepath.Dir(exePath)

	r := &Resources{
		translations:     i18n.NewTable(),
		shortcuts:        NewShortcutTable(),
		exePath:          exePath,
		appDir:           appDir,
		shortcutsFile:    opts.ShortcutsFile,
		translationsFile: opts.TranslationsFile,
		tokenizer:        opts.Tokenizer,
		engine:           opts.Engine,
		logger:           opts.Logger,
	}
	if r.shortcutsFile == "" {
		r.shortcutsFile = filepath.Join(appDir, DefaultShortcutsFile)
	}
	if r.tokenizer == nil {
		r.tokenizer = cmdline.New(cmdline.DefaultPrefixes(), cmdline.DefaultSeparators())
	}
	if r.engine == nil {
		r.engine = NewPlanEngine(nil)
	}
	if r.logger == nil {
		r.logger = logging.Wrap(nil, "launcher")
	}

	if err := r.ReloadTranslations(); err != nil {
		return nil, err
	}
	if err := r.ReloadShortcuts(); err != nil {
		return nil, err
	}
	return r, nil
}

// ReloadTranslations reloads the translation file, or the embedded
// translations when none is configured
func (r *Resources) ReloadTranslations() error {
	table := i18n.NewTable()

	var err error
	if r.translationsFile == "" {
		err = table.Load(defaultTranslations)
	} else {
		err = table.LoadFile(r.translationsFile)
	}
	if err != nil {
		r.logger.Error("Failed to load translations", "file", r.translationsFile, "error", err)
		return err
	}

	for key, text := range builtins() {
		table.Set(key, text)
	}

	r.mu.Lock()
	r.translations = table
	r.mu.Unlock()

	r.logger.Debug("Translations loaded", "file", r.translationsFile, "entries", table.Len())
	return nil
}

// ReloadShortcuts reloads the shortcut file. A missing file empties the
// table; any other failure keeps the current one.
func (r *Resources) ReloadShortcuts() error {
	table := NewShortcutTable()

	if err := table.LoadFile(r.shortcutsFile); err != nil {
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			r.logger.Error("Failed to load shortcuts", "file", r.shortcutsFile, "error", err)
			return err
		}
		r.logger.Debug("No shortcut file", "file", r.shortcutsFile)
	}

	r.mu.Lock()
	r.shortcuts = table
	r.mu.Unlock()

	r.logger.Debug("Shortcuts loaded", "file", r.shortcutsFile, "entries", table.Len())
	return nil
}

func builtins() map[string]string {
	versionText := "mLaunch Command Launcher " + version.Launcher
	return map[string]string{
		KeyVersionText:     versionText,
		KeyLogoText:        versionText + "\n(c) Mike Stoffels. All rights reserved.\n\n",
		KeyCommandLineHelp: commandLineHelp,
		KeyLinks:           links,
	}
}

// ExecutablePath returns the launcher executable path
func (r *Resources) ExecutablePath() string { return r.exePath }

// AppDir returns the directory of the launcher executable
func (r *Resources) AppDir() string { return r.appDir }

// ShortcutsFile returns the shortcut resource path
func (r *Resources) ShortcutsFile() string { return r.shortcutsFile }

// TranslationsFile returns the external translation resource path, or ""
// when the embedded translations are used
func (r *Resources) TranslationsFile() string { return r.translationsFile }

// Translate returns the text for a translation id, or "" if it is unknown
func (r *Resources) Translate(key string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.translations.T(key)
}

// TranslationKeys returns all translation ids in sorted order
func (r *Resources) TranslationKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.translations.Keys()
}

// Message returns the translated text of m
func (r *Resources) Message(m Message) string {
	return r.Translate(m.TranslationID())
}

// Resolve returns the command a shortcut stands for, or command itself
func (r *Resources) Resolve(command string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shortcuts.Resolve(command)
}

// Shortcuts returns all shortcuts sorted by name
func (r *Resources) Shortcuts() []Shortcut {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.shortcuts.Entries()
}

// Split splits a raw command line with the configured tokenizer
func (r *Resources) Split(raw string) cmdline.Result {
	return r.tokenizer.Split(raw)
}

// AboutText is shown for help and for an empty command line
func (r *Resources) AboutText() string {
	return r.Translate(KeyLogoText) + r.Translate(KeyCommandLineHelp) + r.Translate(KeyLinks)
}

// VersionText is shown for the Version option
func (r *Resources) VersionText() string {
	return r.Translate(KeyLogoText) + r.Translate(KeyVersionText) + "\n" + r.Translate(KeyLinks)
}

// Run splits raw, resolves the shortcut in its remainder, interprets the
// options and launches the request
func (r *Resources) Run(ctx context.Context, raw string) Outcome {
	out := Outcome{RequestID: uuid.NewString()}

	out.Result = r.Split(raw)
	out.Unresolved = out.Result.Remainder
	out.Command = r.Resolve(out.Unresolved)

	resolved := out.Result
	resolved.Remainder = out.Command
	out.Request, out.Message = Interpret(resolved)

	if out.Message == MessageSuccess {
		if out.Request.CurrentDirectory == "" {
			out.Request.CurrentDirectory = r.appDir
		}
		if err := r.engine.Launch(ctx, out.Request); err != nil {
			out.Err = err
			out.Message = MessageCreateProcessFailed
			if mdwerror.HasCode(err, mdwerror.CodePermissionDenied) {
				out.Message = MessagePrivilegeNotHeld
			}
		}
	}

	return r.finish(out)
}

// RunInput runs a line typed into an input prompt. The line holds options
// and a command but no application field; a blank line is rejected with
// MessageInvalidTextBoxParameter.
func (r *Resources) RunInput(ctx context.Context, input string) Outcome {
	if mdwstringx.IsBlank(input) {
		return r.finish(Outcome{
			RequestID: uuid.NewString(),
			Message:   MessageInvalidTextBoxParameter,
		})
	}

	q := r.tokenizer.Quote
	if q == 0 {
		q = cmdline.DefaultQuote
	}
	app := string(q) + filepath.Base(r.exePath) + string(q)
	return r.Run(ctx, app+" "+input)
}

// finish sets the text and exit code for out.Message and logs the outcome
func (r *Resources) finish(out Outcome) Outcome {
	switch out.Message {
	case MessageSuccess:
		out.ExitCode = ExitSuccess
	case MessageShowHelp:
		out.Text = r.AboutText()
		out.ExitCode = ExitSuccess
	case MessageShowVersion:
		out.Text = r.VersionText()
		out.ExitCode = ExitSuccess
	default:
		out.Text = r.Translate(KeyLogoText) + r.Message(out.Message) + "\n\n" + r.Translate(KeyLinks)
		out.ExitCode = ExitFailure
	}

	if out.Err != nil {
		r.logger.Error("Launch failed",
			"request_id", out.RequestID,
			"command", out.Command,
			"message", out.Message.String(),
			"error", out.Err)
	} else {
		r.logger.Info("Command line processed",
			"request_id", out.RequestID,
			"application", out.Result.Application,
			"command", out.Command,
			"message", out.Message.String())
	}

	return out
}
