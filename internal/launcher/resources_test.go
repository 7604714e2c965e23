package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

// failingEngine returns err for every launch
type failingEngine struct{ err error }

func (e failingEngine) Launch(context.Context, Request) error { return e.err }

func newTestResources(t *testing.T, shortcuts string, engine Engine) *Resources {
	t.Helper()
	dir := t.TempDir()
	if shortcuts != "" {
		if err := os.WriteFile(filepath.Join(dir, DefaultShortcutsFile), []byte(shortcuts), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	res, err := NewResources(Options{
		ExecutablePath: filepath.Join(dir, "mlaunch"),
		Engine:         engine,
	})
	if err != nil {
		t.Fatalf("NewResources() error = %v", err)
	}
	return res
}

func TestNewResources_Defaults(t *testing.T) {
	res := newTestResources(t, "", nil)

	if res.ShortcutsFile() != filepath.Join(res.AppDir(), DefaultShortcutsFile) {
		t.Errorf("ShortcutsFile() = %q", res.ShortcutsFile())
	}
	if len(res.Shortcuts()) != 0 {
		t.Errorf("Shortcuts() = %v, want empty", res.Shortcuts())
	}
	if got := res.Message(MessageInvalidCommandParameter); got == "" {
		t.Error("embedded translation for InvalidCommandParameter is missing")
	}
	if got := res.Translate(KeyVersionText); !strings.Contains(got, "mLaunch") {
		t.Errorf("Translate(%s) = %q", KeyVersionText, got)
	}
	if got := res.Translate("Missing.Key"); got != "" {
		t.Errorf("Translate(Missing.Key) = %q, want empty", got)
	}
}

func TestResources_Run(t *testing.T) {
	engine := NewPlanEngine(nil)
	res := newTestResources(t, `{"ShortCutList_V2":{"open notepad":"notepad.exe"}}`, engine)

	tests := []struct {
		name       string
		raw        string
		message    Message
		exitCode   int
		command    string
		textPrefix string
	}{
		{"empty line shows help", "mlaunch", MessageShowHelp, ExitSuccess, "", "mLaunch"},
		{"help", "mlaunch -?", MessageShowHelp, ExitSuccess, "", "mLaunch"},
		{"version", "mlaunch -Version", MessageShowVersion, ExitSuccess, "", "mLaunch"},
		{"invalid", "mlaunch -U:Z cmd", MessageInvalidCommandParameter, ExitFailure, "cmd", "mLaunch"},
		{"shortcut resolved", "mlaunch -U:C open notepad", MessageSuccess, ExitSuccess, "notepad.exe", ""},
		{"plain command", "mlaunch -U:C cmd /c dir", MessageSuccess, ExitSuccess, "cmd /c dir", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := res.Run(context.Background(), tt.raw)

			if out.Message != tt.message {
				t.Errorf("Message = %v, want %v", out.Message, tt.message)
			}
			if out.ExitCode != tt.exitCode {
				t.Errorf("ExitCode = %d, want %d", out.ExitCode, tt.exitCode)
			}
			if out.Command != tt.command {
				t.Errorf("Command = %q, want %q", out.Command, tt.command)
			}
			if !strings.HasPrefix(out.Text, tt.textPrefix) {
				t.Errorf("Text = %q, want prefix %q", out.Text, tt.textPrefix)
			}
			if out.RequestID == "" {
				t.Error("RequestID is empty")
			}
		})
	}

	launched := engine.Requests()
	if len(launched) != 2 {
		t.Fatalf("launched %d requests, want 2", len(launched))
	}
	if launched[0].Command != "notepad.exe" || launched[0].CurrentDirectory != res.AppDir() {
		t.Errorf("first launch = %+v", launched[0])
	}
}

func TestResources_RunTexts(t *testing.T) {
	res := newTestResources(t, "", nil)

	help := res.Run(context.Background(), "mlaunch")
	if !strings.Contains(help.Text, "-UseCurrentConsole") || !strings.Contains(help.Text, "github.com") {
		t.Errorf("help text incomplete:\n%s", help.Text)
	}

	invalid := res.Run(context.Background(), "mlaunch -Bogus cmd")
	if !strings.Contains(invalid.Text, res.Message(MessageInvalidCommandParameter)) {
		t.Errorf("error text = %q", invalid.Text)
	}
}

func TestResources_RunLaunchFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Message
	}{
		{
			name: "permission",
			err:  mdwerror.New("denied").WithCode(mdwerror.CodePermissionDenied),
			want: MessagePrivilegeNotHeld,
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: MessageCreateProcessFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newTestResources(t, "", failingEngine{err: tt.err})
			out := res.Run(context.Background(), "mlaunch -U:T cmd")

			if out.Message != tt.want {
				t.Errorf("Message = %v, want %v", out.Message, tt.want)
			}
			if out.ExitCode != ExitFailure {
				t.Errorf("ExitCode = %d, want %d", out.ExitCode, ExitFailure)
			}
			if out.Err == nil {
				t.Error("Err is nil")
			}
		})
	}
}

func TestResources_ReloadShortcuts(t *testing.T) {
	res := newTestResources(t, `{"ShortCutList_V2":{"a":"first"}}`, nil)
	path := res.ShortcutsFile()

	if err := os.WriteFile(path, []byte(`{"ShortCutList_V2":{"a":"second"}}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := res.ReloadShortcuts(); err != nil {
		t.Fatalf("ReloadShortcuts() error = %v", err)
	}
	if got := res.Resolve("a"); got != "second" {
		t.Errorf("Resolve(a) = %q, want second", got)
	}

	if err := os.WriteFile(path, []byte(`{"ShortCutList_V2":`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := res.ReloadShortcuts(); err == nil {
		t.Error("ReloadShortcuts() accepted a truncated file")
	}
	if got := res.Resolve("a"); got != "second" {
		t.Errorf("Resolve(a) = %q after failed reload, want second", got)
	}

	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if err := res.ReloadShortcuts(); err != nil {
		t.Fatalf("ReloadShortcuts() error = %v for a missing file", err)
	}
	if got := res.Resolve("a"); got != "a" {
		t.Errorf("Resolve(a) = %q after removal, want a", got)
	}
}

func TestResources_TranslationsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "translations.yaml")
	content := `
Translations:
  Message:
    InvalidCommandParameter: Ungueltiger Parameter
  Launcher:
    VersionText: overridden
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	res, err := NewResources(Options{
		ExecutablePath:   filepath.Join(dir, "mlaunch"),
		TranslationsFile: path,
	})
	if err != nil {
		t.Fatalf("NewResources() error = %v", err)
	}

	if got := res.Message(MessageInvalidCommandParameter); got != "Ungueltiger Parameter" {
		t.Errorf("Message() = %q", got)
	}
	if got := res.Translate(KeyVersionText); got == "overridden" {
		t.Error("resource file overrode a built-in translation")
	}

	_, err = NewResources(Options{
		ExecutablePath:   filepath.Join(dir, "mlaunch"),
		TranslationsFile: filepath.Join(dir, "missing.json"),
	})
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("missing translations: error = %v, want NOT_FOUND", err)
	}
}

func TestResources_RunInput(t *testing.T) {
	engine := NewPlanEngine(nil)
	res := newTestResources(t, `{"ShortCutList_V2":{"open notepad":"notepad.exe"}}`, engine)

	out := res.RunInput(context.Background(), "-U:C open notepad")
	if out.Message != MessageSuccess || out.Command != "notepad.exe" {
		t.Errorf("RunInput() = %v/%q", out.Message, out.Command)
	}
	if out.Result.Application != "mlaunch" {
		t.Errorf("Application = %q, want mlaunch", out.Result.Application)
	}

	for _, input := range []string{"", "  \t"} {
		out := res.RunInput(context.Background(), input)
		if out.Message != MessageInvalidTextBoxParameter || out.ExitCode != ExitFailure {
			t.Errorf("RunInput(%q) = %v/%d", input, out.Message, out.ExitCode)
		}
		if !strings.Contains(out.Text, res.Message(MessageInvalidTextBoxParameter)) {
			t.Errorf("RunInput(%q) text = %q", input, out.Text)
		}
	}

	if n := len(engine.Requests()); n != 1 {
		t.Errorf("launched %d requests, want 1", n)
	}
}

func TestResources_RunAbsolutePathCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("\"/\" is an option prefix on Windows")
	}
	engine := NewPlanEngine(nil)
	res := newTestResources(t, "", engine)

	out := res.Run(context.Background(), "mlaunch -Wait /bin/true")
	if out.Message != MessageSuccess || out.Command != "/bin/true" {
		t.Errorf("Run() = %v/%q, want Success with /bin/true", out.Message, out.Command)
	}
	if launched := engine.Requests(); len(launched) != 1 || !launched[0].Wait {
		t.Errorf("launched = %+v", launched)
	}
}
