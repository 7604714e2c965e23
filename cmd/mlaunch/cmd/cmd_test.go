package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/mLaunch/foundation/cmdline"
	"github.com/msto63/mLaunch/internal/launcher"
)

func TestJoinArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"-U:T", "cmd", "/c", "dir"}, `-U:T cmd /c dir`},
		{"spaces", []string{"-CurrentDirectory=C:\\Work Dir", "cmd"}, `"-CurrentDirectory=C:\Work Dir" cmd`},
		{"embedded quote", []string{`say "hi" now`}, `"say \"hi\" now"`},
		{"empty arg", []string{"a", "", "b"}, `a "" b`},
		{"none", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinArgs(tt.args, '"'); got != tt.want {
				t.Errorf("joinArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinArgs_RoundTrip(t *testing.T) {
	args := []string{"-CurrentDirectory=/tmp/my dir", `echo "x y"`, "z"}
	fields := cmdline.Lex(joinArgs(args, '"'), '"')

	got := make([]string, len(fields))
	for i, f := range fields {
		got[i] = f.Value
	}
	if !reflect.DeepEqual(got, args) {
		t.Errorf("Lex(joinArgs()) = %q, want %q", got, args)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"äöüäöüäöü", 5, "äö..."},
		{"abc", 2, ".."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestEntryFromOutcome(t *testing.T) {
	out := launcher.Outcome{
		RequestID: "req-1",
		Result: cmdline.Result{
			Application: "mlaunch",
			Options:     cmdline.Options{"u": "T", "wait": ""},
			Remainder:   "open notepad",
		},
		Unresolved: "open notepad",
		Command:    "notepad.exe",
		Message:    launcher.MessageCreateProcessFailed,
		ExitCode:   launcher.ExitFailure,
	}

	entry := entryFromOutcome(out)
	if entry.RequestID != "req-1" || entry.Application != "mlaunch" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Message != "CreateProcessFailed" || entry.ExitCode != -1 {
		t.Errorf("Message/ExitCode = %s/%d", entry.Message, entry.ExitCode)
	}
	if entry.Command != "notepad.exe" || entry.Unresolved != "open notepad" {
		t.Errorf("Command/Unresolved = %q/%q", entry.Command, entry.Unresolved)
	}
	if !reflect.DeepEqual(entry.Options, map[string]string{"u": "T", "wait": ""}) {
		t.Errorf("Options = %v", entry.Options)
	}

	out.Result.Options["u"] = "C"
	if entry.Options["u"] != "T" {
		t.Error("entry shares the options map with the outcome")
	}
}

func TestWriteStructured(t *testing.T) {
	v := map[string]string{"Message.Success": "ok"}

	var buf bytes.Buffer
	if err := writeStructured(&buf, "json", v); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"Message.Success": "ok"`) {
		t.Errorf("json output = %s", buf.String())
	}

	buf.Reset()
	if err := writeStructured(&buf, "YAML", v); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "Message.Success: ok" {
		t.Errorf("yaml output = %s", buf.String())
	}

	if err := writeStructured(&buf, "xml", v); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Shortcut", "Command"}, [][]string{{"np", "notepad.exe"}})
	for _, want := range []string{"Shortcut", "Command", "np", "notepad.exe"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestCompleteShortcut(t *testing.T) {
	dir := t.TempDir()
	shortcuts := `{"ShortCutList_V2":{"open notepad":"notepad.exe","open explorer":"explorer.exe","calc":"calc.exe"}}`
	if err := os.WriteFile(filepath.Join(dir, launcher.DefaultShortcutsFile), []byte(shortcuts), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	res, err := launcher.NewResources(launcher.Options{ExecutablePath: filepath.Join(dir, "mlaunch")})
	if err != nil {
		t.Fatalf("NewResources() error = %v", err)
	}

	tests := []struct {
		line string
		want []string
	}{
		{"op", []string{"open explorer", "open notepad"}},
		{"-U:C open n", []string{"-U:C open notepad"}},
		{"-Wait C", []string{"-Wait calc"}},
		{"-U:C", nil},
		{"xyz", nil},
	}
	for _, tt := range tests {
		got := completeShortcut(res, tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("completeShortcut(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
