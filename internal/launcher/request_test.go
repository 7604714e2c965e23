package launcher

import (
	"encoding/json"
	"testing"

	"github.com/msto63/mLaunch/foundation/cmdline"
)

func split(raw string) cmdline.Result {
	return cmdline.Split(raw, []string{"--", "-", "/"}, []string{"=", ":"})
}

func TestInterpret_Messages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Message
	}{
		{"empty line", "mlaunch", MessageShowHelp},
		{"question mark", "mlaunch /?", MessageShowHelp},
		{"short help", "mlaunch -H", MessageShowHelp},
		{"long help", "mlaunch --help", MessageShowHelp},
		{"version", "mlaunch -Version", MessageShowVersion},
		{"version any case", "mlaunch /VERSION", MessageShowVersion},
		{"single unknown option", "mlaunch -U:T", MessageInvalidCommandParameter},
		{"options without command", "mlaunch -U:T -Wait", MessageInvalidCommandParameter},
		{"unknown option", "mlaunch -X cmd", MessageInvalidCommandParameter},
		{"unknown user", "mlaunch -U:Q cmd", MessageInvalidCommandParameter},
		{"unknown priority", "mlaunch -Priority:Fast cmd", MessageInvalidCommandParameter},
		{"command only", "mlaunch cmd", MessageSuccess},
		{"full request", "mlaunch -U:T -P:E cmd /c dir", MessageSuccess},
		{"help with command", "mlaunch -? cmd", MessageInvalidCommandParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Interpret(split(tt.raw))
			if got != tt.want {
				t.Errorf("Interpret(%q) message = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInterpret_Request(t *testing.T) {
	raw := `mlaunch -U:S -P:D -M:L -Priority=AboveNormal -ShowWindowMode:hide -Wait:ignored ` +
		`-UseCurrentConsole "-CurrentDirectory=C:\Work Dir" cmd /c "echo hi"`

	req, msg := Interpret(split(raw))
	if msg != MessageSuccess {
		t.Fatalf("message = %v, want Success", msg)
	}

	want := Request{
		User:             UserSystem,
		Privileges:       PrivilegesDisableAll,
		Label:            LabelLow,
		Priority:         PriorityAboveNormal,
		Window:           WindowHide,
		Wait:             true,
		NewConsole:       false,
		CurrentDirectory: `C:\Work Dir`,
		Command:          `cmd /c "echo hi"`,
	}
	if req != want {
		t.Errorf("request = %+v\nwant      %+v", req, want)
	}
}

func TestInterpret_Defaults(t *testing.T) {
	req, msg := Interpret(split("mlaunch notepad.exe"))
	if msg != MessageSuccess {
		t.Fatalf("message = %v", msg)
	}
	if req.User != UserDefault || req.Label != LabelUntrusted || req.Priority != PriorityNormal {
		t.Errorf("unexpected defaults: %+v", req)
	}
	if !req.NewConsole || req.Wait {
		t.Errorf("NewConsole/Wait defaults wrong: %+v", req)
	}
	if req.CurrentDirectory != "" {
		t.Errorf("CurrentDirectory = %q, want empty", req.CurrentDirectory)
	}
}

func TestInterpret_UserModes(t *testing.T) {
	tests := map[string]UserMode{
		"T": UserTrustedInstaller,
		"s": UserSystem,
		"C": UserCurrentUser,
		"p": UserCurrentProcess,
		"D": UserCurrentProcessDropRight,
	}
	for value, want := range tests {
		req, msg := Interpret(split("mlaunch -U:" + value + " cmd"))
		if msg != MessageSuccess || req.User != want {
			t.Errorf("-U:%s = %v (%v), want %v", value, req.User, msg, want)
		}
	}
}

func TestRequest_MarshalJSON(t *testing.T) {
	req := DefaultRequest()
	req.User = UserTrustedInstaller
	req.Command = "cmd"

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"user":"TrustedInstaller","privileges":"Default","label":"Untrusted",` +
		`"priority":"Normal","window":"Default","wait":false,"new_console":true,` +
		`"current_directory":"","command":"cmd"}`
	if string(data) != want {
		t.Errorf("Marshal() = %s\nwant       %s", data, want)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		msg     Message
		id      string
		isError bool
	}{
		{MessageSuccess, "Message.Success", false},
		{MessagePrivilegeNotHeld, "Message.PrivilegeNotHeld", true},
		{MessageInvalidCommandParameter, "Message.InvalidCommandParameter", true},
		{MessageInvalidTextBoxParameter, "Message.InvalidTextBoxParameter", true},
		{MessageCreateProcessFailed, "Message.CreateProcessFailed", true},
		{MessageShowHelp, "", false},
		{MessageShowVersion, "", false},
	}
	for _, tt := range tests {
		if got := tt.msg.TranslationID(); got != tt.id {
			t.Errorf("%v.TranslationID() = %q, want %q", tt.msg, got, tt.id)
		}
		if got := tt.msg.IsError(); got != tt.isError {
			t.Errorf("%v.IsError() = %v", tt.msg, got)
		}
		parsed, ok := ParseMessage(tt.msg.String())
		if !ok || parsed != tt.msg {
			t.Errorf("ParseMessage(%q) = %v, %v", tt.msg.String(), parsed, ok)
		}
	}

	if _, ok := ParseMessage("nope"); ok {
		t.Error("ParseMessage accepted an unknown name")
	}
	if Message(99).String() != "Unknown" {
		t.Errorf("Message(99).String() = %q", Message(99).String())
	}
}
