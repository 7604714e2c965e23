package launcher

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

func TestPlanEngine_Launch(t *testing.T) {
	var buf bytes.Buffer
	engine := NewPlanEngine(&buf)

	req := DefaultRequest()
	req.User = UserSystem
	req.Priority = PriorityHigh
	req.Command = "cmd /c dir"
	req.CurrentDirectory = "/opt/mlaunch"

	if err := engine.Launch(context.Background(), req); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"user: System",
		"priority: High",
		"new_console: true",
		"command: cmd /c dir",
		"current_directory: /opt/mlaunch",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}

	if got := engine.Requests(); len(got) != 1 || got[0] != req {
		t.Errorf("Requests() = %+v", got)
	}
}

func TestPlanEngine_CancelledContext(t *testing.T) {
	engine := NewPlanEngine(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := engine.Launch(ctx, DefaultRequest()); err == nil {
		t.Error("Launch() should fail on a cancelled context")
	}
	if len(engine.Requests()) != 0 {
		t.Error("cancelled launch was recorded")
	}
}

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExecEngine_Wait(t *testing.T) {
	skipWithoutShell(t)

	dir := t.TempDir()
	var stdout bytes.Buffer
	engine := NewExecEngine(5 * time.Second)
	engine.Stdout = &stdout

	req := DefaultRequest()
	req.Wait = true
	req.NewConsole = false
	req.CurrentDirectory = dir
	req.Command = `sh -c "pwd; touch marker"`

	if err := engine.Launch(context.Background(), req); err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Errorf("command did not run in %s: %v", dir, err)
	}
	if !strings.Contains(stdout.String(), filepath.Base(dir)) {
		t.Errorf("stdout = %q, want working directory", stdout.String())
	}
}

func TestExecEngine_Errors(t *testing.T) {
	skipWithoutShell(t)

	engine := NewExecEngine(100 * time.Millisecond)

	tests := []struct {
		name string
		req  Request
		code mdwerror.Code
	}{
		{
			name: "empty command",
			req:  Request{Command: "   "},
			code: mdwerror.CodeInvalidInput,
		},
		{
			name: "missing binary",
			req:  Request{Command: "mlaunch-no-such-binary --flag"},
			code: mdwerror.CodeExternalServiceError,
		},
		{
			name: "timeout",
			req:  Request{Wait: true, Command: `sh -c "sleep 5"`},
			code: mdwerror.CodeExternalServiceError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Launch(context.Background(), tt.req)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("Launch() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecEngine_WaitNonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	req := DefaultRequest()
	req.Wait = true
	req.Command = `sh -c "exit 3"`

	if err := NewExecEngine(5*time.Second).Launch(context.Background(), req); err != nil {
		t.Errorf("Launch() error = %v, want nil for a child that exited", err)
	}
}

func TestResources_RunWaitNonZeroExit(t *testing.T) {
	skipWithoutShell(t)

	res := newTestResources(t, "", NewExecEngine(5*time.Second))
	out := res.Run(context.Background(), `mlaunch -Wait sh -c "exit 1"`)
	if out.Message != MessageSuccess || out.ExitCode != ExitSuccess || out.Err != nil {
		t.Errorf("Run() = %v/%d/%v, want Success/0/nil", out.Message, out.ExitCode, out.Err)
	}
}

func TestExecEngine_ElevatedRequiresRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}

	req := DefaultRequest()
	req.User = UserTrustedInstaller
	req.Command = "true"

	err := NewExecEngine(0).Launch(context.Background(), req)
	if !mdwerror.HasCode(err, mdwerror.CodePermissionDenied) {
		t.Errorf("Launch() error = %v, want PERMISSION_DENIED", err)
	}
}
