// ============================================================================
// mLaunch - Command Launcher
// ============================================================================
//
// Package:     launcher
// Description: Launch engines
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package launcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/msto63/mLaunch/foundation/cmdline"
	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
)

// Engine starts the process a request describes
type Engine interface {
	Launch(ctx context.Context, req Request) error
}

// PlanEngine prints each request as YAML instead of launching it
type PlanEngine struct {
	out      io.Writer
	mu       sync.Mutex
	requests []Request
}

// NewPlanEngine creates a plan engine writing to out. A nil writer only
// records requests.
func NewPlanEngine(out io.Writer) *PlanEngine {
	return &PlanEngine{out: out}
}

// Launch records req and writes it as a YAML document
func (e *PlanEngine) Launch(ctx context.Context, req Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.requests = append(e.requests, req)
	if e.out == nil {
		return nil
	}

	enc := yaml.NewEncoder(e.out)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return mdwerror.Wrap(err, "failed to write launch plan").
			WithCode(mdwerror.CodeInternal).
			WithOperation("launcher.PlanEngine.Launch")
	}
	return enc.Close()
}

// Requests returns the recorded requests in launch order
func (e *PlanEngine) Requests() []Request {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Request(nil), e.requests...)
}

// ExecEngine starts the command as a child process of the launcher. It runs
// under the launcher's own account; elevated user modes are refused unless
// the launcher itself runs as root.
type ExecEngine struct {
	// Timeout bounds a waited launch; zero waits indefinitely
	Timeout time.Duration
	// Quote is the quote character used to split the command
	Quote byte

	// Stdin, Stdout and Stderr are attached when the request does not ask
	// for a new console. Nil means the launcher's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecEngine creates an engine with the given wait timeout
func NewExecEngine(timeout time.Duration) *ExecEngine {
	return &ExecEngine{Timeout: timeout, Quote: cmdline.DefaultQuote}
}

// Launch starts the process. With Wait set it blocks until the process exits
// or the timeout passes; otherwise the process is released after start.
func (e *ExecEngine) Launch(ctx context.Context, req Request) error {
	if req.User.Elevated() && os.Geteuid() != 0 {
		return mdwerror.Newf("user mode %s requires a privileged launcher", req.User).
			WithCode(mdwerror.CodePermissionDenied).
			WithOperation("launcher.ExecEngine.Launch").
			WithDetail("user", req.User.String())
	}

	quote := e.Quote
	if quote == 0 {
		quote = cmdline.DefaultQuote
	}
	fields := cmdline.Lex(req.Command, quote)
	if len(fields) == 0 {
		return mdwerror.New("empty command").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("launcher.ExecEngine.Launch")
	}
	argv := make([]string, len(fields))
	for i, f := range fields {
		argv[i] = f.Value
	}

	if !req.Wait {
		// not bound to ctx: the child outlives the launcher
		cmd := exec.Command(argv[0], argv[1:]...)
		e.prepare(cmd, req)
		if err := cmd.Start(); err != nil {
			return launchError(err, req)
		}
		return cmd.Process.Release()
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	e.prepare(cmd, req)
	err := cmd.Run()

	// the process was created and waited for; its exit status is its own
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return nil
	}
	if err != nil {
		return launchError(err, req)
	}
	return nil
}

func (e *ExecEngine) prepare(cmd *exec.Cmd, req Request) {
	cmd.Dir = req.CurrentDirectory
	if req.NewConsole {
		return
	}
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
}

func launchError(err error, req Request) error {
	return mdwerror.Wrap(err, "failed to create process").
		WithCode(mdwerror.CodeExternalServiceError).
		WithOperation("launcher.ExecEngine.Launch").
		WithDetail("command", req.Command)
}
