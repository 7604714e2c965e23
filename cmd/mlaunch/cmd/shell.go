package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/internal/launcher"
)

const historyFile = ".mlaunch_history"

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Reads launcher lines from an interactive prompt",
	Long: `Starts a prompt that runs each entered line like "mlaunch run" does:
options, then a command or shortcut. Tab completes shortcut names.
An empty line is rejected. Type "exit" or press Ctrl+D to leave.`,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(func(line string) []string {
		return completeShortcut(a.res, line)
	})

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println(a.res.Translate(launcher.KeyVersionText))

	ctx := context.Background()
	for {
		line, err := ln.Prompt("mlaunch> ")
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			return nil
		}

		out := a.res.RunInput(ctx, line)
		a.record(ctx, out)
		printOutcome(out)

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if out.Message == launcher.MessageSuccess {
			color.Green("Started %s", out.Command)
		}
	}
}

// completeShortcut completes the command part of line, the text after its
// leading options, against the shortcut names
func completeShortcut(res *launcher.Resources, line string) []string {
	tail := res.Split("mlaunch " + line).Remainder
	if !strings.HasSuffix(line, tail) {
		return nil
	}
	if tail == "" && line != "" && !strings.HasSuffix(line, " ") {
		return nil
	}
	head := line[:len(line)-len(tail)]

	var out []string
	for _, s := range res.Shortcuts() {
		if strings.HasPrefix(strings.ToLower(s.Name), strings.ToLower(tail)) {
			out = append(out, head+s.Name)
		}
	}
	sort.Strings(out)
	return out
}
