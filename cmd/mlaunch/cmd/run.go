package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/internal/launcher"
)

var runCmd = &cobra.Command{
	Use:   "run [options] command",
	Short: "Runs a launcher command line",
	Long: `Runs a launcher command line: options, then a command or shortcut.

Everything after "run" belongs to the launcher line, so mlaunch flags such
as --config cannot be given here; use $MLAUNCH_CONFIG instead.

Examples:
  mlaunch run -U:C -Wait open notepad
  mlaunch run -U:T -P:E cmd /c dir
  mlaunch run -Version`,
	DisableFlagParsing: true,
	RunE:               runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raw := launcherLine(a, args)
	out := a.res.Run(ctx, raw)
	a.record(ctx, out)

	printOutcome(out)

	if out.ExitCode != launcher.ExitSuccess {
		a.Close()
		stop()
		os.Exit(out.ExitCode)
	}
	return nil
}

// launcherLine prefixes the arguments with the program name, which the
// tokenizer takes as the application field
func launcherLine(a *app, args []string) string {
	quote := a.cfg.Parser.QuoteByte()
	line := quoteArg(filepath.Base(os.Args[0]), quote)
	if len(args) > 0 {
		line += " " + joinArgs(args, quote)
	}
	return line
}

func printOutcome(out launcher.Outcome) {
	if out.Text != "" {
		fmt.Print(out.Text)
		if out.Text[len(out.Text)-1] != '\n' {
			fmt.Println()
		}
	}
	if out.Err != nil {
		printError(out.Message.String(), out.Err)
	}
}
