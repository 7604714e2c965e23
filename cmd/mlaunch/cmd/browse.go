package cmd

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/internal/launcher"
	"github.com/msto63/mLaunch/internal/tui/browser"
)

var (
	browseWatch   bool
	browseOptions []string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Picks a shortcut interactively and runs it",
	Long: `Opens a terminal browser over the shortcut table. Type to filter,
move with the arrow keys and press Enter to run the selected shortcut.

With --watch the shortcut file is reloaded when it changes on disk.
--option adds launcher options to the run, e.g. --option -U:C --option -Wait.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVarP(&browseWatch, "watch", "w", false, "reload shortcuts when the file changes")
	browseCmd.Flags().StringArrayVar(&browseOptions, "option", nil, "launcher option for the selected command")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := browser.DefaultConfig()
	if browseWatch || a.cfg.Resources.Watch {
		w := launcher.NewWatcher(a.res)
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
		cfg.Refresh = time.Second
	}

	selected, err := browser.Run(a.res, cfg)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}

	color.Blue("Running %s -> %s", selected.Name, selected.Command)

	// the shortcut name is the command remainder, unquoted
	line := launcherLine(a, browseOptions) + " " + selected.Name
	out := a.res.Run(ctx, line)
	a.record(ctx, out)
	printOutcome(out)

	if out.ExitCode != launcher.ExitSuccess {
		a.Close()
		stop()
		os.Exit(out.ExitCode)
	}
	return nil
}
