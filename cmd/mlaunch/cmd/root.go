package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/pkg/core/version"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
)

var rootCmd = &cobra.Command{
	Use:   "mlaunch",
	Short: "mLaunch - command launcher with shortcuts",
	Long: `mLaunch splits a launcher command line into options and a command,
resolves shortcuts from shortcuts.json and starts the command.

Resources:
  shortcuts.json     ShortCutList_V2 section, alias -> command
  translations       Translations section, text id -> text

Configuration is read from --config, $MLAUNCH_CONFIG, ./configs/mlaunch.toml
or ~/.config/mlaunch/mlaunch.toml.`,
	Version:       version.Text(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError("mlaunch", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $MLAUNCH_CONFIG or ./configs/mlaunch.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "print launch requests instead of starting processes")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), msg, err)
}

func printWarning(format string, args ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString(format, args...))
}
