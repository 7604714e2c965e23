package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var shortcutOutput string

var shortcutCmd = &cobra.Command{
	Use:     "shortcut",
	Aliases: []string{"shortcuts", "sc"},
	Short:   "Lists and resolves shortcuts",
}

var shortcutListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all shortcuts",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		shortcuts := a.res.Shortcuts()
		if shortcutOutput != "table" {
			return writeStructured(os.Stdout, shortcutOutput, shortcuts)
		}

		if len(shortcuts) == 0 {
			printWarning("No shortcuts in %s", a.res.ShortcutsFile())
			return nil
		}

		rows := make([][]string, len(shortcuts))
		for i, s := range shortcuts {
			rows[i] = []string{s.Name, s.Command}
		}
		fmt.Println(renderTable([]string{"Shortcut", "Command"}, rows))
		fmt.Printf("%d shortcuts from %s\n", len(shortcuts), a.res.ShortcutsFile())
		return nil
	},
}

var shortcutResolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Prints the command a shortcut stands for",
	Long: `Prints the command each argument stands for. Arguments that are
not shortcuts are printed unchanged, as the launcher would run them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, name := range args {
			resolved := a.res.Resolve(name)
			if resolved == name {
				fmt.Printf("%s %s\n", name, color.New(color.Faint).Sprint("(no shortcut)"))
				continue
			}
			fmt.Printf("%s -> %s\n", color.CyanString(name), resolved)
		}
		return nil
	},
}

func init() {
	shortcutListCmd.Flags().StringVarP(&shortcutOutput, "output", "o", "table", "output format (table, json, yaml)")
	shortcutCmd.AddCommand(shortcutListCmd, shortcutResolveCmd)
	rootCmd.AddCommand(shortcutCmd)
}
