package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [key]...",
	Short: "Prints translated launcher texts",
	Long: `Prints the text of each translation key. Without arguments all keys
are listed. Unknown keys print an empty text, as in the launcher.`,
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		keys := a.res.TranslationKeys()
		rows := make([][]string, len(keys))
		for i, k := range keys {
			rows[i] = []string{k, truncate(firstLine(a.res.Translate(k)), 60)}
		}
		fmt.Println(renderTable([]string{"Key", "Text"}, rows))
		return nil
	}

	for _, key := range args {
		text := a.res.Translate(key)
		if text == "" {
			printWarning("%s: no translation", key)
		}
		fmt.Println(text)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}
