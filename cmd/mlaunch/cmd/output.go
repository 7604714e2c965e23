package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	mdwstringx "github.com/msto63/mLaunch/foundation/utils/stringx"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B5CF6")).Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// renderTable renders rows under headers as a bordered table
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// writeStructured writes v as json or yaml
func writeStructured(w io.Writer, format string, v interface{}) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (table, json, yaml)", format)
	}
}

// truncate shortens s to max runes for table cells
func truncate(s string, max int) string {
	return mdwstringx.Truncate(s, max, "...")
}

// quoteArg quotes a shell argument again so that the launcher tokenizer
// sees it as one field
func quoteArg(arg string, quote byte) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\r\n\v\f") {
		return arg
	}
	q := string(quote)
	return q + strings.ReplaceAll(arg, q, `\`+q) + q
}

// joinArgs rebuilds a launcher command line from shell arguments
func joinArgs(args []string, quote byte) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = quoteArg(a, quote)
	}
	return strings.Join(parts, " ")
}
