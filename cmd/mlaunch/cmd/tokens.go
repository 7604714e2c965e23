package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mLaunch/foundation/core/error"
	"github.com/msto63/mLaunch/foundation/jsontok"
	mdwtextx "github.com/msto63/mLaunch/foundation/utils/textx"
)

var (
	tokensOutput  string
	tokensSection string
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file.json>",
	Short: "Dumps the token stream of a JSON resource",
	Long: `Parses a JSON resource file into its flat token stream and prints
every token with its depth, kind, byte span and child count.

With --section only the string pairs of the named section are printed,
as the launcher would load them.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVarP(&tokensOutput, "output", "o", "table", "output format (table, json, yaml)")
	tokensCmd.Flags().StringVarP(&tokensSection, "section", "s", "", "print the pairs of this section")
	rootCmd.AddCommand(tokensCmd)
}

type tokenRow struct {
	Index int    `json:"index" yaml:"index"`
	Depth int    `json:"depth" yaml:"depth"`
	Kind  string `json:"kind" yaml:"kind"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Size  int    `json:"size" yaml:"size"`
	Text  string `json:"text" yaml:"text"`
}

func runTokens(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return mdwerror.Wrap(err, "failed to read resource").
			WithCode(mdwerror.CodeNotFound).
			WithDetail("path", args[0])
	}

	data, err := mdwtextx.StripBOM(content)
	if err != nil {
		return mdwerror.Wrap(err, "cannot decode byte order mark").
			WithCode(mdwerror.CodeMalformedInput)
	}

	stream, err := jsontok.Parse(data)
	if err != nil {
		return err
	}

	if tokensSection != "" {
		return printSection(stream, tokensSection)
	}

	depths := stream.Depths()
	rows := make([]tokenRow, stream.Len())
	for i, t := range stream.Tokens() {
		rows[i] = tokenRow{
			Index: i,
			Depth: depths[i],
			Kind:  t.Kind.String(),
			Start: t.Start,
			End:   t.End,
			Size:  t.Size,
			Text:  stream.Text(i),
		}
	}

	if tokensOutput != "table" {
		return writeStructured(os.Stdout, tokensOutput, rows)
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		text := strings.ReplaceAll(r.Text, "\n", " ")
		cells[i] = []string{
			strconv.Itoa(r.Index),
			strings.Repeat("  ", r.Depth) + r.Kind,
			fmt.Sprintf("%d:%d", r.Start, r.End),
			strconv.Itoa(r.Size),
			truncate(text, 48),
		}
	}
	fmt.Println(renderTable([]string{"#", "Kind", "Span", "Size", "Text"}, cells))
	fmt.Printf("%d tokens\n", len(rows))
	return nil
}

func printSection(stream *jsontok.Stream, name string) error {
	pairs := stream.SectionMap(name)

	if tokensOutput != "table" {
		return writeStructured(os.Stdout, tokensOutput, pairs)
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, truncate(pairs[k], 60)}
	}
	fmt.Println(renderTable([]string{"Key", "Value"}, rows))
	return nil
}
