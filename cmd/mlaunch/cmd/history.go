package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/internal/journal"
	"github.com/msto63/mLaunch/internal/launcher"
)

var (
	historyLimit   int
	historyMessage string
	historySince   time.Duration
	historyStats   bool
	historyPrune   bool
	historyOutput  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows the launch journal",
	Long: `Shows the command lines recorded in the launch journal, newest first.
The journal is written when [journal] enabled = true.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	historyCmd.Flags().StringVarP(&historyMessage, "message", "m", "", "only entries with this result (e.g. Success, CreateProcessFailed)")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only entries newer than this age (e.g. 24h)")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "print counts per result instead of entries")
	historyCmd.Flags().BoolVar(&historyPrune, "prune", false, "delete entries older than the configured retention")
	historyCmd.Flags().StringVarP(&historyOutput, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.journal == nil {
		printWarning("The launch journal is disabled; set [journal] enabled = true")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch {
	case historyPrune:
		n, err := a.journal.Prune(ctx, a.cfg.Journal.Retention.Duration)
		if err != nil {
			return err
		}
		color.Green("Deleted %d entries older than %s", n, a.cfg.Journal.Retention.Duration)
		return nil

	case historyStats:
		stats, err := a.journal.Stats(ctx)
		if err != nil {
			return err
		}
		return printStats(stats)
	}

	filter := journal.Filter{Limit: historyLimit}
	if historySince > 0 {
		filter.Since = time.Now().Add(-historySince)
	}
	if historyMessage != "" {
		msg, ok := launcher.ParseMessage(historyMessage)
		if !ok {
			return fmt.Errorf("unknown message %q", historyMessage)
		}
		filter.Message = msg.String()
	}

	entries, err := a.journal.Query(ctx, filter)
	if err != nil {
		return err
	}

	if historyOutput != "table" {
		return writeStructured(os.Stdout, historyOutput, entries)
	}

	if len(entries) == 0 {
		fmt.Println("No entries.")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			e.Message,
			strconv.Itoa(e.ExitCode),
			truncate(e.Unresolved, 30),
			truncate(e.Command, 40),
		}
	}
	fmt.Println(renderTable([]string{"Time", "Result", "Exit", "Typed", "Command"}, rows))
	return nil
}

func printStats(stats journal.Stats) error {
	if historyOutput != "table" {
		return writeStructured(os.Stdout, historyOutput, stats)
	}

	names := make([]string, 0, len(stats.ByMessage))
	for name := range stats.ByMessage {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.FormatInt(stats.ByMessage[name], 10)})
	}
	fmt.Println(renderTable([]string{"Result", "Count"}, rows))

	fmt.Printf("Total: %d, failures: %d\n", stats.Total, stats.Failures)
	if !stats.LastEntry.IsZero() {
		fmt.Printf("Last entry: %s\n", stats.LastEntry.Local().Format(time.RFC3339))
	}
	return nil
}
