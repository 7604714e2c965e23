package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/internal/launcher"
)

var parseOutput string

var parseCmd = &cobra.Command{
	Use:   "parse [--] command line",
	Short: "Shows how a launcher command line is split and interpreted",
	Long: `Splits a launcher command line without running it and prints the
application, the options, the remainder, the shortcut-resolved command and
the interpreted launch request.

Use -- before option fields so they are not taken as mlaunch flags:
  mlaunch parse -- -U:T -Wait open notepad
  mlaunch parse -o yaml -- -U:Z cmd`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.AddCommand(parseCmd)
}

// parseReport is the structured form of parse output
type parseReport struct {
	Application string            `json:"application" yaml:"application"`
	Options     map[string]string `json:"options" yaml:"options"`
	Remainder   string            `json:"remainder" yaml:"remainder"`
	Command     string            `json:"command" yaml:"command"`
	Message     launcher.Message  `json:"message" yaml:"message"`
	Request     *launcher.Request `json:"request,omitempty" yaml:"request,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	res := a.res.Split(launcherLine(a, args))
	command := a.res.Resolve(res.Remainder)

	resolved := res
	resolved.Remainder = command
	req, msg := launcher.Interpret(resolved)

	report := parseReport{
		Application: res.Application,
		Options:     map[string]string(res.Options),
		Remainder:   res.Remainder,
		Command:     command,
		Message:     msg,
	}
	if msg == launcher.MessageSuccess {
		report.Request = &req
	}

	if parseOutput != "table" {
		return writeStructured(os.Stdout, parseOutput, report)
	}

	rows := [][]string{
		{"application", res.Application},
	}
	for _, name := range res.Options.Names() {
		rows = append(rows, []string{"option " + name, res.Options[name]})
	}
	rows = append(rows,
		[]string{"remainder", res.Remainder},
		[]string{"command", command},
		[]string{"message", msg.String()},
	)
	if report.Request != nil {
		rows = append(rows,
			[]string{"user", req.User.String()},
			[]string{"privileges", req.Privileges.String()},
			[]string{"label", req.Label.String()},
			[]string{"priority", req.Priority.String()},
			[]string{"window", req.Window.String()},
			[]string{"wait", fmt.Sprint(req.Wait)},
			[]string{"new console", fmt.Sprint(req.NewConsole)},
			[]string{"directory", req.CurrentDirectory},
		)
	}

	fmt.Println(renderTable([]string{"Field", "Value"}, rows))
	return nil
}
