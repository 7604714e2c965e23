package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mLaunch/pkg/core/version"
)

var versionOutput string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if versionOutput != "text" {
			return writeStructured(os.Stdout, versionOutput, info)
		}

		fmt.Printf("mLaunch v%s\n", info.Version)
		fmt.Printf("  Resource Format: %s\n", info.ResourceFormat)
		fmt.Printf("  Git Commit:      %s\n", info.GitCommit)
		fmt.Printf("  Build Date:      %s\n", info.BuildDate)
		fmt.Printf("  Go Version:      %s\n", info.GoVersion)
		fmt.Printf("  OS/Arch:         %s\n", info.Platform)
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "text", "output format (text, json, yaml)")
	rootCmd.AddCommand(versionCmd)
}
