package main

import (
	"os"

	"github.com/msto63/mLaunch/cmd/mlaunch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
