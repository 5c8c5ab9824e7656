// main is the entry point for the talentmap CLI.
package main

import (
	"github.com/pathworks/talentmap/cmd"
	"github.com/pathworks/talentmap/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
