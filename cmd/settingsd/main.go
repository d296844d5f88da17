package main

import (
	"os"

	"wallet-settings/cmd/settingsd/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
