package main

import (
	"os"

	"cryptodemo/cmd/cryptodemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
