package main

import (
	"os"

	"pairchat/cmd/pairchat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
