package main

import (
	"os"

	"roi-agent/cmd/roicli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
