package main

import (
	"os"

	"github.com/traPtitech/traPin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
