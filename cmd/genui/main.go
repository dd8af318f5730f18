package main

import (
	"os"

	"github.com/go-drift/genui/cmd/genui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
