package main

import (
	"os"

	"github.com/devoto-app/devoto/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
