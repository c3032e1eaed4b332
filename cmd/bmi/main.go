// Package main is the entry point for the bmi CLI.
package main

import (
	"os"

	"github.com/f3rmion/bmi/cmd/bmi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
