package main

import (
	"os"

	"github.com/finqualify/loan-qualifier/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
