package main

import (
	"os"

	"github.com/blackwell-systems/anthropac/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		app.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
