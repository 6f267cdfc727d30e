package main

import (
	"os"

	"github.com/wildfunctions/realexact/cmd/realcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
