package main

import (
	"os"

	"github.com/maxcolbe/studentsky-svet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
