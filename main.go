package main

import (
	"os"

	"github.com/hrcore/competency/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
