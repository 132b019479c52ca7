package main

import (
	"os"

	"github.com/gyakuten55/rikuso-demo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
