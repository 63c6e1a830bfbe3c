package main

import (
	"os"

	"rtscheck/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Run(os.Args[1:]))
}
