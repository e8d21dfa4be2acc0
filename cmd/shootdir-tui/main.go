package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/handiism/shootdir/internal/tui"
)

func main() {
	dirFlag := flag.String("dir", ".", "Working directory holding the project and config.toml")
	flag.Parse()

	if err := tui.Run(*dirFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
