package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/learnvocab/internal/config"
	"github.com/mrlokans/learnvocab/internal/entrypoint"
)

// Version information - set at build time via ldflags
var Version = "dev"

func main() {
	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		cfg := config.NewConfig()
		entrypoint.Run(cfg, Version)
		return
	}

	switch os.Args[1] {
	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve    Start the HTTP server (default if no command given)\n")
}
