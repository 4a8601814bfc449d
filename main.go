package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/lanes/cmd"
	"github.com/thenoetrevino/lanes/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		// Command failures are already reported by the output formatter
		var exitErr *cli.CommandError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(cli.ExitUsage)
		}
	}
	os.Exit(cli.ExitCode(err))
}
