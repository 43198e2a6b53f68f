package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/applyboard/cmd"
	"github.com/thenoetrevino/applyboard/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands that fail through the output formatter have already
	// printed their message
	var exitErr *cli.ExitCodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
