package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/wtt/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Domain errors were already rendered by the command; anything else
		// (flag misuse, unknown subcommand) still needs printing here.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
