package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kumo-ai/kumo-skills-catalog/internal/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		// Check mode already printed its status line.
		if !errors.Is(err, cli.ErrOutOfDate) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
