package main

import (
	"errors"
	"fmt"
	"os"

	app "github.com/gitmoji/conventional-pre-commit/internal/hooks/commitmsg"
)

func main() {
	err := app.Run(os.Stdout, os.Args)
	if err != nil {
		if !errors.Is(err, app.ErrInvalidCommitMessage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		os.Exit(1)
	}
}
