// Package main is the entry point for the ai-sync CLI.
package main

import (
	"fmt"
	"os"

	"github.com/beixiyo/ai-sync/cmd/ai-sync/commands"
	"github.com/beixiyo/ai-sync/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	code := errors.ExitUser
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if exitErr != nil && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "Hint: %s\n", exitErr.Suggestion)
	}
	os.Exit(code)
}
