package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/devtrack/devtrack/cmd"
	"github.com/devtrack/devtrack/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Error loading .env file: %v", err)
	}

	err := cmd.Execute()

	// Command failures are already reported by the output formatter. Anything
	// else comes from cobra's flag and argument checks.
	var exitErr *cli.ExitCodeError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		err = &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	}

	os.Exit(cli.ExitCode(err))
}
