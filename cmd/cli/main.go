package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/modfuncs/internal/cli"
	"github.com/spf13/afero"
)

// main is the entrypoint for the modfuncs application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cli.ExitFailure)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) (err error) {
	// Panics are programmer errors; report them instead of dumping a trace.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical error occurred | %v", r)
		}
	}()

	return cli.Execute(context.Background(), args, cli.Options{
		Out: outW,
		Err: errW,
		Fs:  afero.NewOsFs(),
	})
}
