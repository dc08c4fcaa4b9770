package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/textcipher/internal/app"
	"github.com/vk/textcipher/internal/cli"
)

// main is the entrypoint for the textcipher application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "[error] %v\n", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling. Every failure path surfaces as a returned error; main
// translates it into a diagnostic and a non-zero exit status.
func run(inR io.Reader, outW, errW io.Writer, args []string) error {
	settings, err := cli.Parse(args)
	if err != nil {
		return err
	}

	application, err := app.New(inR, outW, errW, settings)
	if err != nil {
		return err
	}

	return application.Run(context.Background())
}
