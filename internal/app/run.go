package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/textcipher/internal/cipher"
	"github.com/vk/textcipher/internal/ctxlog"
	"github.com/vk/textcipher/internal/engine"
	"github.com/vk/textcipher/internal/normalize"
)

// Run executes one pass: help/version short-circuits, then read and
// normalize input, construct the cipher, run the engine and write the
// transformed text. Any returned error is terminal; nothing is retried.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if a.settings.HelpRequested {
		fmt.Fprint(a.outW, usageText)
		return nil
	}
	if a.settings.VersionRequested {
		fmt.Fprintln(a.outW, Version)
		return nil
	}

	text, err := a.readInput()
	if err != nil {
		return err
	}
	a.logger.Debug("Input normalized.", "length", len(text))

	c, err := cipher.New(a.settings.Algorithm, a.settings.Key)
	if err != nil {
		return err
	}
	a.logger.Debug("Cipher constructed.", "algorithm", a.settings.Algorithm, "mode", a.settings.Mode)

	output, err := engine.New(a.workers).Run(ctx, c, text, a.settings.Mode, a.settings.Algorithm)
	if err != nil {
		return err
	}

	return a.writeOutput(output)
}

// readInput reads the whole input from the named file, or from the input
// stream when no file was given, normalizing as it goes.
func (a *App) readInput() (string, error) {
	if a.settings.InputFile == "" {
		return normalize.FromReader(a.inR)
	}
	f, err := os.Open(a.settings.InputFile)
	if err != nil {
		return "", fmt.Errorf("failed to open input file %q: %w", a.settings.InputFile, err)
	}
	defer f.Close()
	return normalize.FromReader(f)
}

// writeOutput writes the transformed text plus a trailing newline to the
// named file (truncate-create) or the output stream.
func (a *App) writeOutput(text string) error {
	if a.settings.OutputFile == "" {
		_, err := fmt.Fprintln(a.outW, text)
		return err
	}
	f, err := os.Create(a.settings.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", a.settings.OutputFile, err)
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, text); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", a.settings.OutputFile, err)
	}
	return nil
}
