// Package app is the program driver. It wires the validated settings,
// the optional defaults file, the cipher factory, the execution engine
// and the input/output streams into one run.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/textcipher/internal/cli"
	"github.com/vk/textcipher/internal/config"
	"github.com/vk/textcipher/internal/engine"
)

// Version is the program version reported by --version.
const Version = "0.5.0"

// App encapsulates one run's dependencies: streams, logger, settings and
// the engine worker count.
type App struct {
	inR      io.Reader
	outW     io.Writer
	logger   *slog.Logger
	settings *cli.Settings
	workers  int
}

// New builds an App from validated settings. When the settings name a
// defaults file it is loaded here, and its values fill in whatever the
// command line left unset; the logger is constructed only after that
// merge so the file can set the log level.
func New(inR io.Reader, outW, logW io.Writer, settings *cli.Settings) (*App, error) {
	workers := engine.DefaultWorkers
	if settings.ConfigFile != "" {
		model, err := config.Load(context.Background(), settings.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyDefaults(settings, model)
		if model.Workers > 0 {
			workers = model.Workers
		}
	}

	return &App{
		inR:      inR,
		outW:     outW,
		logger:   newLogger(settings.LogLevel, settings.LogFormat, logW),
		settings: settings,
		workers:  workers,
	}, nil
}
