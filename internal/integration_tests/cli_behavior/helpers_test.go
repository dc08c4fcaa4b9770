package integration_tests

import (
	"context"
	"strings"
	"testing"

	"github.com/vk/textcipher/internal/app"
	"github.com/vk/textcipher/internal/cli"
	"github.com/vk/textcipher/internal/testutil"
)

// cliResult holds the observable outcome of one simulated CLI run.
type cliResult struct {
	Stdout string
	Logs   string
	Err    error
}

// runCLI drives the full parse -> app -> run pipeline the way cmd/cli
// does, with stdin and stdout replaced by buffers.
func runCLI(t *testing.T, args []string, stdin string) cliResult {
	t.Helper()

	var stdout, logs testutil.SafeBuffer

	settings, err := cli.Parse(args)
	if err != nil {
		return cliResult{Err: err}
	}

	application, err := app.New(strings.NewReader(stdin), &stdout, &logs, settings)
	if err != nil {
		return cliResult{Logs: logs.String(), Err: err}
	}

	err = application.Run(context.Background())
	return cliResult{Stdout: stdout.String(), Logs: logs.String(), Err: err}
}
