// Package config loads the optional HCL defaults file. Values from the
// file fill in settings the user did not give on the command line; the
// command line always wins where both are present.
package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/textcipher/internal/cipher"
	"github.com/vk/textcipher/internal/ctxlog"
)

// Model is the validated content of a defaults file. String fields hold
// the empty string and Workers holds zero when the corresponding
// attribute was absent.
type Model struct {
	Cipher    string
	Key       string
	Mode      string
	Workers   int
	LogLevel  string
	LogFormat string
}

// fileSchema mirrors the HCL surface of the defaults file. Attributes are
// decoded as expressions and evaluated afterwards, so malformed values
// are reported per attribute.
type fileSchema struct {
	Defaults    *defaultsSchema    `hcl:"defaults,block"`
	Concurrency *concurrencySchema `hcl:"concurrency,block"`
	Logging     *loggingSchema     `hcl:"logging,block"`
}

type defaultsSchema struct {
	Cipher hcl.Expression `hcl:"cipher,optional"`
	Key    hcl.Expression `hcl:"key,optional"`
	Mode   hcl.Expression `hcl:"mode,optional"`
}

type concurrencySchema struct {
	Workers hcl.Expression `hcl:"workers,optional"`
}

type loggingSchema struct {
	Level  hcl.Expression `hcl:"level,optional"`
	Format hcl.Expression `hcl:"format,optional"`
}

// stringAttr evaluates an attribute expression and converts it to a
// string. A nil expression (attribute absent) yields the empty string.
func stringAttr(expr hcl.Expression, name string) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("attribute %q: %w", name, diags)
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("attribute %q: %w", name, err)
	}
	return val.AsString(), nil
}

// intAttr evaluates an attribute expression and converts it to an int.
// A nil expression yields zero.
func intAttr(expr hcl.Expression, name string) (int, error) {
	if expr == nil {
		return 0, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("attribute %q: %w", name, diags)
	}
	if val.IsNull() {
		return 0, nil
	}
	val, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, fmt.Errorf("attribute %q: %w", name, err)
	}
	return n, nil
}

// Load parses and validates the defaults file at path. Every block and
// attribute is optional; present values must be well formed.
func Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file %s: %w", path, diags)
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file %s: %w", path, diags)
	}

	m := &Model{}
	var err error
	if fs.Defaults != nil {
		if m.Cipher, err = stringAttr(fs.Defaults.Cipher, "cipher"); err != nil {
			return nil, err
		}
		if m.Key, err = stringAttr(fs.Defaults.Key, "key"); err != nil {
			return nil, err
		}
		if m.Mode, err = stringAttr(fs.Defaults.Mode, "mode"); err != nil {
			return nil, err
		}
	}
	if fs.Concurrency != nil {
		if m.Workers, err = intAttr(fs.Concurrency.Workers, "workers"); err != nil {
			return nil, err
		}
	}
	if fs.Logging != nil {
		if m.LogLevel, err = stringAttr(fs.Logging.Level, "level"); err != nil {
			return nil, err
		}
		if m.LogFormat, err = stringAttr(fs.Logging.Format, "format"); err != nil {
			return nil, err
		}
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	logger.Debug("Defaults file loaded.", "path", path)
	return m, nil
}

// validate rejects values outside their closed sets. Absent values pass.
func (m *Model) validate() error {
	if m.Cipher != "" {
		if _, ok := cipher.ParseAlgorithm(m.Cipher); !ok {
			return fmt.Errorf("unknown cipher %q", m.Cipher)
		}
	}
	switch m.Mode {
	case "", "encrypt", "decrypt":
	default:
		return fmt.Errorf("unknown mode %q", m.Mode)
	}
	if m.Workers < 0 {
		return fmt.Errorf("workers must be positive, got %d", m.Workers)
	}
	switch m.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", m.LogLevel)
	}
	switch m.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", m.LogFormat)
	}
	return nil
}
