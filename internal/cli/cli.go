// Package cli validates the raw command-line argument list into program
// Settings. It is purely syntactic: no I/O happens here and no cipher is
// constructed. Repeated flags follow last-one-wins semantics.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/vk/textcipher/internal/cipher"
)

// Sentinel kinds for the argument error taxonomy, matchable via errors.Is.
var (
	ErrMissingArgument = errors.New("missing argument")
	ErrUnknownArgument = errors.New("unknown argument")
)

// ArgumentError reports a validation failure together with the offending
// token, so the driver can name it in the diagnostic.
type ArgumentError struct {
	Kind  error
	Token string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Token)
}

// Unwrap ties the error to its sentinel kind.
func (e *ArgumentError) Unwrap() error { return e.Kind }

func missing(flagName string) error {
	return &ArgumentError{Kind: ErrMissingArgument, Token: flagName}
}

func unknown(token string) error {
	return &ArgumentError{Kind: ErrUnknownArgument, Token: token}
}

// Settings holds everything the command line can configure. After a
// successful Parse, Mode and Algorithm always hold valid enumerators and
// exactly one of the help, version or normal-processing paths applies.
type Settings struct {
	HelpRequested    bool
	VersionRequested bool
	InputFile        string // empty means read stdin
	OutputFile       string // empty means write stdout
	Key              string // empty means the algorithm's identity key
	Mode             cipher.Mode
	Algorithm        cipher.Algorithm

	ConfigFile string // optional HCL defaults file
	LogLevel   string
	LogFormat  string

	explicit map[string]bool
}

// Explicitness keys, used by config merging to respect CLI precedence.
const (
	SettingInfile    = "infile"
	SettingOutfile   = "outfile"
	SettingCipher    = "cipher"
	SettingKey       = "key"
	SettingMode      = "mode"
	SettingLogLevel  = "log-level"
	SettingLogFormat = "log-format"
)

// WasSet reports whether the named setting was explicitly given on the
// command line, as opposed to holding its default.
func (s *Settings) WasSet(name string) bool { return s.explicit[name] }

// pairedValue consumes the value token following a paired flag, failing
// with MissingArgument when the flag is the last token.
func pairedValue(args []string, i *int, flagName string) (string, error) {
	if *i+1 >= len(args) {
		return "", missing(flagName)
	}
	*i++
	return args[*i], nil
}

// Parse walks the argument list left to right. Paired flags must be
// followed by exactly one value token; anything unrecognized fails with
// UnknownArgument naming the token. An unrecognized cipher, log-level or
// log-format value is also surfaced as UnknownArgument, naming the value.
func Parse(args []string) (*Settings, error) {
	s := &Settings{
		Mode:      cipher.Encrypt,
		Algorithm: cipher.Shift,
		LogLevel:  "warn",
		LogFormat: "text",
		explicit:  make(map[string]bool),
	}

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-h", "--help":
			s.HelpRequested = true
		case "-v", "--version":
			s.VersionRequested = true
		case "-i", "--infile":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			s.InputFile = v
			s.explicit[SettingInfile] = true
		case "-o", "--outfile":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			s.OutputFile = v
			s.explicit[SettingOutfile] = true
		case "-k", "--key":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			s.Key = v
			s.explicit[SettingKey] = true
		case "-c", "--cipher":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			alg, ok := cipher.ParseAlgorithm(v)
			if !ok {
				return nil, unknown(v)
			}
			s.Algorithm = alg
			s.explicit[SettingCipher] = true
		case "--encrypt":
			s.Mode = cipher.Encrypt
			s.explicit[SettingMode] = true
		case "--decrypt":
			s.Mode = cipher.Decrypt
			s.explicit[SettingMode] = true
		case "--config":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			s.ConfigFile = v
		case "--log-level":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			switch v {
			case "debug", "info", "warn", "error":
			default:
				return nil, unknown(v)
			}
			s.LogLevel = v
			s.explicit[SettingLogLevel] = true
		case "--log-format":
			v, err := pairedValue(args, &i, arg)
			if err != nil {
				return nil, err
			}
			if v != "text" && v != "json" {
				return nil, unknown(v)
			}
			s.LogFormat = v
			s.explicit[SettingLogFormat] = true
		default:
			return nil, unknown(arg)
		}
	}

	slog.Debug("Arguments parsed successfully.",
		"cipher", s.Algorithm, "mode", s.Mode,
		"infile", s.InputFile, "outfile", s.OutputFile)
	return s, nil
}
