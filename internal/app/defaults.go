package app

import (
	"github.com/vk/textcipher/internal/cipher"
	"github.com/vk/textcipher/internal/cli"
	"github.com/vk/textcipher/internal/config"
)

// applyDefaults copies values from the defaults file into settings, but
// only where the command line did not set them explicitly. The model has
// already been validated, so its values are known members of their
// closed sets.
func applyDefaults(s *cli.Settings, m *config.Model) {
	if m.Cipher != "" && !s.WasSet(cli.SettingCipher) {
		alg, _ := cipher.ParseAlgorithm(m.Cipher)
		s.Algorithm = alg
	}
	if m.Key != "" && !s.WasSet(cli.SettingKey) {
		s.Key = m.Key
	}
	if m.Mode != "" && !s.WasSet(cli.SettingMode) {
		if m.Mode == "decrypt" {
			s.Mode = cipher.Decrypt
		} else {
			s.Mode = cipher.Encrypt
		}
	}
	if m.LogLevel != "" && !s.WasSet(cli.SettingLogLevel) {
		s.LogLevel = m.LogLevel
	}
	if m.LogFormat != "" && !s.WasSet(cli.SettingLogFormat) {
		s.LogFormat = m.LogFormat
	}
}
