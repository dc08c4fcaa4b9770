package integration_tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/textcipher/internal/cipher"
	"github.com/vk/textcipher/internal/cli"
	"github.com/vk/textcipher/internal/testutil"
)

func TestEncryptFromStdinToStdout(t *testing.T) {
	res := runCLI(t, []string{"-c", "shift", "-k", "3", "--encrypt"}, "Hello123")
	require.NoError(t, res.Err)
	assert.Equal(t, "KHOORRQHWZRWKUHH\n", res.Stdout)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	enc := runCLI(t, []string{"-k", "17", "--encrypt"}, "The quick brown fox")
	require.NoError(t, enc.Err)

	dec := runCLI(t, []string{"-k", "17", "--decrypt"}, strings.TrimSuffix(enc.Stdout, "\n"))
	require.NoError(t, dec.Err)
	assert.Equal(t, "THEQUICKBROWNFOX\n", dec.Stdout)
}

func TestDigraphRunsOnSinglePath(t *testing.T) {
	res := runCLI(t, []string{"-c", "digraph", "-k", "monarchy"}, "instruments")
	require.NoError(t, res.Err)
	assert.Equal(t, "GATLMZCLRQXA\n", res.Stdout)
}

func TestPolyalphabeticEncrypt(t *testing.T) {
	res := runCLI(t, []string{"-c", "polyalphabetic", "-k", "KEY"}, "hello")
	require.NoError(t, res.Err)
	assert.Equal(t, "RIJVS\n", res.Stdout)
}

func TestEmptyKeyIsIdentity(t *testing.T) {
	res := runCLI(t, nil, "plain text")
	require.NoError(t, res.Err)
	assert.Equal(t, "PLAINTEXT\n", res.Stdout)
}

func TestHelpShortCircuits(t *testing.T) {
	res := runCLI(t, []string{"--help", "--cipher", "digraph"}, "ignored")
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Usage: textcipher")
	assert.Contains(t, res.Stdout, "--decrypt")
}

func TestVersionShortCircuits(t *testing.T) {
	res := runCLI(t, []string{"-v"}, "ignored")
	require.NoError(t, res.Err)
	assert.Equal(t, "0.5.0\n", res.Stdout)
}

func TestFileInputAndOutput(t *testing.T) {
	dir := t.TempDir()
	inPath := testutil.WriteFile(t, dir, "in.txt", "Hello123")
	outPath := filepath.Join(dir, "out.txt")

	res := runCLI(t, []string{"-i", inPath, "-o", outPath, "-k", "3"}, "")
	require.NoError(t, res.Err)
	assert.Empty(t, res.Stdout)

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "KHOORRQHWZRWKUHH\n", string(written))
}

func TestMissingInputFileFails(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	res := runCLI(t, []string{"-i", missing}, "")
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), missing)
}

func TestUnwritableOutputFileFails(t *testing.T) {
	res := runCLI(t, []string{"-o", filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")}, "text")
	require.Error(t, res.Err)
}

func TestInvalidKeyFails(t *testing.T) {
	res := runCLI(t, []string{"-c", "shift", "-k", "banana"}, "text")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, cipher.ErrInvalidKey)
}

func TestUnknownArgumentFails(t *testing.T) {
	res := runCLI(t, []string{"--frobnicate"}, "text")
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, cli.ErrUnknownArgument)
}

func TestDebugLoggingGoesToLogStreamNotStdout(t *testing.T) {
	res := runCLI(t, []string{"-k", "1", "--log-level", "debug"}, "abc")
	require.NoError(t, res.Err)
	assert.Equal(t, "BCD\n", res.Stdout)
	assert.Contains(t, res.Logs, "Cipher constructed.")
}
