package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
	"github.com/Badsnus/qrstudio/internal/domain/dto"
	"github.com/Badsnus/qrstudio/internal/domain/service"
	"github.com/Badsnus/qrstudio/pkg/logger"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(service.NewQrService(logger.Nop(), dto.StandardDefaults), logger.Nop())
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.png")

	out, err := run(t, "", "generate", "https://example.com", "--out", path, "--border", "0", "--verify")
	require.NoError(t, err)
	assert.Equal(t, "QR code saved as "+path+"\n", out)
	assert.FileExists(t, path)

	out, err = run(t, "", "scan", path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com\n", out)
}

func TestGenerateLowContrastPrompt(t *testing.T) {
	dir := t.TempDir()
	declined := filepath.Join(dir, "declined.png")

	out, err := run(t, "n\n", "generate", "hello", "--qr-color", "#333333", "--bg-color", "#444444", "-o", declined)
	assert.ErrorIs(t, err, errorz.Aborted)
	assert.Contains(t, out, "Recommended minimum contrast ratio: 3:1")
	assert.Contains(t, out, "Do you want to continue anyway?")
	assert.NoFileExists(t, declined)

	accepted := filepath.Join(dir, "accepted.png")
	_, err = run(t, "yes\n", "generate", "hello", "--qr-color", "#333333", "--bg-color", "#444444", "-o", accepted)
	require.NoError(t, err)
	assert.FileExists(t, accepted)

	forced := filepath.Join(dir, "forced.png")
	out, err = run(t, "", "generate", "hello", "--qr-color", "#333333", "--bg-color", "#444444", "-o", forced, "-y")
	require.NoError(t, err)
	assert.NotContains(t, out, "Warning")
	assert.FileExists(t, forced)
}

func TestGenerateCommandErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.png")

	_, err := run(t, "", "generate", "hello", "--transparency", "2", "-o", path)
	assert.ErrorIs(t, err, errorz.InvalidParameter)

	_, err = run(t, "", "generate", "hello", "--qr-color", "black", "-o", path)
	assert.ErrorIs(t, err, errorz.InvalidParameter)

	_, err = run(t, "", "generate")
	assert.Error(t, err)
	assert.NoFileExists(t, path)
}

func TestContrastCommand(t *testing.T) {
	out, err := run(t, "", "contrast", "#000000", "#FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, "Contrast ratio: 21.0:1 (ok)\n", out)

	out, err = run(t, "", "contrast", "#333333", "#444444")
	require.NoError(t, err)
	assert.Contains(t, out, "(low contrast)")
}

func TestExecuteExitCode(t *testing.T) {
	root := NewRootCmd(service.NewQrService(logger.Nop(), dto.StandardDefaults), logger.Nop())
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"contrast", "#000000", "nope"})
	assert.Equal(t, 1, Execute(root, logger.Nop()))

	root.SetArgs([]string{"contrast", "#000000", "#ffffff"})
	assert.Equal(t, 0, Execute(root, logger.Nop()))
}
