package service

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
	"github.com/Badsnus/qrstudio/internal/domain/dto"
	"github.com/Badsnus/qrstudio/pkg/colorutil"
	"github.com/Badsnus/qrstudio/pkg/logger"
	"github.com/Badsnus/qrstudio/pkg/scanner"
)

func newService() *QrService {
	return NewQrService(logger.Nop(), dto.StandardDefaults)
}

func TestGenerateExampleURL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "example.png")
	border := 20

	res, err := newService().Generate(dto.QRInput{
		Data:            "https://example.com",
		QRColor:         "#000000",
		BackgroundColor: "#FFFFFF",
		BorderSize:      &border,
		Output:          out,
		Verify:          true,
	}, func(colorutil.Advice) bool {
		t.Fatal("no warning expected for black on white")
		return false
	})
	require.NoError(t, err)

	assert.InDelta(t, 21.0, res.Contrast.Ratio, 1e-9)
	assert.False(t, res.Contrast.Low)
	assert.True(t, res.Verified)
	assert.Equal(t, out, res.Path)
	assert.FileExists(t, out)

	text, err := scanner.ScanFile(out)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", text)
}

func TestGenerateLowContrastDeclined(t *testing.T) {
	out := filepath.Join(t.TempDir(), "low.png")
	var asked colorutil.Advice

	_, err := newService().Generate(dto.QRInput{
		Data:            "hello",
		QRColor:         "#333333",
		BackgroundColor: "#444444",
		Output:          out,
	}, func(advice colorutil.Advice) bool {
		asked = advice
		return false
	})
	assert.ErrorIs(t, err, errorz.Aborted)
	assert.True(t, asked.Low)
	assert.Less(t, asked.Ratio, colorutil.LowContrastThreshold)
	assert.NoFileExists(t, out)
}

func TestGenerateLowContrastAccepted(t *testing.T) {
	out := filepath.Join(t.TempDir(), "low.png")

	res, err := newService().Generate(dto.QRInput{
		Data:            "hello",
		QRColor:         "#333333",
		BackgroundColor: "#444444",
		Output:          out,
	}, nil)
	require.NoError(t, err)
	assert.True(t, res.Contrast.Low)
	assert.FileExists(t, out)
}

func TestGenerateWithLogo(t *testing.T) {
	dir := t.TempDir()
	logoPath := filepath.Join(dir, "logo.png")
	logo := image.NewNRGBA(image.Rect(0, 0, 300, 120))
	for i := 0; i < len(logo.Pix); i += 4 {
		logo.Pix[i], logo.Pix[i+3] = 255, 255
	}
	f, err := os.Create(logoPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, logo))
	require.NoError(t, f.Close())

	res, err := newService().Generate(dto.QRInput{
		Data:     "https://example.com",
		LogoPath: logoPath,
		Output:   filepath.Join(dir, "with_logo.png"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, res.Width, res.Height)

	plain, err := newService().Generate(dto.QRInput{
		Data:   "https://example.com",
		Output: filepath.Join(dir, "plain.png"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, plain.Width, res.Width)
}

func TestGenerateDefaults(t *testing.T) {
	out := filepath.Join(t.TempDir(), "defaults.png")

	res, err := newService().Generate(dto.QRInput{Data: "hello", Output: out}, nil)
	require.NoError(t, err)
	// version 1 at level H, 10px modules, 4 quiet modules, 20px border
	assert.Equal(t, 1, res.Version)
	assert.Equal(t, (21+8)*10+40, res.Width)
}

func TestGenerateErrors(t *testing.T) {
	dir := t.TempDir()
	bad := 1.5
	negative := -3

	cases := map[string]struct {
		in   dto.QRInput
		kind error
	}{
		"empty data":       {dto.QRInput{Data: "  "}, errorz.InvalidParameter},
		"bad color":        {dto.QRInput{Data: "x", QRColor: "red"}, errorz.InvalidParameter},
		"bad transparency": {dto.QRInput{Data: "x", Transparency: &bad}, errorz.InvalidParameter},
		"negative border":  {dto.QRInput{Data: "x", BorderSize: &negative}, errorz.InvalidParameter},
		"bad level":        {dto.QRInput{Data: "x", RecoveryLevel: "Z"}, errorz.InvalidParameter},
		"bad extension":    {dto.QRInput{Data: "x", Output: filepath.Join(dir, "x.svg")}, errorz.InvalidParameter},
		"missing logo":     {dto.QRInput{Data: "x", LogoPath: filepath.Join(dir, "nope.png")}, errorz.InvalidImage},
		"too long":         {dto.QRInput{Data: strings.Repeat("a", 4000)}, errorz.EncodingFailure},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := tc.in
			if in.Output == "" {
				in.Output = filepath.Join(dir, "out.png")
			}
			_, err := newService().Generate(in, nil)
			assert.ErrorIs(t, err, tc.kind)
			assert.NoFileExists(t, filepath.Join(dir, "out.png"))
		})
	}
}

func TestContrast(t *testing.T) {
	advice, err := newService().Contrast("#333333", "#444444")
	require.NoError(t, err)
	assert.True(t, advice.Low)

	_, err = newService().Contrast("#333333", "444444")
	assert.ErrorIs(t, err, errorz.InvalidParameter)
}

func TestScan(t *testing.T) {
	out := filepath.Join(t.TempDir(), "scan.png")
	_, err := newService().Generate(dto.QRInput{Data: "scan me", Output: out}, nil)
	require.NoError(t, err)

	text, err := newService().Scan(out)
	require.NoError(t, err)
	assert.Equal(t, "scan me", text)
}
