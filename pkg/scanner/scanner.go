// Package scanner reads QR payloads back out of rendered images.
package scanner

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

// ScanFile opens an image file and decodes a QR code from it.
func ScanFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening image file: %v", errorz.InvalidImage, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("%w: decoding image: %v", errorz.InvalidImage, err)
	}

	return Scan(img)
}

// Scan decodes the QR code in img.
func Scan(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("%w: creating bitmap: %v", errorz.Unreadable, err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("%w: no QR code found in image: %v", errorz.Unreadable, err)
	}

	return result.GetText(), nil
}
