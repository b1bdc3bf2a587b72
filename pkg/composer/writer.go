package composer

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

// FormatFor reports the encoding picked for path from its extension.
func FormatFor(path string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: unsupported output format %q", errorz.InvalidParameter, filepath.Ext(path))
	}
	return format, nil
}

// WriteToFile encodes img into path using the format implied by its extension.
// The image is written to a temporary file next to path and renamed into place,
// so a failed write never leaves a partial file behind.
func WriteToFile(img image.Image, path string) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err = ensureOutputDir(dir); err != nil {
		return err
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", errorz.IOFailure, path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err = imaging.Encode(f, img, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: failed to encode %s: %v", errorz.IOFailure, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: failed to write %s: %v", errorz.IOFailure, path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("%w: failed to move %s into place: %v", errorz.IOFailure, path, err)
	}
	return nil
}

func ensureOutputDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return fmt.Errorf("%w: failed to create output directory: %v", errorz.IOFailure, err)
		}
	}
	return nil
}

// Delete removes a previously written file.
func Delete(filePath string) error {
	err := os.Remove(filePath)
	if err != nil {
		return fmt.Errorf("%w: failed to delete QR code file: %v", errorz.IOFailure, err)
	}
	return nil
}
