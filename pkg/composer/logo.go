package composer

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/fogleman/gg"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

// LoadLogo reads the logo at path. Any image format registered with the image
// package is accepted.
func LoadLogo(path string) (image.Image, error) {
	logo, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load logo %s: %v", errorz.InvalidImage, path, err)
	}
	return logo, nil
}
