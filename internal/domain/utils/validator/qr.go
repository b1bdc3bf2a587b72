package validator

import (
	"math"
	"strings"

	"github.com/disintegration/imaging"
)

func Data(data string) bool {
	return strings.TrimSpace(data) != ""
}

// OutputPath reports whether the file extension maps to an image encoder.
func OutputPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}

func Transparency(t float64) bool {
	return !math.IsNaN(t) && t >= 0 && t <= 1
}

func BorderSize(size int) bool {
	return size >= 0
}
