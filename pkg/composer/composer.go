package composer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

// borderColor fills the margin around every composed image.
var borderColor color.Color = color.White

// Compose renders the request into a new image. Nothing in req is modified.
func Compose(req Request) (*image.NRGBA, error) {
	if req.Bitmap == nil {
		return nil, fmt.Errorf("%w: no qr bitmap to compose", errorz.InvalidParameter)
	}
	if math.IsNaN(req.Transparency) || req.Transparency < 0 || req.Transparency > 1 {
		return nil, fmt.Errorf("%w: transparency must be within [0, 1], got %v", errorz.InvalidParameter, req.Transparency)
	}
	if req.BorderSize < 0 {
		return nil, fmt.Errorf("%w: border size must not be negative, got %d", errorz.InvalidParameter, req.BorderSize)
	}

	layer := paint(req)

	var composed *image.NRGBA
	if req.Logo != nil {
		size := layer.Bounds().Size()
		// Stretched, not letterboxed: the logo always covers the whole code
		logo := resize.Resize(uint(size.X), uint(size.Y), req.Logo, resize.Lanczos3)
		composed = imaging.Overlay(logo, layer, image.Pt(0, 0), req.Transparency)
	} else {
		composed = imaging.Clone(layer)
	}

	b := req.BorderSize
	canvas := imaging.New(composed.Rect.Dx()+2*b, composed.Rect.Dy()+2*b, borderColor)
	return imaging.Overlay(canvas, composed, image.Pt(b, b), 1), nil
}

// paint draws the bitmap with the request colors onto an opaque layer.
func paint(req Request) image.Image {
	size := req.Bitmap.Size()
	dc := gg.NewContext(size, size)

	dc.SetColor(req.BackgroundColor)
	dc.Clear()

	dc.SetColor(req.QRColor)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if req.Bitmap.Dark(x, y) {
				dc.SetPixel(x, y)
			}
		}
	}

	return dc.Image()
}
