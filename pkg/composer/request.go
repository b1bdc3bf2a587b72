package composer

import (
	"image"

	"github.com/Badsnus/qrstudio/pkg/colorutil"
	qr "github.com/Badsnus/qrstudio/pkg/qrcode"
)

// Request describes a single composition. Logo is optional.
type Request struct {
	Bitmap          *qr.Bitmap
	QRColor         colorutil.Color
	BackgroundColor colorutil.Color
	Logo            image.Image
	Transparency    float64 // Opacity of the QR layer over the logo, 0..1
	BorderSize      int     // White margin around the code, in pixels
}
