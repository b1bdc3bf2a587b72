package dto

import "github.com/Badsnus/qrstudio/pkg/colorutil"

// QRInput is what the user asked for. Nil pointers and empty strings mean
// "not given" and are filled from Defaults.
type QRInput struct {
	Data            string
	QRColor         string
	BackgroundColor string
	LogoPath        string
	Output          string
	Transparency    *float64
	BorderSize      *int
	ModuleSize      *int
	BorderModules   *int
	RecoveryLevel   string
	Verify          bool
}

// Defaults holds the values used when the user leaves an input empty.
type Defaults struct {
	QRColor         string
	BackgroundColor string
	Output          string
	Transparency    float64
	BorderSize      int
	ModuleSize      int
	BorderModules   int
	RecoveryLevel   string
}

// StandardDefaults are the values the tool has always fallen back to.
var StandardDefaults = Defaults{
	QRColor:         "#000000",
	BackgroundColor: "#ffffff",
	Output:          "qr_code.png",
	Transparency:    0.7,
	BorderSize:      20,
	ModuleSize:      10,
	BorderModules:   4,
	RecoveryLevel:   "H",
}

// WithDefaults returns a copy of in with every missing field taken from d.
func (in QRInput) WithDefaults(d Defaults) QRInput {
	if in.QRColor == "" {
		in.QRColor = d.QRColor
	}
	if in.BackgroundColor == "" {
		in.BackgroundColor = d.BackgroundColor
	}
	if in.Output == "" {
		in.Output = d.Output
	}
	if in.Transparency == nil {
		in.Transparency = &d.Transparency
	}
	if in.BorderSize == nil {
		in.BorderSize = &d.BorderSize
	}
	if in.ModuleSize == nil {
		in.ModuleSize = &d.ModuleSize
	}
	if in.BorderModules == nil {
		in.BorderModules = &d.BorderModules
	}
	if in.RecoveryLevel == "" {
		in.RecoveryLevel = d.RecoveryLevel
	}
	return in
}

type QRResult struct {
	Path     string
	Width    int
	Height   int
	Version  int
	Contrast colorutil.Advice
	Verified bool
}
