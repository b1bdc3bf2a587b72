package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/Badsnus/qrstudio/internal/domain/common/errorz"
)

type RecoveryLevel = qrcode.RecoveryLevel

const (
	LevelL = qrcode.Low
	LevelM = qrcode.Medium
	LevelQ = qrcode.High
	LevelH = qrcode.Highest
)

// ParseRecoveryLevel maps the QR standard letters L, M, Q and H onto the encoder levels.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: unknown error correction level %q (want L, M, Q or H)", errorz.InvalidParameter, s)
}

// Bitmap is an encoded QR symbol scaled to pixels. The quiet zone is part of
// the grid. It is never modified after Encode returns it.
type Bitmap struct {
	modules       [][]bool
	moduleSize    int
	borderModules int
	version       int
}

// Encode turns data into a module bitmap. The version is picked automatically
// for the given recovery level.
func Encode(data string, level RecoveryLevel, moduleSize, borderModules int) (*Bitmap, error) {
	if moduleSize < 1 {
		return nil, fmt.Errorf("%w: module size must be at least 1px, got %d", errorz.InvalidParameter, moduleSize)
	}
	if borderModules < 0 {
		return nil, fmt.Errorf("%w: border must not be negative, got %d modules", errorz.InvalidParameter, borderModules)
	}

	qr, err := qrcode.New(data, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorz.EncodingFailure, err)
	}
	// Encoder's own quiet zone is fixed at 4 modules, ours is configurable
	qr.DisableBorder = true
	symbol := qr.Bitmap()

	n := len(symbol) + 2*borderModules
	modules := make([][]bool, n)
	for y := range modules {
		modules[y] = make([]bool, n)
	}
	for y, row := range symbol {
		copy(modules[y+borderModules][borderModules:], row)
	}

	return &Bitmap{
		modules:       modules,
		moduleSize:    moduleSize,
		borderModules: borderModules,
		version:       qr.VersionNumber,
	}, nil
}

// Modules is the side length of the grid in modules, quiet zone included.
func (b *Bitmap) Modules() int {
	return len(b.modules)
}

func (b *Bitmap) ModuleSize() int {
	return b.moduleSize
}

func (b *Bitmap) BorderModules() int {
	return b.borderModules
}

// Version is the QR version the encoder chose (1-40).
func (b *Bitmap) Version() int {
	return b.version
}

// Size is the side length in pixels.
func (b *Bitmap) Size() int {
	return len(b.modules) * b.moduleSize
}

// Dark reports whether the pixel at (x, y) belongs to a dark module.
func (b *Bitmap) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Size() || y >= b.Size() {
		return false
	}
	return b.modules[y/b.moduleSize][x/b.moduleSize]
}
