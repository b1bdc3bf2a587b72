package colorutil

import (
	"fmt"
	"math"
)

// LowContrastThreshold is the minimum ratio considered safe for scanning.
const LowContrastThreshold = 3.0

// Advice is the outcome of comparing two colors.
type Advice struct {
	Ratio float64
	Low   bool
}

func (a Advice) String() string {
	return fmt.Sprintf("%.1f:1", a.Ratio)
}

func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c, in [0, 1].
func RelativeLuminance(c Color) float64 {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	b := linearize(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between a and b. The order of
// the arguments does not matter; the result is always >= 1.
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Advise classifies the pair against LowContrastThreshold. It only reports;
// callers decide whether a low ratio should stop them.
func Advise(a, b Color) Advice {
	ratio := ContrastRatio(a, b)
	return Advice{Ratio: ratio, Low: ratio < LowContrastThreshold}
}
