package threshold

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/bmp-binarize/internal/bitmap"
)

// Mode selects the level function used to grade a pixel against the cutoff.
type Mode string

const (
	// ModeMean grades pixels by the truncating mean (r+g+b)/3.
	ModeMean Mode = "mean"

	// ModeLuma grades pixels by CIE Lab lightness scaled to 0-255.
	ModeLuma Mode = "luma"
)

// ParseMode validates a mode name from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMean, ModeLuma:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown threshold mode %q (want mean or luma)", s)
	}
}

// Apply binarizes a single pixel in place using the mean level: if
// (r+g+b)/3 < cutoff the pixel becomes black (0,0,0), otherwise white
// (255,255,255). The sum is computed in 16 bits and the division truncates,
// so a pixel at exactly the cutoff is white.
func Apply(p *bitmap.Pixel, cutoff uint8) {
	if meanLevel(*p) < cutoff {
		p.B, p.G, p.R = 0, 0, 0
	} else {
		p.B, p.G, p.R = 255, 255, 255
	}
}

// ApplyMode is Apply with a selectable level function.
func ApplyMode(p *bitmap.Pixel, cutoff uint8, mode Mode) {
	if Level(*p, mode) < cutoff {
		p.B, p.G, p.R = 0, 0, 0
	} else {
		p.B, p.G, p.R = 255, 255, 255
	}
}

// ApplyRow binarizes every pixel of one grid row in place. Rows are
// independent slices, so concurrent calls on distinct rows never race.
func ApplyRow(row []bitmap.Pixel, cutoff uint8, mode Mode) {
	for i := range row {
		ApplyMode(&row[i], cutoff, mode)
	}
}

// Level returns the 0-255 gray level of p under the given mode.
func Level(p bitmap.Pixel, mode Mode) uint8 {
	if mode == ModeLuma {
		return lumaLevel(p)
	}
	return meanLevel(p)
}

func meanLevel(p bitmap.Pixel) uint8 {
	return uint8((uint16(p.R) + uint16(p.G) + uint16(p.B)) / 3)
}

func lumaLevel(p bitmap.Pixel) uint8 {
	c := colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
	l, _, _ := c.Lab()
	// Lab L is 0..1 here; scale and round to the 8-bit level range.
	v := l*255 + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
