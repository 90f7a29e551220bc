package config

import (
	"image/color"

	"gonum.org/v1/plot/vg"
)

// Style is the figure styling shared by both drivers. It is passed by value
// to the presenter; the numeric packages never see it.
type Style struct {
	Width, Height vg.Length
	LineWidth     vg.Length
	ThickWidth    vg.Length
	Dashes        []vg.Length

	Primary   color.Color
	Secondary color.Color
	Reference color.Color
	Envelope  color.Color
	Fill      color.Color
}

// DefaultStyle returns a fresh copy of the default style.
func DefaultStyle() Style {
	return Style{
		Width:      7 * vg.Inch,
		Height:     9 * vg.Inch,
		LineWidth:  vg.Points(2),
		ThickWidth: vg.Points(3),
		Dashes:     []vg.Length{vg.Points(6), vg.Points(4)},

		Primary:   color.RGBA{R: 0, G: 128, B: 0, A: 255},
		Secondary: color.RGBA{R: 106, G: 90, B: 205, A: 255},
		Reference: color.Black,
		Envelope:  color.RGBA{R: 220, G: 0, B: 0, A: 255},
		Fill:      color.RGBA{R: 31, G: 119, B: 180, A: 100},
	}
}
