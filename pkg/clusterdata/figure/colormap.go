package figure

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ViridisHex are evenly spaced stops of the viridis color map, dark to light.
var ViridisHex = []string{
	"#440154", "#482777", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// viridisControls anchors the luminance ramp; lightness rises monotonically.
var viridisControls = []color.Color{
	color.NRGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff},
	color.NRGBA{R: 0x3b, G: 0x52, B: 0x8b, A: 0xff},
	color.NRGBA{R: 0x21, G: 0x91, B: 0x8c, A: 0xff},
	color.NRGBA{R: 0x5e, G: 0xc9, B: 0x62, A: 0xff},
	color.NRGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff},
}

// LabelColorMap returns a perceptually uniform color map spanning the
// labels lo..hi. A single-label range is widened so the map stays valid.
func LabelColorMap(lo, hi int) (palette.ColorMap, error) {
	cmap, err := moreland.NewLuminance(viridisControls)
	if err != nil {
		return nil, err
	}
	if hi <= lo {
		hi = lo + 1
	}
	cmap.SetMin(float64(lo))
	cmap.SetMax(float64(hi))
	return cmap, nil
}
