package render

import (
	"image/color"
	"math"
)

// Colormap maps a scalar value onto a color by linear interpolation between
// evenly spaced color stops
type Colormap struct {
	Name  string
	stops []color.RGBA
}

// NewColormap returns a colormap through the given stops from low to high
func NewColormap(name string, stops ...color.RGBA) Colormap {
	return Colormap{Name: name, stops: stops}
}

// Solid returns a colormap that maps every value to clr
func Solid(clr color.RGBA) Colormap {
	return Colormap{Name: "solid", stops: []color.RGBA{clr}}
}

// At returns the color for v with vmin and vmax mapped to the first and last
// stop.  Values outside the range are clamped.  NaN values have no color and
// return false.
func (c Colormap) At(v, vmin, vmax float64) (color.RGBA, bool) {

	if math.IsNaN(v) || len(c.stops) == 0 {
		return color.RGBA{}, false
	}

	if len(c.stops) == 1 {
		return c.stops[0], true
	}

	t := 1.0

	if vmax > vmin {
		t = (v - vmin) / (vmax - vmin)
	}

	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	pos := t * float64(len(c.stops)-1)
	i := int(pos)

	if i >= len(c.stops)-1 {
		return c.stops[len(c.stops)-1], true
	}

	frac := pos - float64(i)
	lo, hi := c.stops[i], c.stops[i+1]

	return color.RGBA{
		R: lerp(lo.R, hi.R, frac),
		G: lerp(lo.G, hi.G, frac),
		B: lerp(lo.B, hi.B, frac),
		A: 255,
	}, true
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

var (
	// Blues is a sequential white to dark blue colormap
	Blues = NewColormap("Blues",
		color.RGBA{R: 247, G: 251, B: 255, A: 255}, // #F7FBFF
		color.RGBA{R: 222, G: 235, B: 247, A: 255}, // #DEEBF7
		color.RGBA{R: 198, G: 219, B: 239, A: 255}, // #C6DBEF
		color.RGBA{R: 158, G: 202, B: 225, A: 255}, // #9ECAE1
		color.RGBA{R: 107, G: 174, B: 214, A: 255}, // #6BAED6
		color.RGBA{R: 66, G: 146, B: 198, A: 255},  // #4292C6
		color.RGBA{R: 33, G: 113, B: 181, A: 255},  // #2171B5
		color.RGBA{R: 8, G: 81, B: 156, A: 255},    // #08519C
		color.RGBA{R: 8, G: 48, B: 107, A: 255},    // #08306B
	)

	// Greens is a sequential white to dark green colormap
	Greens = NewColormap("Greens",
		color.RGBA{R: 247, G: 252, B: 245, A: 255}, // #F7FCF5
		color.RGBA{R: 229, G: 245, B: 224, A: 255}, // #E5F5E0
		color.RGBA{R: 199, G: 233, B: 192, A: 255}, // #C7E9C0
		color.RGBA{R: 161, G: 217, B: 155, A: 255}, // #A1D99B
		color.RGBA{R: 116, G: 196, B: 118, A: 255}, // #74C476
		color.RGBA{R: 65, G: 171, B: 93, A: 255},   // #41AB5D
		color.RGBA{R: 35, G: 139, B: 69, A: 255},   // #238B45
		color.RGBA{R: 0, G: 109, B: 44, A: 255},    // #006D2C
		color.RGBA{R: 0, G: 68, B: 27, A: 255},     // #00441B
	)

	// Oranges is a sequential white to dark orange colormap
	Oranges = NewColormap("Oranges",
		color.RGBA{R: 255, G: 245, B: 235, A: 255}, // #FFF5EB
		color.RGBA{R: 254, G: 230, B: 206, A: 255}, // #FEE6CE
		color.RGBA{R: 253, G: 208, B: 162, A: 255}, // #FDD0A2
		color.RGBA{R: 253, G: 174, B: 107, A: 255}, // #FDAE6B
		color.RGBA{R: 253, G: 141, B: 60, A: 255},  // #FD8D3C
		color.RGBA{R: 241, G: 105, B: 19, A: 255},  // #F16913
		color.RGBA{R: 217, G: 72, B: 1, A: 255},    // #D94801
		color.RGBA{R: 166, G: 54, B: 3, A: 255},    // #A63603
		color.RGBA{R: 127, G: 39, B: 4, A: 255},    // #7F2704
	)

	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}
	Pink   = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// postPalette are the colors used for the skeleton/pose
	posePalette = []color.RGBA{
		{R: 255, G: 128, B: 0, A: 255},
		{R: 255, G: 153, B: 51, A: 255},
		{R: 255, G: 178, B: 102, A: 255},
		{R: 230, G: 230, B: 0, A: 255},
		{R: 255, G: 153, B: 255, A: 255},
		{R: 153, G: 204, B: 255, A: 255},
		{R: 255, G: 102, B: 255, A: 255},
		{R: 255, G: 51, B: 255, A: 255},
		{R: 102, G: 178, B: 255, A: 255},
		{R: 51, G: 153, B: 255, A: 255},
		{R: 255, G: 153, B: 153, A: 255},
		{R: 255, G: 102, B: 102, A: 255},
		{R: 255, G: 51, B: 51, A: 255},
		{R: 153, G: 255, B: 153, A: 255},
		{R: 102, G: 255, B: 102, A: 255},
		{R: 51, G: 255, B: 51, A: 255},
		{R: 0, G: 255, B: 0, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
		{R: 255, G: 0, B: 0, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}

	// keyPointColors are the joint colors of the COCO keypoints
	keyPointColors = []color.RGBA{
		posePalette[16], posePalette[16], posePalette[16], posePalette[16], posePalette[16],
		posePalette[9], posePalette[9], posePalette[9], posePalette[9], posePalette[9],
		posePalette[9], posePalette[0], posePalette[0], posePalette[0], posePalette[0],
		posePalette[0], posePalette[0],
	}

	// limbColors are the line colors of the COCO skeleton connections
	limbColors = []color.RGBA{
		posePalette[0], posePalette[0], posePalette[0], posePalette[0], posePalette[7],
		posePalette[7], posePalette[7], posePalette[9], posePalette[9], posePalette[9],
		posePalette[9], posePalette[9], posePalette[16], posePalette[16], posePalette[16],
		posePalette[16], posePalette[16], posePalette[16], posePalette[16],
	}
)
