package render

import (
	"image"

	"github.com/swdee/go-cafvis/pose"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// Painter hands out canvases bound to a source image.  Every canvas must be
// closed before the next one is requested.
type Painter interface {
	ImageCanvas(img image.Image) (Canvas, error)
}

// Canvas is a drawing surface bound to a single image.  All coordinates are
// in the pixel space of that image.
type Canvas interface {
	// Heatmap overlays the plane pixel for pixel, NaN cells are left
	// untouched
	Heatmap(plane *mat.Dense, style HeatmapStyle)
	// Colorbar draws a legend for the colormap between vmin and vmax
	Colorbar(cmap Colormap, vmin, vmax float64)
	// WhiteScreen fades the image towards white by alpha
	WhiteScreen(alpha float64)
	// Annotations draws the pose skeletons with coordinates multiplied by
	// xyScale
	Annotations(anns []*pose.Annotation, xyScale float64)
	Arrows(arrows []Arrow, style VectorStyle)
	Boxes(boxes []Box, style VectorStyle)
	// Close releases the canvas
	Close() error
}

// Arrow is a vector drawn from From to To.  Value picks the color from the
// style's colormap.
type Arrow struct {
	From  r2.Vec
	To    r2.Vec
	Value float64
}

// Box is an axis aligned rectangle spanning Min to Max, drawn as an outline
type Box struct {
	Min   r2.Vec
	Max   r2.Vec
	Value float64
}

// HeatmapStyle defines how a scalar plane is colored and blended
type HeatmapStyle struct {
	Colormap Colormap
	// Min and Max are the values mapped to the ends of the colormap
	Min float64
	Max float64
	// Alpha is the opacity of the overlay
	Alpha float64
}

// VectorStyle defines how arrows and boxes are colored
type VectorStyle struct {
	Colormap  Colormap
	Min       float64
	Max       float64
	Thickness int
}
