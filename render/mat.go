package render

import (
	"fmt"
	"image"
	"math"

	"github.com/swdee/go-cafvis/pose"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// colorbarWidth is the width in pixels of the legend strip
const colorbarWidth = 12

// MatPainter is a Painter that draws onto GoCV Mats
type MatPainter struct {
	// Sink receives the finished image of every canvas when it is closed.
	// The Mat is released after Sink returns so it must be cloned if kept.
	Sink func(img *gocv.Mat) error
	// Font used for colorbar labels
	Font Font
	// LineThickness of skeleton lines
	LineThickness int
}

// NewMatPainter returns a MatPainter passing finished canvases to sink
func NewMatPainter(sink func(img *gocv.Mat) error) *MatPainter {
	return &MatPainter{
		Sink:          sink,
		Font:          DefaultFont(),
		LineThickness: 2,
	}
}

// ImageCanvas copies img into a BGR Mat and returns a canvas drawing onto it
func (p *MatPainter) ImageCanvas(img image.Image) (Canvas, error) {

	m, err := gocv.ImageToMatRGB(img)

	if err != nil {
		return nil, fmt.Errorf("error converting image to Mat: %w", err)
	}

	return &matCanvas{painter: p, img: m}, nil
}

// matCanvas is a Canvas backed by a gocv.Mat in BGR byte order
type matCanvas struct {
	painter *MatPainter
	img     gocv.Mat
	closed  bool
}

// Heatmap blends the colormapped plane over the image.  It is too slow to
// manipulate pixel by pixel over CGO, so the bytes are copied out, blended
// and copied back.
func (c *matCanvas) Heatmap(plane *mat.Dense, style HeatmapStyle) {

	width := c.img.Cols()
	height := c.img.Rows()

	rows, cols := plane.Dims()
	rows = minInt(rows, height)
	cols = minInt(cols, width)

	imgData := c.img.ToBytes()
	alpha := float32(style.Alpha)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {

			clr, ok := style.Colormap.At(plane.At(y, x), style.Min, style.Max)

			if !ok {
				continue
			}

			// calculate position in the byte slice
			pixelPos := y*width*3 + x*3

			b, g, r := imgData[pixelPos+0], imgData[pixelPos+1], imgData[pixelPos+2]

			// calculate blended colors based on alpha transparency
			imgData[pixelPos+0] = uint8(float32(b)*(1-alpha) + float32(clr.B)*alpha)
			imgData[pixelPos+1] = uint8(float32(g)*(1-alpha) + float32(clr.G)*alpha)
			imgData[pixelPos+2] = uint8(float32(r)*(1-alpha) + float32(clr.R)*alpha)
		}
	}

	// copy back to the original mat, leaving it untouched if the blended
	// bytes can not be wrapped
	tmpImg, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, imgData)

	if err != nil {
		return
	}

	defer tmpImg.Close()
	tmpImg.CopyTo(&c.img)
}

// Colorbar draws a vertical legend strip along the right edge of the image
// with the range labelled at both ends
func (c *matCanvas) Colorbar(cmap Colormap, vmin, vmax float64) {

	width := c.img.Cols()
	height := c.img.Rows()

	left := width - colorbarWidth - 4
	top := height / 10
	bottom := height - height/10

	if left < 0 || bottom <= top {
		return
	}

	for y := top; y <= bottom; y++ {
		// highest value at the top
		v := vmax - (vmax-vmin)*float64(y-top)/float64(maxInt(bottom-top, 1))
		clr, _ := cmap.At(v, vmin, vmax)
		gocv.Line(&c.img, image.Pt(left, y), image.Pt(left+colorbarWidth, y), clr, 1)
	}

	gocv.Rectangle(&c.img, image.Rect(left, top, left+colorbarWidth, bottom),
		Black, 1)

	font := c.painter.Font

	for _, lbl := range []struct {
		v float64
		y int
	}{{vmax, top - font.BottomPad}, {vmin, bottom + font.BottomPad*2}} {

		text := fmt.Sprintf("%.1f", lbl.v)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)
		pos := image.Pt(left+colorbarWidth-textSize.X, lbl.y)

		gocv.PutTextWithParams(&c.img, text, pos, font.Face, font.Scale,
			font.Color, font.Thickness, font.LineType, false)
	}
}

// WhiteScreen fades the image towards white
func (c *matCanvas) WhiteScreen(alpha float64) {

	white := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 255, 255, 0),
		c.img.Rows(), c.img.Cols(), gocv.MatTypeCV8UC3)
	defer white.Close()

	gocv.AddWeighted(c.img, 1-alpha, white, alpha, 0, &c.img)
}

// Annotations draws the pose skeletons
func (c *matCanvas) Annotations(anns []*pose.Annotation, xyScale float64) {
	PoseAnnotations(&c.img, anns, xyScale, c.painter.LineThickness)
}

// Arrows draws every arrow colored by its value
func (c *matCanvas) Arrows(arrows []Arrow, style VectorStyle) {

	for _, a := range arrows {
		clr, ok := style.Colormap.At(a.Value, style.Min, style.Max)

		if !ok {
			continue
		}

		gocv.ArrowedLine(&c.img, toPoint(a.From), toPoint(a.To), clr,
			maxInt(style.Thickness, 1))
	}
}

// Boxes draws every box colored by its value
func (c *matCanvas) Boxes(boxes []Box, style VectorStyle) {

	thickness := maxInt(style.Thickness, 1)

	for _, b := range boxes {
		clr, ok := style.Colormap.At(b.Value, style.Min, style.Max)

		if !ok {
			continue
		}

		rect := image.Rectangle{Min: toPoint(b.Min), Max: toPoint(b.Max)}
		gocv.Rectangle(&c.img, rect.Canon(), clr, thickness)
	}
}

// Close passes the finished image to the painter's sink and releases the Mat
func (c *matCanvas) Close() error {

	if c.closed {
		return nil
	}

	c.closed = true
	defer c.img.Close()

	if c.painter.Sink == nil {
		return nil
	}

	if err := c.painter.Sink(&c.img); err != nil {
		return fmt.Errorf("error in canvas sink: %w", err)
	}

	return nil
}

func toPoint(v r2.Vec) image.Point {
	return image.Pt(int(math.Round(v.X)), int(math.Round(v.Y)))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
