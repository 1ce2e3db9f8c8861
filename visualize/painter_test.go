package visualize

import (
	"image"

	cafvis "github.com/swdee/go-cafvis"
	"github.com/swdee/go-cafvis/pose"
	"github.com/swdee/go-cafvis/render"
	"gonum.org/v1/gonum/mat"
)

// recordingPainter is a render.Painter that records every primitive call
type recordingPainter struct {
	calls      []string
	canvases   int
	open       int
	imageSizes []image.Point

	heatmaps    []*mat.Dense
	arrows      [][]render.Arrow
	arrowStyles []render.VectorStyle
	boxes       [][]render.Box
	annotations [][]*pose.Annotation
	annScales   []float64

	// acquireErr is returned for the canvas with the matching number
	acquireErr   error
	acquireErrAt int
	closeErr     error
	panicOn      string
}

func (p *recordingPainter) ImageCanvas(img image.Image) (render.Canvas, error) {
	p.calls = append(p.calls, "ImageCanvas")
	p.canvases++

	if p.acquireErr != nil && p.canvases == p.acquireErrAt {
		return nil, p.acquireErr
	}

	p.open++
	p.imageSizes = append(p.imageSizes, img.Bounds().Size())

	return &recordingCanvas{p: p}, nil
}

// primitives returns the calls made on canvases
func (p *recordingPainter) primitives() []string {
	var out []string
	for _, c := range p.calls {
		if c != "ImageCanvas" && c != "Close" {
			out = append(out, c)
		}
	}
	return out
}

type recordingCanvas struct {
	p *recordingPainter
}

func (c *recordingCanvas) record(op string) {
	c.p.calls = append(c.p.calls, op)
	if c.p.panicOn == op {
		panic("drawing failed")
	}
}

func (c *recordingCanvas) Heatmap(plane *mat.Dense, _ render.HeatmapStyle) {
	c.p.heatmaps = append(c.p.heatmaps, plane)
	c.record("Heatmap")
}

func (c *recordingCanvas) Colorbar(_ render.Colormap, _, _ float64) {
	c.record("Colorbar")
}

func (c *recordingCanvas) WhiteScreen(_ float64) {
	c.record("WhiteScreen")
}

func (c *recordingCanvas) Annotations(anns []*pose.Annotation, xyScale float64) {
	c.p.annotations = append(c.p.annotations, anns)
	c.p.annScales = append(c.p.annScales, xyScale)
	c.record("Annotations")
}

func (c *recordingCanvas) Arrows(arrows []render.Arrow, style render.VectorStyle) {
	c.p.arrows = append(c.p.arrows, arrows)
	c.p.arrowStyles = append(c.p.arrowStyles, style)
	c.record("Arrows")
}

func (c *recordingCanvas) Boxes(boxes []render.Box, _ render.VectorStyle) {
	c.p.boxes = append(c.p.boxes, boxes)
	c.record("Boxes")
}

func (c *recordingCanvas) Close() error {
	c.p.calls = append(c.p.calls, "Close")
	c.p.open--
	return c.p.closeErr
}

// filled returns a rows x cols plane with every cell set to v
func filled(rows, cols int, v float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(rows, cols, data)
}

// constChannel returns a channel of n connections with comps components
func constChannel(n, comps, rows, cols int, v float64) cafvis.Channel {
	ch := make(cafvis.Channel, n)
	for i := range ch {
		ch[i] = make([]*mat.Dense, comps)
		for k := range ch[i] {
			ch[i][k] = filled(rows, cols, v)
		}
	}
	return ch
}

// targetField returns a target layout field for n connections.  Every
// confidence is 1, regressions are zero offsets and scales are 1.
func targetField(n, rows, cols int) cafvis.Field {
	return cafvis.Field{
		constChannel(n+1, 1, rows, cols, 1.0),
		constChannel(n, 6, rows, cols, 0.0),
		constChannel(n, 6, rows, cols, 0.0),
		constChannel(n, 1, rows, cols, 1.0),
		constChannel(n, 1, rows, cols, 1.0),
	}
}

// predictedField returns a predicted layout field for n connections with
// every confidence at 0.9.  Positions 2 and 5 are not used by the
// visualizer and are filled with NaN.
func predictedField(n, rows, cols int) cafvis.Field {
	return cafvis.Field{
		constChannel(n, 1, rows, cols, 0.9),
		constChannel(n, 6, rows, cols, 1.0),
		constChannel(n, 2, rows, cols, nan),
		constChannel(n, 6, rows, cols, 2.0),
		constChannel(n, 1, rows, cols, 1.0),
		constChannel(n, 1, rows, cols, nan),
		constChannel(n, 1, rows, cols, 1.0),
	}
}

// testImage returns a blank image of w x h
func testImage(w, h int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}
