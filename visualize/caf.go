package visualize

import (
	"errors"
	"fmt"
	"image"

	cafvis "github.com/swdee/go-cafvis"
	"github.com/swdee/go-cafvis/pose"
	"github.com/swdee/go-cafvis/preprocess"
	"github.com/swdee/go-cafvis/render"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrMissingKeypoints is returned when targets are visualized without
	// configured keypoint names
	ErrMissingKeypoints = errors.New("keypoints are required to visualize targets")
	// ErrMissingSkeleton is returned when targets are visualized without a
	// configured skeleton
	ErrMissingSkeleton = errors.New("skeleton is required to visualize targets")
)

const (
	// heatmapAlpha is the opacity of background and confidence heatmaps
	heatmapAlpha = 0.9
	// whiteScreenAlpha fades the image behind the regression layer
	whiteScreenAlpha = 0.5
)

// marginColormap colors margin boxes
var marginColormap = render.Solid(render.Black)

// CAF renders debug layers of a composite association field head for a
// subset of its skeleton connections
type CAF struct {
	params   CAFParams
	headName string
	indices  []int
	painter  render.Painter
	log      *zap.Logger
}

// NewCAF returns a visualizer for the head drawing the connections in
// indices with painter.  A nil logger disables logging.
func NewCAF(headName string, indices []int, p CAFParams, painter render.Painter,
	logger *zap.Logger) (*CAF, error) {

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid CAF params: %w", err)
	}

	if painter == nil {
		return nil, errors.New("painter is required")
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	logger = logger.With(zap.String("head", headName))
	logger.Debug("CAF visualizer", zap.Ints("indices", indices))

	// keep a private copy so the configuration can not change under us
	p.Keypoints = append([]string(nil), p.Keypoints...)
	p.Skeleton = append(pose.Skeleton(nil), p.Skeleton...)

	return &CAF{
		params:   p,
		headName: headName,
		indices:  append([]int(nil), indices...),
		painter:  painter,
		log:      logger,
	}, nil
}

// Params returns a copy of the configuration the visualizer was built with
func (c *CAF) Params() CAFParams {
	p := c.params
	p.Keypoints = append([]string(nil), c.params.Keypoints...)
	p.Skeleton = append(pose.Skeleton(nil), c.params.Skeleton...)
	return p
}

// HeadName returns the name of the head being visualized
func (c *CAF) HeadName() string {
	return c.headName
}

// VisualizeTargets renders the ground truth field of a training sample over
// img.  An annotation is built for every keypoint set using the configured
// keypoints and skeleton.
func (c *CAF) VisualizeTargets(img image.Image, field cafvis.Field,
	keypointSets [][]pose.Keypoint) error {
	return c.Visualize(img, TargetBundle{Field: field, KeypointSets: keypointSets})
}

// VisualizePredicted renders the raw output of the head over img.  The
// optional annotations are drawn underneath the regressions.
func (c *CAF) VisualizePredicted(img image.Image, field cafvis.Field,
	annotations []*pose.Annotation) error {
	return c.Visualize(img, PredictedBundle{Field: field, Annotations: annotations})
}

// Visualize normalizes either bundle and renders the background, confidence
// and regression layers in that order
func (c *CAF) Visualize(img image.Image, b Bundle) error {

	switch b := b.(type) {
	case TargetBundle:
		if len(c.params.Keypoints) == 0 {
			return ErrMissingKeypoints
		}
		if len(c.params.Skeleton) == 0 {
			return ErrMissingSkeleton
		}

		if !c.drawsAnything() {
			return nil
		}

		annotations := make([]*pose.Annotation, len(b.KeypointSets))

		for i, kps := range b.KeypointSets {
			annotations[i] = pose.NewAnnotation(c.params.Keypoints, c.params.Skeleton).Set(kps)
		}

		return c.render(img, targetFieldSet(b.Field, annotations))

	case PredictedBundle:
		if !c.drawsAnything() {
			return nil
		}

		return c.render(img, predictedFieldSet(b.Field, b.Annotations))

	default:
		return fmt.Errorf("unsupported bundle type %T", b)
	}
}

// drawsAnything reports whether any layer is enabled for the selection
func (c *CAF) drawsAnything() bool {
	show := c.params.Show
	return (show.Background && len(c.indices) > 0) || show.Confidences || show.Regressions
}

func (c *CAF) render(img image.Image, fs fieldSet) error {

	var err error

	if fs.background != nil {
		err = multierr.Append(err, c.background(img, fs.background))
	}

	err = multierr.Append(err, c.confidences(img, fs.confidences))
	err = multierr.Append(err, c.regressions(img, fs))

	return err
}

// background draws the no-connection channel over the image reduced to field
// resolution
func (c *CAF) background(img image.Image, plane *mat.Dense) error {

	if !c.params.Show.Background || len(c.indices) == 0 {
		return nil
	}

	return c.withCanvas(preprocess.Downsample(img, c.params.Stride), func(cv render.Canvas) {
		cv.Heatmap(plane, render.HeatmapStyle{
			Colormap: render.Blues,
			Min:      0.0,
			Max:      1.0,
			Alpha:    heatmapAlpha,
		})
	})
}

// confidences draws the confidence of every selected connection at image
// resolution, each on its own canvas
func (c *CAF) confidences(img image.Image, confidences []*mat.Dense) error {

	if !c.params.Show.Confidences {
		return nil
	}

	var err error

	for _, f := range c.indices {
		c.log.Debug("confidence", zap.Int("index", f), zap.String("connection", c.label(f)))

		plane := UpsampleNearest(confidences[f], c.params.Stride)

		err = multierr.Append(err, c.withCanvas(img, func(cv render.Canvas) {
			cv.Heatmap(plane, render.HeatmapStyle{
				Colormap: render.Oranges,
				Min:      0.0,
				Max:      1.0,
				Alpha:    heatmapAlpha,
			})
			cv.Colorbar(render.Oranges, 0.0, 1.0)
		}))
	}

	return err
}

// regressions draws the arrows, scale boxes and optional margins of every
// selected connection over a faded image with the annotations underneath
func (c *CAF) regressions(img image.Image, fs fieldSet) error {

	if !c.params.Show.Regressions {
		return nil
	}

	stride := float64(c.params.Stride)
	limits := c.params.RegressionLimits

	styleA := render.VectorStyle{Colormap: render.Blues, Min: limits.Min, Max: limits.Max, Thickness: 1}
	styleB := render.VectorStyle{Colormap: render.Greens, Min: limits.Min, Max: limits.Max, Thickness: 1}
	marginStyle := render.VectorStyle{Colormap: marginColormap, Min: limits.Min, Max: limits.Max, Thickness: 1}

	var err error

	for _, f := range c.indices {
		c.log.Debug("regression", zap.Int("index", f), zap.String("connection", c.label(f)))

		proj := projection{
			stride:    stride,
			offset:    fs.offset,
			threshold: c.params.Threshold,
		}

		if fs.drivers != nil {
			proj.confidences = fs.drivers[f]
		}

		vecA := fs.vectorsA.Components(f, 2)
		vecB := fs.vectorsB.Components(f, 2)

		arrowsA := proj.arrows(vecA)
		arrowsB := proj.arrows(vecB)
		boxesA := proj.boxes(fs.scalesA[f][0], vecA)
		boxesB := proj.boxes(fs.scalesB[f][0], vecB)

		var marginsA, marginsB []render.Box

		if c.params.Show.Margin {
			marginsA = proj.margins(fs.vectorsA.Components(f, 6))
			marginsB = proj.margins(fs.vectorsB.Components(f, 6))
		}

		err = multierr.Append(err, c.withCanvas(img, func(cv render.Canvas) {
			cv.WhiteScreen(whiteScreenAlpha)

			if len(fs.annotations) > 0 {
				cv.Annotations(fs.annotations, stride)
			}

			cv.Arrows(arrowsA, styleA)
			cv.Arrows(arrowsB, styleB)
			cv.Boxes(boxesA, styleA)
			cv.Boxes(boxesB, styleB)

			if c.params.Show.Margin {
				cv.Boxes(marginsA, marginStyle)
				cv.Boxes(marginsB, marginStyle)
			}

			cv.Colorbar(styleA.Colormap, styleA.Min, styleA.Max)
		}))
	}

	return err
}

// withCanvas acquires a canvas for img, draws on it and always releases it
func (c *CAF) withCanvas(img image.Image, draw func(cv render.Canvas)) (err error) {

	cv, err := c.painter.ImageCanvas(img)

	if err != nil {
		c.log.Warn("error acquiring canvas", zap.Error(err))
		return fmt.Errorf("error acquiring canvas: %w", err)
	}

	defer func() {
		err = multierr.Append(err, cv.Close())
	}()

	draw(cv)

	return nil
}

// label returns the keypoint names of connection f for log output
func (c *CAF) label(f int) string {
	return c.params.Skeleton.Label(f, c.params.Keypoints)
}
