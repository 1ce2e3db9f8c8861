package visualize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// singleCell returns 3x3 planes that are NaN everywhere except at x=2, y=1
func singleCell(values ...float64) []*mat.Dense {
	planes := make([]*mat.Dense, len(values))
	for i, v := range values {
		planes[i] = filled(3, 3, nan)
		planes[i].Set(1, 2, v)
	}
	return planes
}

func TestArrowOffsetSemantics(t *testing.T) {

	vectors := singleCell(0.5, -1.5)

	for _, stride := range []float64{1, 2, 8} {

		offset := projection{stride: stride, offset: true}.arrows(vectors)
		require.Len(t, offset, 1)
		assert.Equal(t, r2.Vec{X: 2 * stride, Y: 1 * stride}, offset[0].From)
		assert.Equal(t, r2.Vec{X: (2 + 0.5) * stride, Y: (1 - 1.5) * stride}, offset[0].To)
		assert.Equal(t, 1.0, offset[0].Value)

		absolute := projection{stride: stride, offset: false}.arrows(vectors)
		require.Len(t, absolute, 1)
		assert.Equal(t, r2.Vec{X: 2 * stride, Y: 1 * stride}, absolute[0].From)
		assert.Equal(t, r2.Vec{X: 0.5 * stride, Y: -1.5 * stride}, absolute[0].To)
	}
}

func TestArrowsConfidenceDriven(t *testing.T) {

	vectors := []*mat.Dense{filled(1, 4, 1.0), filled(1, 4, 1.0)}
	conf := mat.NewDense(1, 4, []float64{0.9, 0.2, nan, 0.6})

	arrows := projection{stride: 1, confidences: conf, threshold: 0.5}.arrows(vectors)

	// below threshold and NaN cells are skipped, the rest ascend by value
	require.Len(t, arrows, 2)
	assert.Equal(t, 0.6, arrows[0].Value)
	assert.Equal(t, r2.Vec{X: 3, Y: 0}, arrows[0].From)
	assert.Equal(t, 0.9, arrows[1].Value)
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, arrows[1].From)
}

func TestBoxes(t *testing.T) {

	vectors := singleCell(1.0, 1.0)
	scales := singleCell(2.0)[0]

	boxes := projection{stride: 4, offset: true}.boxes(scales, vectors)
	require.Len(t, boxes, 1)

	// endpoint (3, 2) in field space is (12, 8) in the image, side 2*4
	assert.Equal(t, r2.Vec{X: 8, Y: 4}, boxes[0].Min)
	assert.Equal(t, r2.Vec{X: 16, Y: 12}, boxes[0].Max)

	boxes = projection{stride: 4, offset: false}.boxes(scales, vectors)
	require.Len(t, boxes, 1)

	// absolute endpoint (1, 1) is (4, 4) in the image
	assert.Equal(t, r2.Vec{X: 0, Y: 0}, boxes[0].Min)
	assert.Equal(t, r2.Vec{X: 8, Y: 8}, boxes[0].Max)
}

func TestBoxesSkipMissingScale(t *testing.T) {

	vectors := []*mat.Dense{filled(2, 2, 0), filled(2, 2, 0)}
	scales := mat.NewDense(2, 2, []float64{1, nan, 1, 1})

	boxes := projection{stride: 1, offset: true}.boxes(scales, vectors)
	assert.Len(t, boxes, 3)
}

func TestMargins(t *testing.T) {

	// endpoint offset (1, 0), margins right 1, left 2, bottom 3, top 4
	regression := singleCell(1, 0, 1, 2, 3, 4)

	boxes := projection{stride: 2, offset: true}.margins(regression)
	require.Len(t, boxes, 1)

	// endpoint (3, 1)
	assert.Equal(t, r2.Vec{X: (3 - 2) * 2, Y: (1 - 4) * 2}, boxes[0].Min)
	assert.Equal(t, r2.Vec{X: (3 + 1) * 2, Y: (1 + 3) * 2}, boxes[0].Max)
}

func TestBoxesAndMarginsFollowArrowThreshold(t *testing.T) {

	regression := []*mat.Dense{
		filled(1, 3, 0), filled(1, 3, 0),
		filled(1, 3, 1), filled(1, 3, 1), filled(1, 3, 1), filled(1, 3, 1),
	}
	scales := filled(1, 3, 1)
	conf := mat.NewDense(1, 3, []float64{0.9, 0.4, nan})

	proj := projection{stride: 1, offset: true, confidences: conf, threshold: 0.5}

	// only the cell with an arrow gets a box and a margin box
	arrows := proj.arrows(regression[:2])
	boxes := proj.boxes(scales, regression[:2])
	margins := proj.margins(regression)

	require.Len(t, arrows, 1)
	require.Len(t, boxes, 1)
	require.Len(t, margins, 1)
	assert.Equal(t, 0.9, boxes[0].Value)
	assert.Equal(t, r2.Vec{X: -1, Y: -1}, margins[0].Min)
	assert.Equal(t, r2.Vec{X: 1, Y: 1}, margins[0].Max)
}
