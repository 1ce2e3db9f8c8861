package visualize

import (
	"math"
	"sort"

	"github.com/swdee/go-cafvis/render"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// projection maps field space regressions onto image coordinates
type projection struct {
	// stride multiplies every field space coordinate
	stride float64
	// offset is true when regressions are relative to their cell and false
	// when they are absolute field coordinates
	offset bool
	// confidences optionally drives the color value of every cell, cells
	// below threshold are skipped
	confidences *mat.Dense
	threshold   float64
}

// value returns the color value of the cell and whether it is drawn at all
func (p projection) value(r, c int) (float64, bool) {

	if p.confidences == nil {
		return 1.0, true
	}

	v := p.confidences.At(r, c)

	// NaN compares false and is skipped too
	if !(v >= p.threshold) {
		return 0, false
	}

	return v, true
}

// endpoint returns the regression target of the cell at row r, column c in
// field coordinates
func (p projection) endpoint(vectors []*mat.Dense, r, c int) (r2.Vec, bool) {

	v := r2.Vec{X: vectors[0].At(r, c), Y: vectors[1].At(r, c)}

	if !finite(v.X) || !finite(v.Y) {
		return r2.Vec{}, false
	}

	if p.offset {
		v = r2.Add(v, r2.Vec{X: float64(c), Y: float64(r)})
	}

	return v, true
}

// arrows returns an arrow from every cell to its regression target.  Arrows
// are ordered by ascending value so the most confident are drawn last.
func (p projection) arrows(vectors []*mat.Dense) []render.Arrow {

	var arrows []render.Arrow

	p.eachCell(vectors[0], func(r, c int, value float64) {
		end, ok := p.endpoint(vectors, r, c)

		if !ok {
			return
		}

		arrows = append(arrows, render.Arrow{
			From:  r2.Scale(p.stride, r2.Vec{X: float64(c), Y: float64(r)}),
			To:    r2.Scale(p.stride, end),
			Value: value,
		})
	})

	sort.SliceStable(arrows, func(i, j int) bool {
		return arrows[i].Value < arrows[j].Value
	})

	return arrows
}

// boxes returns a square of side scale centered on the regression target of
// every cell.  Cells are gated by value the same way as arrows.
func (p projection) boxes(scales *mat.Dense, vectors []*mat.Dense) []render.Box {

	var boxes []render.Box

	p.eachCell(scales, func(r, c int, value float64) {
		s := scales.At(r, c)

		if !finite(s) {
			return
		}

		end, ok := p.endpoint(vectors, r, c)

		if !ok {
			return
		}

		center := r2.Scale(p.stride, end)
		half := r2.Vec{X: s * p.stride / 2, Y: s * p.stride / 2}

		boxes = append(boxes, render.Box{
			Min:   r2.Sub(center, half),
			Max:   r2.Add(center, half),
			Value: value,
		})
	})

	return boxes
}

// margins returns the margin box around the regression target of every cell.
// Components 2 to 5 of the regression are the right, left, bottom and top
// margins.
func (p projection) margins(regression []*mat.Dense) []render.Box {

	var boxes []render.Box

	p.eachCell(regression[0], func(r, c int, value float64) {
		end, ok := p.endpoint(regression, r, c)

		if !ok {
			return
		}

		right, left := regression[2].At(r, c), regression[3].At(r, c)
		bottom, top := regression[4].At(r, c), regression[5].At(r, c)

		if !finite(right) || !finite(left) || !finite(bottom) || !finite(top) {
			return
		}

		boxes = append(boxes, render.Box{
			Min:   r2.Scale(p.stride, r2.Vec{X: end.X - left, Y: end.Y - top}),
			Max:   r2.Scale(p.stride, r2.Vec{X: end.X + right, Y: end.Y + bottom}),
			Value: value,
		})
	})

	return boxes
}

// eachCell calls fn for every drawn cell of the plane in row major order
func (p projection) eachCell(plane *mat.Dense, fn func(r, c int, value float64)) {

	rows, cols := plane.Dims()

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if value, ok := p.value(r, c); ok {
				fn(r, c, value)
			}
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
