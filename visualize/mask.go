package visualize

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaskBackground returns copies of the confidence planes where every cell
// whose confidence plus background score is exactly zero is set to NaN.  Such
// cells carry no training signal and must be excluded from color mapping
// rather than drawn as a zero confidence.  The inputs are not modified.
func MaskBackground(confidences []*mat.Dense, background *mat.Dense) []*mat.Dense {

	masked := make([]*mat.Dense, len(confidences))

	for i, conf := range confidences {
		m := mat.DenseCopyOf(conf)

		m.Apply(func(r, c int, v float64) float64 {
			if v+background.At(r, c) == 0 {
				return math.NaN()
			}
			return v
		}, m)

		masked[i] = m
	}

	return masked
}

// UpsampleNearest scales a field space plane to image resolution by
// replicating every cell into a stride x stride block
func UpsampleNearest(plane *mat.Dense, stride int) *mat.Dense {

	if stride <= 1 {
		return mat.DenseCopyOf(plane)
	}

	rows, cols := plane.Dims()
	out := mat.NewDense(rows*stride, cols*stride, nil)

	out.Apply(func(r, c int, _ float64) float64 {
		return plane.At(r/stride, c/stride)
	}, out)

	return out
}
