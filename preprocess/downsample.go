package preprocess

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Downsample returns img reduced by an integer stride, keeping the top left
// pixel of every stride x stride block.  The result has the resolution of a
// field computed with that stride, ceil(width/stride) x ceil(height/stride).
func Downsample(img image.Image, stride int) *image.RGBA {

	b := img.Bounds()

	if stride <= 1 {
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}

	w := (b.Dx() + stride - 1) / stride
	h := (b.Dy() + stride - 1) / stride
	dst := image.NewRGBA(image.Rect(0, 0, w, h))

	// the nearest neighbour sampler reads the source at the mapped center of
	// every destination pixel, shift it so that destination pixel d samples
	// the center of source pixel d*stride
	s := float64(stride)
	tx := (float64(b.Min.X) + 0.5 - s/2) / s
	ty := (float64(b.Min.Y) + 0.5 - s/2) / s

	s2d := f64.Aff3{
		1 / s, 0, -tx,
		0, 1 / s, -ty,
	}

	draw.NearestNeighbor.Transform(dst, s2d, img, b, draw.Src, nil)

	return dst
}
