package render

import (
	"image"
	"math"

	"github.com/swdee/go-cafvis/pose"
	"gocv.io/x/gocv"
)

// PoseAnnotations renders the skeleton of every annotation.  Annotation
// coordinates are in field space and multiplied by xyScale to get image
// coordinates.
func PoseAnnotations(img *gocv.Mat, anns []*pose.Annotation, xyScale float64,
	lineThickness int) {

	for _, ann := range anns {
		if ann == nil {
			continue
		}

		// draw skeleton lines
		for j := range ann.Skeleton {
			p1, p2, ok := ann.Limb(j)

			if !ok {
				continue
			}

			gocv.Line(img, scalePt(p1, xyScale), scalePt(p2, xyScale),
				limbColors[j%len(limbColors)], lineThickness)
		}

		// draw circles at skeleton joints
		for j, kp := range ann.Data {
			if kp.Visibility <= 0 {
				continue
			}

			gocv.Circle(img, scalePt(kp, xyScale), 3,
				keyPointColors[j%len(keyPointColors)], -1)
		}
	}
}

func scalePt(kp pose.Keypoint, xyScale float64) image.Point {
	return image.Pt(int(math.Round(kp.X*xyScale)), int(math.Round(kp.Y*xyScale)))
}
