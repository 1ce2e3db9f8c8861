package visualize

import (
	cafvis "github.com/swdee/go-cafvis"
	"github.com/swdee/go-cafvis/pose"
	"gonum.org/v1/gonum/mat"
)

// Bundle is the input of a CAF visualization, either a TargetBundle or a
// PredictedBundle
type Bundle interface {
	isBundle()
}

// TargetBundle holds a ground truth training field and the keypoint sets it
// was encoded from.  The field layout is:
//
//	[0] confidence, one entry per connection plus a trailing background entry
//	[1] regression A
//	[2] regression B
//	[3] scale A
//	[4] scale B
//
// Regressions are offsets from their cell.
type TargetBundle struct {
	Field        cafvis.Field
	KeypointSets [][]pose.Keypoint
}

// PredictedBundle holds the raw output of a CAF head and optionally the
// annotations decoded from it.  The field layout is:
//
//	[0] confidence, one entry per connection
//	[1] regression A
//	[3] regression B
//	[4] scale A
//	[6] scale B
//
// Regressions are absolute field coordinates.
type PredictedBundle struct {
	Field       cafvis.Field
	Annotations []*pose.Annotation
}

func (TargetBundle) isBundle()    {}
func (PredictedBundle) isBundle() {}

// fieldSet is the layout independent record both bundles are normalized into
type fieldSet struct {
	// background is nil for predictions
	background *mat.Dense
	// confidences are drawn by the confidence layer
	confidences []*mat.Dense
	vectorsA    cafvis.Channel
	vectorsB    cafvis.Channel
	scalesA     cafvis.Channel
	scalesB     cafvis.Channel
	// drivers color the arrows and boxes, nil for targets
	drivers     []*mat.Dense
	annotations []*pose.Annotation
	// offset is true when regressions are relative to their cell
	offset bool
}

// targetFieldSet normalizes a target field, annotations are built from the
// keypoint sets by the caller
func targetFieldSet(field cafvis.Field, annotations []*pose.Annotation) fieldSet {

	conf := field[0].Scalars()
	n := len(conf) - 1
	background := conf[n]

	return fieldSet{
		background:  background,
		confidences: MaskBackground(conf[:n], background),
		vectorsA:    field[1],
		vectorsB:    field[2],
		scalesA:     field[3],
		scalesB:     field[4],
		annotations: annotations,
		offset:      true,
	}
}

// predictedFieldSet normalizes a predicted field
func predictedFieldSet(field cafvis.Field, annotations []*pose.Annotation) fieldSet {

	conf := field[0].Scalars()

	return fieldSet{
		confidences: conf,
		vectorsA:    field[1],
		vectorsB:    field[3],
		scalesA:     field[4],
		scalesB:     field[6],
		drivers:     conf,
		annotations: annotations,
		offset:      false,
	}
}
