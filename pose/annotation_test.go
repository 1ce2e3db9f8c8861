package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCOCODefaults(t *testing.T) {
	require.Len(t, COCOKeypoints, 17)
	require.Len(t, COCOSkeleton, 19)

	for i, pair := range COCOSkeleton {
		for _, k := range pair {
			assert.True(t, k >= 1 && k <= len(COCOKeypoints),
				"connection %d references keypoint %d", i, k)
		}
	}

	assert.Equal(t, "left_ankle,left_knee", COCOSkeleton.Label(0, COCOKeypoints))
	assert.Equal(t, "left_shoulder,right_shoulder", COCOSkeleton.Label(7, COCOKeypoints))
}

func TestSkeletonLabelUnknown(t *testing.T) {
	assert.Equal(t, "connection 3", COCOSkeleton.Label(3, nil))
	assert.Equal(t, "connection 40", COCOSkeleton.Label(40, COCOKeypoints))
	assert.Equal(t, "connection 0", Skeleton(nil).Label(0, COCOKeypoints))
}

func TestAnnotationSetCopies(t *testing.T) {
	data := []Keypoint{{X: 1, Y: 2, Visibility: 2}, {X: 3, Y: 4, Visibility: 2}}

	ann := NewAnnotation([]string{"a", "b"}, Skeleton{{1, 2}}).Set(data)
	data[0].X = 100

	assert.Equal(t, 1.0, ann.Data[0].X)
}

func TestAnnotationLimb(t *testing.T) {
	ann := NewAnnotation([]string{"a", "b", "c"}, Skeleton{{1, 2}, {2, 3}, {1, 4}}).
		Set([]Keypoint{
			{X: 1, Y: 1, Visibility: 2},
			{X: 5, Y: 6, Visibility: 1},
			{X: 0, Y: 0, Visibility: 0},
		})

	p1, p2, ok := ann.Limb(0)
	require.True(t, ok)
	assert.Equal(t, Keypoint{X: 1, Y: 1, Visibility: 2}, p1)
	assert.Equal(t, Keypoint{X: 5, Y: 6, Visibility: 1}, p2)

	// third keypoint is not visible
	_, _, ok = ann.Limb(1)
	assert.False(t, ok)

	// keypoint 4 does not exist
	_, _, ok = ann.Limb(2)
	assert.False(t, ok)

	_, _, ok = ann.Limb(3)
	assert.False(t, ok)
}
