package pose

import "fmt"

// Keypoint is a single keypoint of a pose instance in field coordinates
type Keypoint struct {
	X float64
	Y float64
	// Visibility is the keypoint confidence, keypoints with a visibility of
	// zero or less are not drawn
	Visibility float64
}

// Skeleton is the list of keypoint pairs to draw lines between.  Keypoint
// numbers are 1-indexed into the keypoint name list, so (16,14) means draw a
// line from the 16th to the 14th keypoint.
type Skeleton [][2]int

// Label returns the "a,b" keypoint names of connection i for use in log
// output.  When the names or the connection are unknown the connection number
// is returned instead.
func (s Skeleton) Label(i int, keypoints []string) string {

	if i < 0 || i >= len(s) {
		return fmt.Sprintf("connection %d", i)
	}

	a, b := s[i][0]-1, s[i][1]-1

	if a < 0 || a >= len(keypoints) || b < 0 || b >= len(keypoints) {
		return fmt.Sprintf("connection %d", i)
	}

	return keypoints[a] + "," + keypoints[b]
}

// Annotation is a single pose instance
type Annotation struct {
	Keypoints []string
	Skeleton  Skeleton
	Data      []Keypoint
}

// NewAnnotation returns an empty annotation for the given keypoint names and
// skeleton
func NewAnnotation(keypoints []string, skeleton Skeleton) *Annotation {
	return &Annotation{
		Keypoints: keypoints,
		Skeleton:  skeleton,
	}
}

// Set copies the keypoint coordinates into the annotation and returns it
func (a *Annotation) Set(data []Keypoint) *Annotation {
	a.Data = append([]Keypoint(nil), data...)
	return a
}

// Limb returns the coordinates of both ends of skeleton connection i.  The
// returned bool is false when either keypoint is missing or not visible.
func (a *Annotation) Limb(i int) (Keypoint, Keypoint, bool) {

	if i < 0 || i >= len(a.Skeleton) {
		return Keypoint{}, Keypoint{}, false
	}

	j, k := a.Skeleton[i][0]-1, a.Skeleton[i][1]-1

	if j < 0 || j >= len(a.Data) || k < 0 || k >= len(a.Data) {
		return Keypoint{}, Keypoint{}, false
	}

	p1, p2 := a.Data[j], a.Data[k]

	if p1.Visibility <= 0 || p2.Visibility <= 0 {
		return Keypoint{}, Keypoint{}, false
	}

	return p1, p2, true
}
