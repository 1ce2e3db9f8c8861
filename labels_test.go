package cafvis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadKeypointNames(t *testing.T) {

	path := writeFile(t, "keypoints.txt", "nose\n  left_eye \n\nright_eye\n")

	names, err := LoadKeypointNames(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"nose", "left_eye", "right_eye"}, names)
}

func TestLoadKeypointNamesMissingFile(t *testing.T) {

	_, err := LoadKeypointNames(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Regexp(t, `^error opening file: `, err)
}

func TestLoadSkeleton(t *testing.T) {

	path := writeFile(t, "skeleton.txt", "16 14\n14,12\n\n17\t15\n")

	pairs, err := LoadSkeleton(path)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{16, 14}, {14, 12}, {17, 15}}, pairs)
}

func TestLoadSkeletonInvalid(t *testing.T) {

	tests := []struct {
		content string
		match   string
	}{
		{"1 2 3\n", `line 1: expected two keypoint numbers`},
		{"1 2\n1 x\n", `line 2: invalid keypoint number "x"`},
		{"0 2\n", `line 1: keypoint number 0 must be 1 or greater$`},
	}

	for _, tc := range tests {
		path := writeFile(t, "skeleton.txt", tc.content)
		_, err := LoadSkeleton(path)
		assert.Regexp(t, tc.match, err)
	}
}
