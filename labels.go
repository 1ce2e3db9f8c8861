package cafvis

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadKeypointNames reads the keypoint names the head was trained with from
// the given text file.  It should contain one name per line, blank lines are
// ignored.
func LoadKeypointNames(file string) ([]string, error) {

	var names []string

	err := scanLines(file, func(line string) error {
		names = append(names, line)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return names, nil
}

// LoadSkeleton reads skeleton connections from the given text file.  Each
// line holds a pair of 1-indexed keypoint numbers separated by whitespace or
// a comma, eg: "16 14".
func LoadSkeleton(file string) ([][2]int, error) {

	var pairs [][2]int

	err := scanLines(file, func(line string) error {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})

		if len(fields) != 2 {
			return fmt.Errorf("expected two keypoint numbers, got %q", line)
		}

		var pair [2]int

		for i, f := range fields {
			n, err := strconv.Atoi(f)

			if err != nil {
				return fmt.Errorf("invalid keypoint number %q: %w", f, err)
			}

			if n < 1 {
				return fmt.Errorf("keypoint number %d must be 1 or greater", n)
			}

			pair[i] = n
		}

		pairs = append(pairs, pair)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return pairs, nil
}

// scanLines calls fn with every trimmed non-empty line of the file
func scanLines(file string, fn func(line string) error) error {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if err := fn(line); err != nil {
			return fmt.Errorf("%s line %d: %w", file, lineNo, err)
		}
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	return nil
}
