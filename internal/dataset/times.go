package dataset

import (
	"fmt"

	"github.com/wagnandr/hemoview/internal/manifest"
)

// LoadTimes reads the shared time axis named by the manifest.
func LoadTimes(man *manifest.Manifest) ([]float64, error) {
	times, err := readVector(man.TimeFilepath)
	if err != nil {
		return nil, fmt.Errorf("time axis %s: %w", man.TimeFilepath, err)
	}
	return times, nil
}

// StartIndex counts the entries of times strictly below tStart. The count
// runs over the raw sequence; no ordering is assumed. A tStart before the
// first entry keeps the whole axis, one past the last entry leaves an
// empty playback window.
func StartIndex(times []float64, tStart float64) int {
	n := 0
	for _, t := range times {
		if t < tStart {
			n++
		}
	}
	return n
}
