package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/wagnandr/hemoview/internal/manifest"
)

// CompRatio names the derived concentration-to-area ratio. It is never a
// file key; the solver writes only q, a, p and c.
const CompRatio = "c/a"

// mbar → mmHg. The loaded-data and tube-law divisors differ; keep both
// exactly as the solver's companion tools expect.
const (
	pressureDivisor = 1.333333
	tubeLawDivisor  = 1.33332
)

// Dataset holds one vessel's matrices over the playback window. Every
// matrix has one row per window frame and one column per grid point; a
// nil matrix means the quantity is absent for this vessel.
type Dataset struct {
	ID   int
	Grid []float64

	Q  [][]float64 // flow
	A  [][]float64 // cross-sectional area
	P  [][]float64 // pressure, loaded or tube-law derived
	C  [][]float64 // advected concentration
	CA [][]float64 // concentration / area
}

// Component returns the matrix for a component key ("q", "a", "p", "c" or
// "c/a"), nil when absent or unknown.
func (d *Dataset) Component(key string) [][]float64 {
	switch key {
	case manifest.CompFlow:
		return d.Q
	case manifest.CompArea:
		return d.A
	case manifest.CompPressure:
		return d.P
	case manifest.CompConcentration:
		return d.C
	case CompRatio:
		return d.CA
	}
	return nil
}

// Frames returns the number of playback frames in the dataset.
func (d *Dataset) Frames() int { return len(d.Q) }

// Loader assembles vessel datasets over a playback window fixed at
// construction, so every vessel shares the same truncation.
type Loader struct {
	man   *manifest.Manifest
	times []float64
	start int
}

// NewLoader reads the manifest's time axis and fixes the start index for
// all subsequent loads.
func NewLoader(man *manifest.Manifest, tStart float64) (*Loader, error) {
	times, err := LoadTimes(man)
	if err != nil {
		return nil, err
	}
	return &Loader{man: man, times: times, start: StartIndex(times, tStart)}, nil
}

// Start returns the index of the first played frame in the full time axis.
func (l *Loader) Start() int { return l.start }

// Times returns the playback window of the time axis.
func (l *Loader) Times() []float64 { return l.times[l.start:] }

// Component loads one component matrix for a vessel, truncated to the
// playback window and checked against the time axis and the vessel grid.
func (l *Loader) Component(v *manifest.Vessel, key string) ([][]float64, error) {
	path, ok := v.Filepaths[key]
	if !ok {
		return nil, &ComponentLoadError{VesselID: v.ID, Key: key, Err: errors.New("no file listed in manifest")}
	}

	rows, err := readMatrix(path)
	if err != nil {
		return nil, &ComponentLoadError{VesselID: v.ID, Key: key, Err: err}
	}

	if l.start <= len(rows) {
		rows = rows[l.start:]
	} else {
		rows = rows[len(rows):]
	}

	span := len(l.times) - l.start
	if len(rows) != span {
		return nil, &ComponentLoadError{
			VesselID: v.ID,
			Key:      key,
			Err:      fmt.Errorf("%d rows in playback window, time axis has %d", len(rows), span),
		}
	}
	if len(rows) > 0 && len(rows[0]) != len(v.Coordinates) {
		return nil, &ComponentLoadError{
			VesselID: v.ID,
			Key:      key,
			Err:      fmt.Errorf("%d points per row, grid has %d", len(rows[0]), len(v.Coordinates)),
		}
	}
	return rows, nil
}

// Vessel assembles one vessel's dataset: q always, a when written, p
// loaded (unit-converted) or derived from a, c plus the c/a ratio.
func (l *Loader) Vessel(v *manifest.Vessel) (*Dataset, error) {
	ds := &Dataset{ID: v.ID, Grid: append([]float64(nil), v.Coordinates...)}

	var err error
	if ds.Q, err = l.Component(v, manifest.CompFlow); err != nil {
		return nil, err
	}

	_, hasArea := v.Filepaths[manifest.CompArea]
	if hasArea {
		if ds.A, err = l.Component(v, manifest.CompArea); err != nil {
			return nil, err
		}
	}

	if _, ok := v.Filepaths[manifest.CompPressure]; ok {
		p, err := l.Component(v, manifest.CompPressure)
		if err != nil {
			return nil, err
		}
		divide(p, pressureDivisor)
		ds.P = p
	} else if hasArea {
		if v.A0 == nil || v.G0 == nil {
			return nil, &DerivedQuantityError{VesselID: v.ID, Key: manifest.CompPressure, Missing: "A0/G0"}
		}
		ds.P = tubeLawPressure(ds.A, *v.A0, *v.G0)
	}

	if _, ok := v.Filepaths[manifest.CompConcentration]; ok {
		if ds.C, err = l.Component(v, manifest.CompConcentration); err != nil {
			return nil, err
		}
		if ds.A == nil {
			return nil, &DerivedQuantityError{VesselID: v.ID, Key: CompRatio, Missing: manifest.CompArea}
		}
		ds.CA = ratio(ds.C, ds.A)
	}

	return ds, nil
}

// Vessels loads the given edge ids in the caller's order. The first
// failure aborts the whole load.
func (l *Loader) Vessels(ids []int) ([]*Dataset, error) {
	sets := make([]*Dataset, 0, len(ids))
	for _, id := range ids {
		v, err := l.man.Vessel(id)
		if err != nil {
			return nil, err
		}
		ds, err := l.Vessel(v)
		if err != nil {
			return nil, err
		}
		sets = append(sets, ds)
	}
	return sets, nil
}

func divide(m [][]float64, by float64) {
	for _, row := range m {
		for j := range row {
			row[j] /= by
		}
	}
}

// tubeLawPressure derives pressure from area, p = G0*(sqrt(a/A0) - 1),
// converted to mmHg.
func tubeLawPressure(a [][]float64, a0, g0 float64) [][]float64 {
	p := make([][]float64, len(a))
	for i, row := range a {
		p[i] = make([]float64, len(row))
		for j, v := range row {
			p[i][j] = g0 * (math.Sqrt(v/a0) - 1) / tubeLawDivisor
		}
	}
	return p
}

func ratio(num, den [][]float64) [][]float64 {
	out := make([][]float64, len(num))
	for i, row := range num {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v / den[i][j]
		}
	}
	return out
}
