package dataset

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/wagnandr/hemoview/internal/manifest"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func f64(v float64) *float64 { return &v }

// testLoader builds a loader over times [0, 1, 2] with the given start
// time and hands back the fixture directory for component files.
func testLoader(t *testing.T, man *manifest.Manifest, dir string, tStart float64) *Loader {
	t.Helper()
	man.TimeFilepath = writeFile(t, dir, "times.csv", "0.0,1.0,2.0\n")
	l, err := NewLoader(man, tStart)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	return l
}

func TestLoaderComponent(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1,2\n3,4\n5,6\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0, 1},
		Filepaths:   map[string]string{"q": q},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	rows, err := l.Component(v, "q")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2][1] != 6 {
		t.Errorf("expected 6 at [2][1], got %f", rows[2][1])
	}
}

func TestLoaderComponentTruncation(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1,2\n3,4\n5,6\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0, 1},
		Filepaths:   map[string]string{"q": q},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 1.0)

	if l.Start() != 1 {
		t.Fatalf("expected start 1, got %d", l.Start())
	}
	if len(l.Times()) != 2 {
		t.Fatalf("expected window of 2, got %d", len(l.Times()))
	}

	rows, err := l.Component(v, "q")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after truncation, got %d", len(rows))
	}
	if rows[0][0] != 3 || rows[1][0] != 5 {
		t.Errorf("truncation kept wrong rows: %v", rows)
	}
}

func TestLoaderComponentErrors(t *testing.T) {
	dir := t.TempDir()
	short := writeFile(t, dir, "short.csv", "1,2\n3,4\n")
	wide := writeFile(t, dir, "wide.csv", "1,2,3\n4,5,6\n7,8,9\n")
	bad := writeFile(t, dir, "bad.csv", "1,2\nx,4\n5,6\n")

	v := &manifest.Vessel{
		ID:          7,
		Coordinates: []float64{0, 1},
		Filepaths: map[string]string{
			"q": short,
			"a": wide,
			"c": bad,
			"p": filepath.Join(dir, "nope.csv"),
		},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	tests := []struct {
		name string
		key  string
	}{
		{"row count mismatch", "q"},
		{"grid width mismatch", "a"},
		{"unparsable value", "c"},
		{"missing file", "p"},
		{"key not in manifest", "z"},
	}

	for _, tt := range tests {
		_, err := l.Component(v, tt.key)
		var ce *ComponentLoadError
		if !errors.As(err, &ce) {
			t.Errorf("%s: expected ComponentLoadError, got %v", tt.name, err)
			continue
		}
		if ce.VesselID != 7 {
			t.Errorf("%s: expected vessel 7 in error, got %d", tt.name, ce.VesselID)
		}
		if ce.Key != tt.key {
			t.Errorf("%s: expected key %q in error, got %q", tt.name, tt.key, ce.Key)
		}
	}
}

func TestVesselPressureLoaded(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")
	p := writeFile(t, dir, "p.csv", "1.333333\n2.666666\n0\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q, "p": p},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	ds, err := l.Vessel(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if math.Abs(ds.P[0][0]-1.0) > 1e-12 {
		t.Errorf("expected unit-converted pressure 1.0, got %v", ds.P[0][0])
	}
	if math.Abs(ds.P[1][0]-2.0) > 1e-6 {
		t.Errorf("expected unit-converted pressure 2.0, got %v", ds.P[1][0])
	}
	if ds.A != nil || ds.C != nil || ds.CA != nil {
		t.Error("expected absent components to stay nil")
	}
}

func TestVesselPressureDerived(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")
	a := writeFile(t, dir, "a.csv", "4\n9\n4\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q, "a": a},
		A0:          f64(4.0),
		G0:          f64(2.0),
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	ds, err := l.Vessel(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.P == nil {
		t.Fatal("expected derived pressure")
	}
	if ds.P[0][0] != 0 {
		t.Errorf("a == A0 should derive zero pressure, got %v", ds.P[0][0])
	}
	want := 2.0 * (math.Sqrt(9.0/4.0) - 1) / 1.33332
	if math.Abs(ds.P[1][0]-want) > 1e-12 {
		t.Errorf("expected %v, got %v", want, ds.P[1][0])
	}
}

func TestVesselPressureDerivedMissingParams(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")
	a := writeFile(t, dir, "a.csv", "4\n4\n4\n")

	v := &manifest.Vessel{
		ID:          3,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q, "a": a},
		G0:          f64(2.0),
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	_, err := l.Vessel(v)
	var de *DerivedQuantityError
	if !errors.As(err, &de) {
		t.Fatalf("expected DerivedQuantityError, got %v", err)
	}
	if de.VesselID != 3 || de.Key != "p" {
		t.Errorf("expected vessel 3 key 'p', got vessel %d key %q", de.VesselID, de.Key)
	}
}

func TestVesselPressureAbsent(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	ds, err := l.Vessel(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.P != nil {
		t.Error("expected nil pressure without p file or area")
	}
}

func TestVesselRatio(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1,1\n1,1\n1,1\n")
	a := writeFile(t, dir, "a.csv", "2,4\n2,4\n2,4\n")
	c := writeFile(t, dir, "c.csv", "1,1\n0.5,2\n0,4\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0, 1},
		Filepaths:   map[string]string{"q": q, "a": a, "c": c},
		A0:          f64(2.0),
		G0:          f64(1.0),
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	ds, err := l.Vessel(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.CA == nil {
		t.Fatal("expected c/a ratio")
	}
	if ds.CA[0][0] != 0.5 || ds.CA[0][1] != 0.25 {
		t.Errorf("wrong ratio row 0: %v", ds.CA[0])
	}
	if ds.CA[1][0] != 0.25 || ds.CA[2][1] != 1.0 {
		t.Errorf("wrong ratios: %v", ds.CA)
	}
}

func TestVesselRatioNeedsArea(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")
	c := writeFile(t, dir, "c.csv", "1\n1\n1\n")

	v := &manifest.Vessel{
		ID:          5,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q, "c": c},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 0)

	_, err := l.Vessel(v)
	var de *DerivedQuantityError
	if !errors.As(err, &de) {
		t.Fatalf("expected DerivedQuantityError, got %v", err)
	}
	if de.VesselID != 5 || de.Key != CompRatio {
		t.Errorf("expected vessel 5 key %q, got vessel %d key %q", CompRatio, de.VesselID, de.Key)
	}
}

func TestVessels(t *testing.T) {
	dir := t.TempDir()
	q0 := writeFile(t, dir, "q0.csv", "1\n2\n3\n")
	a0 := writeFile(t, dir, "a0.csv", "4\n4\n4\n")
	q1 := writeFile(t, dir, "q1.csv", "9\n8\n7\n")

	man := &manifest.Manifest{
		Vessels: []manifest.Vessel{
			{
				ID:          0,
				Coordinates: []float64{0},
				Filepaths:   map[string]string{"q": q0, "a": a0},
				A0:          f64(4.0),
				G0:          f64(2.0),
			},
			{
				ID:          1,
				Coordinates: []float64{0},
				Filepaths:   map[string]string{"q": q1},
			},
		},
	}
	l := testLoader(t, man, dir, 1.0)

	sets, err := l.Vessels([]int{1, 0})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(sets) != 2 {
		t.Fatalf("expected 2 datasets, got %d", len(sets))
	}
	if sets[0].ID != 1 || sets[1].ID != 0 {
		t.Errorf("caller order not preserved: %d, %d", sets[0].ID, sets[1].ID)
	}

	// shared truncation: both vessels lose the first row
	if sets[0].Frames() != 2 || sets[1].Frames() != 2 {
		t.Errorf("expected 2 frames each, got %d and %d", sets[0].Frames(), sets[1].Frames())
	}
	if sets[0].Q[0][0] != 8 {
		t.Errorf("expected first window row 8, got %v", sets[0].Q[0][0])
	}
	if sets[1].P == nil {
		t.Error("expected derived pressure for vessel 0")
	}
	if sets[0].P != nil || sets[0].CA != nil {
		t.Error("expected vessel 1 without pressure or ratio")
	}
}

func TestVesselsUnknownID(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n1\n1\n")

	man := &manifest.Manifest{
		Vessels: []manifest.Vessel{
			{ID: 0, Coordinates: []float64{0}, Filepaths: map[string]string{"q": q}},
		},
	}
	l := testLoader(t, man, dir, 0)

	_, err := l.Vessels([]int{0, 42})
	var nf *manifest.VesselNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected VesselNotFoundError, got %v", err)
	}
	if nf.ID != 42 {
		t.Errorf("expected id 42 in error, got %d", nf.ID)
	}
}

func TestDatasetComponent(t *testing.T) {
	ds := &Dataset{
		Q:  [][]float64{{1}},
		CA: [][]float64{{2}},
	}

	if ds.Component("q")[0][0] != 1 {
		t.Error("expected q matrix")
	}
	if ds.Component("c/a")[0][0] != 2 {
		t.Error("expected c/a matrix")
	}
	if ds.Component("a") != nil || ds.Component("p") != nil {
		t.Error("expected nil for absent components")
	}
	if ds.Component("bogus") != nil {
		t.Error("expected nil for unknown key")
	}
	if ds.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", ds.Frames())
	}
}

func TestVesselEmptyWindow(t *testing.T) {
	dir := t.TempDir()
	q := writeFile(t, dir, "q.csv", "1\n2\n3\n")

	v := &manifest.Vessel{
		ID:          0,
		Coordinates: []float64{0},
		Filepaths:   map[string]string{"q": q},
	}
	man := &manifest.Manifest{Vessels: []manifest.Vessel{*v}}
	l := testLoader(t, man, dir, 10.0)

	ds, err := l.Vessel(v)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if ds.Frames() != 0 {
		t.Errorf("expected empty window, got %d frames", ds.Frames())
	}
	if len(l.Times()) != 0 {
		t.Errorf("expected empty window times, got %d", len(l.Times()))
	}
}
