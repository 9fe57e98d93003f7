// Package manifest reads the JSON index a simulation run writes next to
// its per-vessel data files: a shared time axis plus, for every vessel,
// the spatial grid, the component data files and optional tube-law
// parameters.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Component keys used in a vessel's filepath table.
const (
	CompFlow          = "q"
	CompArea          = "a"
	CompPressure      = "p"
	CompConcentration = "c"
)

// Vessel describes one vessel segment listed in a manifest.
type Vessel struct {
	ID          int               `json:"edge_id"`
	Coordinates []float64         `json:"coordinates"`
	Filepaths   map[string]string `json:"filepaths"`
	A0          *float64          `json:"A0"`
	G0          *float64          `json:"G0"`
}

// Manifest ties the shared time axis to the per-vessel data files of a
// simulation run.
type Manifest struct {
	TimeFilepath string   `json:"time_filepath"`
	Vessels      []Vessel `json:"vessels"`
}

// LoadError reports a manifest that could not be read or failed validation.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("manifest %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// VesselNotFoundError reports an edge id absent from the manifest.
type VesselNotFoundError struct {
	ID int
}

func (e *VesselNotFoundError) Error() string {
	return fmt.Sprintf("vessel %d not found in manifest", e.ID)
}

// Load reads and validates a manifest file. Relative paths inside it (the
// time axis and every component file) are resolved against the directory
// containing the manifest, so callers can open them directly.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var man Manifest
	if err := json.Unmarshal(data, &man); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	if err := man.validate(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	man.TimeFilepath = resolve(dir, man.TimeFilepath)
	for i := range man.Vessels {
		for key, p := range man.Vessels[i].Filepaths {
			man.Vessels[i].Filepaths[key] = resolve(dir, p)
		}
	}

	return &man, nil
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func (m *Manifest) validate() error {
	if m.TimeFilepath == "" {
		return errors.New("missing time_filepath")
	}
	if len(m.Vessels) == 0 {
		return errors.New("no vessels listed")
	}

	seen := make(map[int]bool, len(m.Vessels))
	for i := range m.Vessels {
		v := &m.Vessels[i]
		if seen[v.ID] {
			return fmt.Errorf("duplicate edge_id %d", v.ID)
		}
		seen[v.ID] = true

		if len(v.Coordinates) == 0 {
			return fmt.Errorf("vessel %d: empty coordinates", v.ID)
		}
		if v.Filepaths[CompFlow] == "" {
			return fmt.Errorf("vessel %d: no %q component file", v.ID, CompFlow)
		}
	}
	return nil
}

// Vessel returns the vessel with the given edge id.
func (m *Manifest) Vessel(id int) (*Vessel, error) {
	for i := range m.Vessels {
		if m.Vessels[i].ID == id {
			return &m.Vessels[i], nil
		}
	}
	return nil, &VesselNotFoundError{ID: id}
}

// VesselIDs returns every edge id in manifest order.
func (m *Manifest) VesselIDs() []int {
	ids := make([]int, len(m.Vessels))
	for i := range m.Vessels {
		ids[i] = m.Vessels[i].ID
	}
	return ids
}
