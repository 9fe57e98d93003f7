package dataset

import "fmt"

// ComponentLoadError reports a component matrix that could not be read or
// does not match the vessel's expected shape.
type ComponentLoadError struct {
	VesselID int
	Key      string
	Err      error
}

func (e *ComponentLoadError) Error() string {
	return fmt.Sprintf("vessel %d: component %q: %v", e.VesselID, e.Key, e.Err)
}

func (e *ComponentLoadError) Unwrap() error { return e.Err }

// DerivedQuantityError reports a derived quantity whose inputs are absent
// from the vessel's data.
type DerivedQuantityError struct {
	VesselID int
	Key      string
	Missing  string
}

func (e *DerivedQuantityError) Error() string {
	return fmt.Sprintf("vessel %d: cannot derive %q: missing %s", e.VesselID, e.Key, e.Missing)
}
