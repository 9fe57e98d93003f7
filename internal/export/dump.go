package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wagnandr/hemoview/internal/dataset"
)

// DumpData mirrors one loaded dataset for machine consumption, after
// truncation, unit conversion and derivation.
type DumpData struct {
	VesselID int         `json:"vessel_id"`
	Grid     []float64   `json:"grid"`
	Times    []float64   `json:"times"`
	Q        [][]float64 `json:"q,omitempty"`
	A        [][]float64 `json:"a,omitempty"`
	P        [][]float64 `json:"p,omitempty"`
	C        [][]float64 `json:"c,omitempty"`
	CA       [][]float64 `json:"c_over_a,omitempty"`
}

// WriteJSON dumps a whole dataset as indented JSON.
func WriteJSON(w io.Writer, ds *dataset.Dataset, times []float64) error {
	data := DumpData{
		VesselID: ds.ID,
		Grid:     ds.Grid,
		Times:    times,
		Q:        ds.Q,
		A:        ds.A,
		P:        ds.P,
		C:        ds.C,
		CA:       ds.CA,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV dumps one component as rows of time plus one column per grid
// point.
func WriteCSV(w io.Writer, ds *dataset.Dataset, times []float64, component string) error {
	m := ds.Component(component)
	if m == nil {
		return fmt.Errorf("component %q not present in vessel %d", component, ds.ID)
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time"}
	for i := range ds.Grid {
		header = append(header, fmt.Sprintf("x%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, row := range m {
		record := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
