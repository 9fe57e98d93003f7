// Package dataset loads per-vessel simulation output into memory and
// derives the quantities playback needs.
//
// A [Loader] fixes the playback window once (the shared time axis plus a
// start time) and then assembles one [Dataset] per vessel:
//
//   - q: flow, always written by the solver
//   - a: cross-sectional area, when written
//   - p: pressure, loaded and unit-converted, or derived from a via the
//     elastic tube law when the solver wrote no pressure file
//   - c and c/a: advected concentration and its ratio to area
//
// All matrices are truncated to the playback window and validated against
// the vessel grid before any rendering surface sees them.
package dataset
