package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wagnandr/hemoview/internal/config"
	"github.com/wagnandr/hemoview/internal/dataset"
	"github.com/wagnandr/hemoview/internal/export"
	"github.com/wagnandr/hemoview/internal/gui"
	"github.com/wagnandr/hemoview/internal/manifest"
	"github.com/wagnandr/hemoview/internal/viz"
)

var (
	manifestPath string
	vesselIDs    []int
	tStart       float64
	configFile   string
	// export
	exportOut string
	// snapshot
	snapComponent string
	snapFrame     int
	snapshotOut   string
	// dump
	dumpVessel    int
	dumpComponent string
	dumpFormat    string
)

// main is the entry point for the hemoview CLI; it registers commands and
// flags, plays back in the terminal when no subcommand is given, and exits
// with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "hemoview",
		Short: "vessel network playback for hemodynamic solver output",
		RunE:  runPlayback,
	}

	rootCmd.PersistentFlags().StringVar(&manifestPath, "filepath", "", "animation manifest (json)")
	rootCmd.PersistentFlags().IntSliceVar(&vesselIDs, "vessels", nil, "edge ids to show (default all)")
	rootCmd.PersistentFlags().Float64Var(&tStart, "t-start", 0.0, "drop frames before this time")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.MarkPersistentFlagRequired("filepath")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "playback in a native window",
		RunE:  runGUI,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export playback as an animated GIF",
		RunE:  exportGIF,
	}
	exportCmd.Flags().StringVar(&exportOut, "output", "animation.gif", "output file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one frame of one component as a chart",
		RunE:  snapshotChart,
	}
	snapshotCmd.Flags().StringVar(&snapComponent, "component", "q", "component to chart")
	snapshotCmd.Flags().IntVar(&snapFrame, "frame", 0, "frame index in the playback window")
	snapshotCmd.Flags().StringVar(&snapshotOut, "output", "chart.png", "output file (png or svg, by extension)")

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "dump one vessel's playback window to stdout",
		RunE:  dumpVesselData,
	}
	dumpCmd.Flags().IntVar(&dumpVessel, "vessel", 0, "edge id")
	dumpCmd.Flags().StringVar(&dumpComponent, "component", "q", "component to dump (csv only; json dumps all)")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "csv", "csv or json")
	dumpCmd.MarkFlagRequired("vessel")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "summarize the manifest without loading matrices",
		RunE:  showInfo,
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "load every selected vessel and check shapes",
		RunE:  validateData,
	}

	rootCmd.AddCommand(guiCmd, exportCmd, snapshotCmd, dumpCmd, infoCmd, validateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig returns the presentation defaults, overlaid from the config
// file when one was given.
func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	return config.Load(configFile)
}

// loadWindow loads the selected vessels over the shared playback window.
// An empty --vessels selection means every vessel in the manifest.
func loadWindow() ([]*dataset.Dataset, []float64, error) {
	man, err := manifest.Load(manifestPath)
	if err != nil {
		return nil, nil, err
	}

	ids := vesselIDs
	if len(ids) == 0 {
		ids = man.VesselIDs()
	}

	loader, err := dataset.NewLoader(man, tStart)
	if err != nil {
		return nil, nil, err
	}
	sets, err := loader.Vessels(ids)
	if err != nil {
		return nil, nil, err
	}
	return sets, loader.Times(), nil
}

func runPlayback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sets, times, err := loadWindow()
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(sets, times, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sets, times, err := loadWindow()
	if err != nil {
		return err
	}

	gui.Run(sets, times, cfg)
	return nil
}

func exportGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	sets, times, err := loadWindow()
	if err != nil {
		return err
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return err
	}
	defer f.Close()

	frames, err := export.WriteGIF(f, sets, times, cfg.GIFDelay())
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d frames)\n", exportOut, frames)
	return nil
}

func snapshotChart(cmd *cobra.Command, args []string) error {
	sets, times, err := loadWindow()
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(filepath.Ext(snapshotOut), ".")

	f, err := os.Create(snapshotOut)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := export.WriteChart(f, sets, times, snapComponent, snapFrame, format); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", snapshotOut)
	return nil
}

func dumpVesselData(cmd *cobra.Command, args []string) error {
	man, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	loader, err := dataset.NewLoader(man, tStart)
	if err != nil {
		return err
	}
	v, err := man.Vessel(dumpVessel)
	if err != nil {
		return err
	}
	ds, err := loader.Vessel(v)
	if err != nil {
		return err
	}

	switch dumpFormat {
	case "csv":
		return export.WriteCSV(os.Stdout, ds, loader.Times(), dumpComponent)
	case "json":
		return export.WriteJSON(os.Stdout, ds, loader.Times())
	default:
		return fmt.Errorf("unknown format: %s (want csv or json)", dumpFormat)
	}
}

func showInfo(cmd *cobra.Command, args []string) error {
	man, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	times, err := dataset.LoadTimes(man)
	if err != nil {
		return err
	}
	window := len(times) - dataset.StartIndex(times, tStart)

	fmt.Printf("manifest: %s\n", manifestPath)
	fmt.Printf("time axis: %d samples, %d in playback window\n\n", len(times), window)

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"edge", "grid points", "components", "A0", "G0"})
	for _, id := range man.VesselIDs() {
		v, err := man.Vessel(id)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(v.Filepaths))
		for k := range v.Filepaths {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		tw.AppendRow(table.Row{v.ID, len(v.Coordinates), strings.Join(keys, " "), fmtParam(v.A0), fmtParam(v.G0)})
	}
	fmt.Println(tw.Render())
	return nil
}

// fmtParam renders an optional tube-law parameter, "-" when unset.
func fmtParam(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func validateData(cmd *cobra.Command, args []string) error {
	man, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	ids := vesselIDs
	if len(ids) == 0 {
		ids = man.VesselIDs()
	}

	loader, err := dataset.NewLoader(man, tStart)
	if err != nil {
		return err
	}

	for _, id := range ids {
		v, err := man.Vessel(id)
		if err != nil {
			return err
		}
		ds, err := loader.Vessel(v)
		if err != nil {
			return err
		}

		comps := []string{manifest.CompFlow}
		if ds.A != nil {
			comps = append(comps, manifest.CompArea)
		}
		if ds.P != nil {
			comps = append(comps, manifest.CompPressure)
		}
		if ds.C != nil {
			comps = append(comps, manifest.CompConcentration)
		}
		if ds.CA != nil {
			comps = append(comps, dataset.CompRatio)
		}
		fmt.Printf("vessel %d: %d frames x %d points (%s)\n", ds.ID, ds.Frames(), len(ds.Grid), strings.Join(comps, " "))
	}

	fmt.Println("ok")
	return nil
}
