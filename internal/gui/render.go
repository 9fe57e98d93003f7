package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/floats"
)

// Panel grid layout, in pixels.
const (
	gridTop    = 90
	gridBottom = 50
	gridMargin = 16
	panelGap   = 10
	panelPad   = 8
	titleH     = 22
)

// drawPanels lays the vessels out as columns, one panel per component:
// flow on top, then pressure, then the concentration ratio.
func (a *App) drawPanels() {
	cols := len(a.Sets)
	if cols == 0 {
		return
	}

	areaW := int(a.W) - 2*gridMargin
	areaH := int(a.H) - gridTop - gridBottom
	colW := (areaW - (cols-1)*panelGap) / cols
	rowH := (areaH - 2*panelGap) / 3

	for c, ds := range a.Sets {
		x := gridMargin + c*(colW+panelGap)
		a.drawText(fmt.Sprintf("vessel %d", ds.ID), x+4, gridTop-24, 16, ColAccent)

		rows := []struct {
			title string
			data  [][]float64
			fixed bool
		}{
			{"q", ds.Q, false},
			{"p", ds.P, false},
			{"c/a", ds.CA, true},
		}
		for r, row := range rows {
			y := gridTop + r*(rowH+panelGap)
			rec := rl.NewRectangle(float32(x), float32(y), float32(colW), float32(rowH))
			a.drawPanel(rec, row.title, row.data, row.fixed)
		}
	}
}

// drawPanel frames one component and plots the current frame's row as a
// polyline over the grid axis. Autoscaled panels fit the row's own range;
// the ratio panel keeps the fixed [0, 1.05] range.
func (a *App) drawPanel(rec rl.Rectangle, title string, data [][]float64, fixed bool) {
	rl.DrawRectangleLinesEx(rec, 1, ColGrid)
	a.drawText(title, int(rec.X)+panelPad, int(rec.Y)+4, 14, ColSelect)

	if data == nil {
		a.drawText("not available", int(rec.X)+panelPad, int(rec.Y)+titleH+4, 14, ColTextDim)
		return
	}

	row := data[a.Frame]
	if len(row) == 0 {
		return
	}

	lo, hi := 0.0, 1.05
	if !fixed {
		lo, hi = floats.Min(row), floats.Max(row)
	}
	if hi == lo {
		hi = lo + 1
	}

	plotX := rec.X + panelPad
	plotY := rec.Y + titleH
	plotW := rec.Width - 2*panelPad
	plotH := rec.Height - titleH - panelPad

	points := make([]rl.Vector2, len(row))
	for i, v := range row {
		px := plotX
		if len(row) > 1 {
			px += float32(i) / float32(len(row)-1) * plotW
		}
		norm := (v - lo) / (hi - lo)
		if norm < 0 {
			norm = 0
		}
		if norm > 1 {
			norm = 1
		}
		py := plotY + plotH - float32(norm)*plotH
		points[i] = rl.NewVector2(px, py)
	}

	if len(points) < 2 {
		rl.DrawCircleV(points[0], 2, ColAccent)
		return
	}
	rl.DrawLineStrip(points, ColAccent)

	a.drawText(fmt.Sprintf("%.3g", hi), int(rec.X+rec.Width)-64, int(plotY), 12, ColTextDim)
	a.drawText(fmt.Sprintf("%.3g", lo), int(rec.X+rec.Width)-64, int(plotY+plotH)-12, 12, ColTextDim)
}
