// Package export writes playback to batch sinks: looping GIF animations,
// still charts and machine-readable dataset dumps.
package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"gonum.org/v1/gonum/floats"

	"github.com/wagnandr/hemoview/internal/dataset"
	"github.com/wagnandr/hemoview/internal/viz"
)

// Panel geometry in canvas cells. Rasterization blows each cell up to
// 8x16 pixels, keeping the terminal aspect ratio.
const (
	panelCellW = 40
	panelCellH = 9
	marginCell = 1
	charW      = 8
	charH      = 16
)

// WriteGIF replays the whole playback window into a forever-looping GIF,
// one column per vessel with flow, pressure and ratio rows, delayCS
// hundredths of a second per frame. It returns the encoded frame count.
func WriteGIF(w io.Writer, sets []*dataset.Dataset, times []float64, delayCS int) (int, error) {
	if len(sets) == 0 {
		return 0, errors.New("no datasets to animate")
	}
	if len(times) == 0 {
		return 0, errors.New("empty playback window")
	}
	if delayCS < 1 {
		delayCS = 1
	}

	cellW := len(sets)*(panelCellW+marginCell) + marginCell
	cellH := 3*(panelCellH+marginCell) + marginCell
	canvas := viz.NewCanvas(cellW, cellH)

	anim := &gif.GIF{LoopCount: 0}
	for frame := range times {
		canvas.Clear()
		for col, ds := range sets {
			drawColumn(canvas, ds, col, frame)
		}
		anim.Image = append(anim.Image, rasterize(canvas))
		anim.Delay = append(anim.Delay, delayCS)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return 0, err
	}
	return len(anim.Image), nil
}

// drawColumn plots one vessel's q, p and c/a rows for a frame. Missing
// quantities leave an empty framed panel. The ratio row keeps the fixed
// [0, 1.05] scale, the others fit the current frame.
func drawColumn(c *viz.Canvas, ds *dataset.Dataset, col, frame int) {
	matrices := [][][]float64{ds.Q, ds.P, ds.CA}
	fixed := []bool{false, false, true}

	for row, m := range matrices {
		x0 := (marginCell + col*(panelCellW+marginCell)) * 2
		y0 := (marginCell + row*(panelCellH+marginCell)) * 4
		w := panelCellW * 2
		h := panelCellH * 4

		c.DrawRect(x0, y0, w, h)
		if m == nil || frame >= len(m) || len(m[frame]) == 0 {
			continue
		}

		values := m[frame]
		lo, hi := 0.0, 1.05
		if !fixed[row] {
			lo, hi = floats.Min(values), floats.Max(values)
		}
		c.PlotSeries(x0+2, y0+2, w-4, h-4, values, lo, hi)
	}
}

// rasterize converts the braille canvas into a 2-color paletted image,
// one pixel block per lit dot.
func rasterize(c *viz.Canvas) *image.Paletted {
	imgW, imgH := c.Width*charW, c.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			dotW, dotH := charW/2, charH/4
			baseX, baseY := col*charW, row*charH
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					var bit int
					switch dy {
					case 0:
						bit = 1 << (dx * 3)
					case 1:
						bit = 2 << (dx * 3)
					case 2:
						bit = 4 << (dx * 3)
					case 3:
						if dx == 0 {
							bit = 0x40
						} else {
							bit = 0x80
						}
					}
					if pattern&bit != 0 {
						for py := 0; py < dotH; py++ {
							for px := 0; px < dotW; px++ {
								img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
							}
						}
					}
				}
			}
		}
	}
	return img
}
