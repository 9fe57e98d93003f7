package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
		}
	}
	return c
}

// Set lights a pixel at (x, y) in sub-pixel coordinates. The canvas size
// in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect outlines a rectangle in sub-pixel coordinates.
func (c *Canvas) DrawRect(x0, y0, w, h int) {
	if w < 2 || h < 2 {
		return
	}
	c.DrawLine(x0, y0, x0+w-1, y0)
	c.DrawLine(x0, y0+h-1, x0+w-1, y0+h-1)
	c.DrawLine(x0, y0, x0, y0+h-1)
	c.DrawLine(x0+w-1, y0, x0+w-1, y0+h-1)
}

// PlotSeries draws values as a polyline inside a sub-pixel region,
// mapping [lo, hi] onto the region height. Values outside the range are
// clamped to the region edge.
func (c *Canvas) PlotSeries(x0, y0, w, h int, values []float64, lo, hi float64) {
	n := len(values)
	if n == 0 || w < 1 || h < 1 {
		return
	}

	span := hi - lo
	if span <= 0 {
		span = 1
	}

	toY := func(v float64) int {
		y := y0 + h - 1 - int(float64(h-1)*(v-lo)/span+0.5)
		if y < y0 {
			y = y0
		}
		if y > y0+h-1 {
			y = y0 + h - 1
		}
		return y
	}

	if n == 1 {
		c.Set(x0, toY(values[0]))
		return
	}

	prevX, prevY := x0, toY(values[0])
	for i := 1; i < n; i++ {
		x := x0 + i*(w-1)/(n-1)
		y := toY(values[i])
		c.DrawLine(prevX, prevY, x, y)
		prevX, prevY = x, y
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
