package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/wagnandr/hemoview/internal/config"
	"github.com/wagnandr/hemoview/internal/dataset"
	"github.com/wagnandr/hemoview/internal/player"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
)

// App drives the native playback window. Each loop iteration handles
// input, advances the sequencer and draws the current frame.
type App struct {
	Sets  []*dataset.Dataset
	Times []float64
	Seq   *player.Sequencer
	Frame int
	Font  rl.Font
	Quit  bool
	W, H  int32
}

// initWindow opens the Raylib window at the configured size and pins the
// target FPS to the playback interval, so one drawn frame is one step.
func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "hemoview")
	fps := int32(1000 / config.DefaultIntervalMS)
	if cfg.IntervalMS > 0 {
		fps = int32(1000 / cfg.IntervalMS)
	}
	if fps < 1 {
		fps = 1
	}
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font from the system path and enables
// bilinear texture filtering.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp builds the playback window state over datasets sharing one time
// window. Playback starts running.
func NewApp(sets []*dataset.Dataset, times []float64, cfg *config.Config) *App {
	return &App{
		Sets:  sets,
		Times: times,
		Seq:   player.New(len(times)),
		Font:  loadFont(),
		W:     int32(cfg.Window.Width),
		H:     int32(cfg.Window.Height),
	}
}

// Run opens the playback window for the given datasets and blocks until
// the window is closed or the user quits.
func Run(sets []*dataset.Dataset, times []float64, cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(sets, times, cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !a.Quit && !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Quit = true
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) || rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.Seq.Toggle()
	}

	a.Frame = a.Seq.Advance()
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if len(a.Times) == 0 {
		a.drawEmpty()
	} else {
		a.drawPanels()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("hemoview", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: t = %.4f", a.Times[a.Frame]), 170, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if !a.Seq.Running() {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(a.W)-130, 30, 16, col)

	a.drawText("[SPACE/CLICK] PAUSE  [Q] QUIT", int(a.W)-300, int(a.H)-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, int(a.H)-40, 14, ColTextDim)
}

// drawEmpty covers the window when the start time truncated the whole
// time axis away and there are no frames to show.
func (a *App) drawEmpty() {
	a.drawText("hemoview", 30, 30, 24, ColSelect)
	a.drawText("nothing to play: start time is past the end of the data", 30, 80, 16, ColText)
	a.drawText("[Q] QUIT", 30, int(a.H)-40, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
