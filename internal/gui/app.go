package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sandfall/internal/config"
	"github.com/san-kum/sandfall/internal/geom"
	"github.com/san-kum/sandfall/internal/particle"
	"github.com/san-kum/sandfall/internal/sandbox"
	"github.com/san-kum/sandfall/internal/ui"
)

var (
	colBackground = rl.Black
	colBorder     = rl.NewColor(245, 222, 179, 255) // wheat
	colBannerText = rl.Red
)

type mode int

const (
	modeStarting mode = iota
	modeRunning
	modePaused
)

// App owns the window-side state of an interactive session. The sandbox
// and panel are mutated only from the frame loop.
type App struct {
	cfg   *config.Config
	box   *sandbox.Sandbox
	panel *ui.Panel
	mode  mode
}

// rlMeasurer measures labels with raylib's default font. Valid only
// after the window is initialized.
type rlMeasurer struct{}

func (rlMeasurer) MeasureLabel(text string, fontSize int32) (int32, int32) {
	return rl.MeasureText(text, fontSize), fontSize
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
}

// Run opens the window and blocks until it is closed. It returns an
// error only for selector misconfiguration, which is fatal at startup.
func Run(cfg *config.Config) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	region := cfg.Rect()
	box := sandbox.New(region)

	panel, err := ui.NewPanel(region.X+region.Width, region.Y, particle.Kinds(), region.Height, rlMeasurer{})
	if err != nil {
		return err
	}

	app := &App{cfg: cfg, box: box, panel: panel, mode: modeStarting}
	app.runLoop()
	return nil
}

func (a *App) runLoop() {
	for !rl.WindowShouldClose() {
		switch a.mode {
		case modeStarting:
			a.mode = modeRunning

		case modeRunning:
			a.update()
			a.draw()

		case modePaused:
			// Keep rendering the frozen state, poll for the resume edge.
			if pauseKeyPressed() {
				a.mode = modeRunning
			}
			a.draw()
		}
	}
}

func pauseKeyPressed() bool {
	return rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeySpace)
}

// update runs one frame of simulation and input. Order matters:
// integration and eviction come first, then spawns, then selection.
func (a *App) update() {
	a.box.Advance(rl.GetFrameTime())

	if pauseKeyPressed() {
		a.mode = modePaused
		return
	}

	mouse := rl.GetMousePosition()
	pos := geom.Vec2{X: mouse.X, Y: mouse.Y}

	// At most one spawn per frame while the button is held.
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && a.box.Contains(pos) {
		a.box.Spawn(pos)
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		if kind, ok := a.panel.HitTest(pos); ok {
			a.box.SetSelected(kind)
		}
	}
}
