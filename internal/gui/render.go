package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sandfall/internal/particle"
	"github.com/san-kum/sandfall/internal/ui"
)

const (
	bannerFontSize int32 = 50
	hudFontSize    int32 = 20
)

func toColor(c particle.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBackground)

	region := a.box.Region()
	rl.DrawRectangleLines(region.X, region.Y, region.Width, region.Height, colBorder)

	for _, p := range a.box.Particles() {
		rl.DrawRectangle(int32(p.Pos.X), int32(p.Pos.Y), p.W, p.H, toColor(p.Kind.Color()))
	}

	a.drawSelector()

	hud := fmt.Sprintf("%d particles", a.box.Len())
	rl.DrawText(hud, region.X, region.Y+region.Height+10, hudFontSize, colBorder)

	if a.mode == modePaused {
		a.drawBanner("Paused. Press P to resume")
	}

	rl.EndDrawing()
}

// drawSelector renders every control: the selected kind as a filled box
// with inverted label, the rest as an outline with the label in the
// kind's own color.
func (a *App) drawSelector() {
	for _, c := range a.panel.Controls() {
		col := toColor(c.Kind.Color())
		box := c.Box
		labelX := box.X + ui.LabelInset
		labelY := box.Y + (box.Height-ui.FontSize)/2

		if c.Kind == a.box.Selected() {
			rl.DrawRectangle(box.X, box.Y, box.Width, box.Height, col)
			rl.DrawText(c.Kind.String(), labelX, labelY, ui.FontSize, colBackground)
			continue
		}

		rl.DrawRectangleLines(box.X, box.Y, box.Width, box.Height, col)
		rl.DrawText(c.Kind.String(), labelX, labelY, ui.FontSize, col)
	}
}

func (a *App) drawBanner(text string) {
	textWidth := rl.MeasureText(text, bannerFontSize)
	x := a.cfg.Window.Width/2 - textWidth/2
	y := a.cfg.Window.Height/2 - bannerFontSize

	rl.DrawRectangle(x-10, y-10, textWidth+20, bannerFontSize+20, colBorder)
	rl.DrawText(text, x, y, bannerFontSize, colBannerText)
}
