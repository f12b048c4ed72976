package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/san-kum/sandfall/internal/particle"
	"github.com/san-kum/sandfall/internal/sandbox"
)

const (
	liveWidth   = 70
	liveHeight  = 22
	clearScreen = "\033[2J\033[H"
)

// LiveRenderer draws headless runs as an ASCII view of the play area.
// It implements sandbox.Observer and skips frames to hold frameRate.
type LiveRenderer struct {
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
}

func NewLiveRenderer(frameRate int) *LiveRenderer {
	canvas := make([][]rune, liveHeight)
	for i := range canvas {
		canvas[i] = make([]rune, liveWidth)
	}
	return &LiveRenderer{frameRate: frameRate, canvas: canvas}
}

func (r *LiveRenderer) OnFrame(box *sandbox.Sandbox, f sandbox.Frame) {
	elapsed := time.Since(r.lastFrame)
	if elapsed < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	r.clear()

	region := box.Region()
	for _, p := range box.Particles() {
		if region.Width == 0 || region.Height == 0 {
			continue
		}
		cx := int((p.Pos.X - float32(region.X)) / float32(region.Width) * float32(liveWidth-1))
		cy := int((p.Pos.Y - float32(region.Y)) / float32(region.Height) * float32(liveHeight-1))
		r.set(cx, cy, glyph(p.Kind))
	}

	r.render(f)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < liveWidth && y >= 0 && y < liveHeight {
		r.canvas[y][x] = c
	}
}

func glyph(k particle.Kind) rune {
	switch k {
	case particle.Wall:
		return '#'
	default:
		return '.'
	}
}

func (r *LiveRenderer) render(f sandbox.Frame) {
	var b strings.Builder
	b.WriteString(clearScreen)

	border := "+" + strings.Repeat("-", liveWidth) + "+"
	b.WriteString(border + "\n")
	for _, row := range r.canvas {
		b.WriteString("|")
		b.WriteString(string(row))
		b.WriteString("|\n")
	}
	b.WriteString(border + "\n")
	b.WriteString(fmt.Sprintf("t=%6.2fs  live=%d  spawned=%d  evicted=%d\n",
		f.T, f.Live, f.Spawned, f.Evicted))

	fmt.Print(b.String())
}
