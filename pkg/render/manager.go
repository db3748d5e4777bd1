// Package render provides the windowing layer for the graphics
// tutorial: a Manager that owns the window and the frame clock, a
// software drawing Context, and the tutorial stages themselves. The
// Manager invokes a single callback once per frame with the elapsed
// time and the Context; what (if anything) the callback draws is up
// to the stage.
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderFunc is the per-frame callback: elapsed time in seconds and
// the surface to draw on.
type RenderFunc func(t float64, ctx *Context)

// Manager owns the window, the frame clock, and the render callback.
type Manager struct {
	title  string
	width  int
	height int
	tps    int
	render RenderFunc

	ctx   *Context
	ticks int
}

// Option adjusts a Manager at construction time.
type Option func(*Manager)

// WithSize sets the logical framebuffer size.
func WithSize(width, height int) Option {
	return func(m *Manager) {
		m.width = width
		m.height = height
	}
}

// WithTPS sets the frame clock rate in ticks per second.
func WithTPS(tps int) Option {
	return func(m *Manager) {
		m.tps = tps
	}
}

// NewManager creates a window manager that calls render once per
// frame. A nil render is allowed and draws nothing.
func NewManager(title string, render RenderFunc, opts ...Option) (*Manager, error) {
	m := &Manager{
		title:  title,
		width:  640,
		height: 480,
		tps:    60,
		render: render,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.width <= 0 || m.height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", m.width, m.height)
	}
	if m.tps <= 0 {
		return nil, fmt.Errorf("invalid tick rate %d", m.tps)
	}
	m.ctx = NewContext(m.width, m.height)
	return m, nil
}

// Context returns the manager's drawing surface. Exposed so stages
// can be exercised without opening a window.
func (m *Manager) Context() *Context {
	return m.ctx
}

// Execute opens the window and blocks until it is closed.
func (m *Manager) Execute() error {
	ebiten.SetWindowTitle(m.title)
	ebiten.SetWindowSize(m.width, m.height)
	ebiten.SetTPS(m.tps)
	return ebiten.RunGame(&game{m: m})
}

// Step advances the frame clock by one tick and invokes the render
// callback. It is what Execute runs each frame, split out so tests
// and headless callers can drive frames directly.
func (m *Manager) Step() {
	t := float64(m.ticks) / float64(m.tps)
	m.ticks++
	m.ctx.Clear(color.RGBA{A: 0xFF})
	if m.render != nil {
		m.render(t, m.ctx)
	}
}

// game adapts the Manager to ebiten's Update/Draw/Layout loop.
type game struct {
	m   *Manager
	img *ebiten.Image
}

func (g *game) Update() error {
	g.m.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.m.width, g.m.height)
	}
	g.img.WritePixels(g.m.ctx.Frame().Pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.m.width, g.m.height
}
