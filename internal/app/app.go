//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"wildfire/internal/core"
	"wildfire/internal/render"
	"wildfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type paletteProvider interface {
	Palette() []color.RGBA
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	finished bool
	seed     int64
}

// New constructs a Game for the provided simulation. The sim must already be
// reset.
func New(sim core.Sim, scale, hudWidth int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:      sim,
		painter:  gp,
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
	if provider, ok := sim.(paletteProvider); ok {
		g.palette = provider.Palette()
	} else {
		g.palette = []color.RGBA{{A: 255}, {R: 255, G: 255, B: 255, A: 255}}
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	if err := g.sim.Reset(seed); err != nil {
		log.Printf("reset with seed %d: %v", seed, err)
		g.finished = true
		return
	}
	g.seed = seed
	g.tickOnce = false
	g.finished = false
}

// Update handles per-frame logic and advances the simulation. Once nothing is
// burning the game holds the final frame until reset.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.hud != nil {
		g.hud.Update(g.simWidth(), g.finished)
	}

	if g.finished {
		return nil
	}
	if !g.paused || g.tickOnce {
		g.finished = !g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.hud != nil {
		g.hud.Draw(screen, g.simWidth(), g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return g.simWidth() + g.hudWidth, s.H * g.scale
}

func (g *Game) simWidth() int { return g.sim.Size().W * g.scale }
