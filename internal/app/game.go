//go:build ebiten

package app

import (
	"fmt"

	"vga-life/internal/render"
	"vga-life/internal/ui"
	"vga-life/pkg/chip"
	"vga-life/pkg/vga"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 168

// Game adapts the chip and its sync generator to the ebiten.Game interface.
type Game struct {
	eng     *chip.Engine
	sync    *vga.Sync
	painter *render.Painter
	hud     *ui.HUD
	budget  *TickBudget
	palette render.Palette

	run       bool
	randomize bool
	reset     bool
}

// New constructs a Game from the provided configuration.
func New(cfg *Config) *Game {
	g := &Game{
		eng:     chip.New(cfg.ClockHz),
		sync:    vga.NewSync(),
		painter: render.NewPainter(),
		budget:  NewTickBudget(cfg.ClockHz, cfg.TPS),
		palette: render.DefaultPalette(),
		run:     true,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(hudWidth)
	}
	return g
}

// Update handles input and advances the chip by this frame's tick budget.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.run = !g.run
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomize = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.reset = true
	}

	for n := g.budget.Ticks(); n > 0; n-- {
		in := chip.Inputs{
			Reset:     g.reset,
			Run:       g.run,
			Randomize: g.randomize,
			VSync:     g.sync.VSync(),
		}
		g.reset = false
		g.sync.Tick()
		g.eng.Tick(in)
		// The randomize request stays latched until the chip honors it.
		if g.randomize && g.eng.Phase() == chip.PhaseInit {
			g.randomize = false
		}
	}
	return nil
}

// Draw renders the current grid and the status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.eng.Cells(), g.palette)
	if g.hud != nil {
		g.hud.Draw(screen, render.ScreenW, g.statusLines())
	}
}

func (g *Game) statusLines() []string {
	running := "running"
	if !g.run {
		running = "paused"
	}
	return []string{
		"vga-life",
		"",
		fmt.Sprintf("phase  %s", g.eng.Phase()),
		fmt.Sprintf("gen    %d", g.eng.Generation()),
		fmt.Sprintf("pop    %d", g.eng.Population()),
		fmt.Sprintf("state  %s", running),
		"",
		"space  run/pause",
		"r      randomize",
		"h      reset",
		"q      quit",
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.ScreenSize()
	return w, h
}

// ScreenSize returns the logical window dimensions including the panel.
func (g *Game) ScreenSize() (int, int) {
	w := render.ScreenW
	if g.hud != nil {
		w += hudWidth
	}
	return w, render.ScreenH
}
