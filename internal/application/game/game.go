// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current   scene.Scene
	screenW   int
	screenH   int
	dt        float64
	scale     int
	resizable bool
	resized   bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		scale:   1,
	}
	g.enter(g.current)
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.resized {
		g.resized = false
		if r, ok := g.current.(scene.Resizer); ok {
			r.Resize(g.screenW, g.screenH)
		}
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.enter(g.current)
	}

	return nil
}

func (g *Game) enter(s scene.Scene) {
	s.OnEnter()
	if r, ok := s.(scene.Resizer); ok {
		r.Resize(g.screenW, g.screenH)
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// When resizable, the logical size follows the window divided by the
// window scale and the current scene is notified on the next Update.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if g.resizable && w > 0 && h > 0 && (w != g.screenW || h != g.screenH) {
		log.Printf("[Game] Resized to %dx%d", w, h)
		g.screenW = w
		g.screenH = h
		g.resized = true
	}
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetResizable makes the logical screen follow the window size.
func (g *Game) SetResizable(resizable bool) {
	g.resizable = resizable
}

// SetScale sets how many window pixels make one logical pixel.
// Values below 1 are treated as 1.
func (g *Game) SetScale(scale int) {
	g.scale = max(scale, 1)
}

// Current returns the active scene.
func (g *Game) Current() scene.Scene {
	return g.current
}
