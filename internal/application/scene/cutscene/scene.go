package cutscene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/state"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/application/ui"
	model "github.com/younwookim/cutscene/internal/domain/cutscene"
)

// Scene plays one scene of a script
type Scene interface {
	// Tick advances the scene by one frame
	Tick(in system.InputState) state.Playback
	Draw(screen *ebiten.Image)
	// Relayout recomputes widget positions after the view size changed
	Relayout()
	Mode() model.Mode
	// Close releases the images and widgets owned by the scene
	Close()
}

// NewScene creates the player for spec. The mode is fixed for the lifetime
// of the scene.
func NewScene(spec *model.SceneSpec, env *Env) Scene {
	b := newBase(spec, env)
	if spec.Mode == model.ModeVScroll {
		return newScrollScene(b)
	}
	return newStaticScene(b)
}

// base is the state shared by both scene modes
type base struct {
	env      *Env
	settings model.Settings
	last     bool
	queue    *model.Queue

	next    *ui.Button
	close   *ui.Button
	advance *ui.Button
}

func newBase(spec *model.SceneSpec, env *Env) base {
	b := base{
		env:      env,
		settings: spec.Settings,
		last:     spec.Last,
		queue:    model.NewQueue(spec.Directives...),
		next:     ui.NewButton(env.NextButton, ui.GlyphNext),
		close:    ui.NewButton(env.CloseButton, ui.GlyphClose),
	}
	b.advance = b.next
	b.pinButtons()
	return b
}

func (b *base) pinButtons() {
	b.next.PinTopRight(b.env.ViewW)
	b.close.PinTopRight(b.env.ViewW)
}

// selectAdvance shows the close control when nothing follows this scene
func (b *base) selectAdvance(closing bool) {
	if b.last && closing {
		b.advance = b.close
	} else {
		b.advance = b.next
	}
}

// Advance returns the control currently used to skip or close
func (b *base) Advance() *ui.Button {
	return b.advance
}

type intent struct {
	skip   bool
	click  bool
	cancel bool
}

// readInput turns one tick of input into skip and cancel requests.
// When held is set, a held key keeps skipping every tick.
func (b *base) readInput(in system.InputState, held bool) intent {
	var it intent
	if b.advance.Update(in) {
		it.skip = true
		it.click = true
	}
	if b.advance.Pressed() {
		return it
	}

	for _, a := range []system.Action{system.ActionMain1, system.ActionAccept} {
		if in.JustPressed(a) || (held && in.IsHeld(a)) {
			it.skip = true
		}
	}
	it.cancel = in.JustPressed(system.ActionCancel)
	return it
}

func drawImage(screen *ebiten.Image, img *ebiten.Image, x, y int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, op)
}
