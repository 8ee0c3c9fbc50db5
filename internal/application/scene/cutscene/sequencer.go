package cutscene

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/scene"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/application/ui"
	model "github.com/younwookim/cutscene/internal/domain/cutscene"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/config"
)

// NoSlot means the sequencer returns to the previous scene when done
const NoSlot = -1

// InputSource provides one input snapshot per tick
type InputSource interface {
	GetInput() system.InputState
}

// Resumer builds the gameplay scene for a saved slot
type Resumer interface {
	Resume(slot int) (scene.Scene, error)
}

// ScriptLoader loads a parsed cutscene script by name
type ScriptLoader interface {
	LoadCutscene(name string, msgs config.Messages, fps int) (*model.Script, error)
}

// Sequencer is the scene that plays the scenes of one script in order and
// hands control on when they are exhausted.
type Sequencer struct {
	name     string
	env      *Env
	scenes   []Scene
	input    InputSource
	music    MusicPlayer
	previous scene.Scene

	track       string
	initialized bool

	slot    int
	resumer Resumer

	background     color.RGBA
	menuBackground *assets.Image
	useMenuArt     bool
}

// NewSequencer creates a sequencer for script. previous is the scene to
// return to; nil ends the game when playback is over.
func NewSequencer(script *model.Script, env *Env, input InputSource, music MusicPlayer, previous scene.Scene) *Sequencer {
	s := &Sequencer{
		name:       script.Name,
		env:        env,
		input:      input,
		music:      music,
		previous:   previous,
		track:      script.Music,
		slot:       NoSlot,
		background: script.Background,
		useMenuArt: script.MenuBackgrounds,
	}
	for _, spec := range script.Scenes {
		s.scenes = append(s.scenes, NewScene(spec, env))
	}
	return s
}

// Load loads the named script and creates its sequencer. A failed load
// means the cutscene must not be entered.
func Load(loader ScriptLoader, name string, msgs config.Messages, env *Env, input InputSource, music MusicPlayer, previous scene.Scene) (*Sequencer, error) {
	script, err := loader.LoadCutscene(name, msgs, env.FPS)
	if err != nil {
		return nil, fmt.Errorf("failed to load cutscene %s: %w", name, err)
	}
	return NewSequencer(script, env, input, music, previous), nil
}

// ResumeSlot makes the sequencer resume the saved slot instead of returning
// to the previous scene.
func (s *Sequencer) ResumeSlot(slot int, r Resumer) {
	s.slot = slot
	s.resumer = r
}

// SetMenuBackground sets the art drawn under the scenes of scripts that
// ask for a menu background.
func (s *Sequencer) SetMenuBackground(img *assets.Image) {
	s.menuBackground = img
}

// WantsMenuBackground reports whether the script asked for a menu background
func (s *Sequencer) WantsMenuBackground() bool {
	return s.useMenuArt
}

// front returns the scene being played, or nil
func (s *Sequencer) front() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[0]
}

// init restarts the configured track once so playback can be synced to it
func (s *Sequencer) init() {
	if s.initialized {
		return
	}
	s.initialized = true

	if s.track == "" || s.music == nil || !s.music.MusicEnabled() {
		return
	}
	s.music.StopMusic()
	if !s.music.PlayMusic(s.track) {
		log.Printf("[Cutscene] Music %s could not be started", s.track)
	}
}

// Update implements scene.Scene
func (s *Sequencer) Update(dt float64) (scene.Scene, error) {
	s.init()

	if len(s.scenes) == 0 {
		return s.handOff()
	}

	in := s.input.GetInput()
	for len(s.scenes) > 0 && s.scenes[0].Tick(in).Done() {
		s.scenes[0].Close()
		s.scenes[0] = nil
		s.scenes = s.scenes[1:]
		// the next scene must not see the press that ended this one
		in = in.Consume()
		if sc := s.front(); sc != nil {
			sc.Relayout()
		}
	}

	return nil, nil
}

func (s *Sequencer) handOff() (scene.Scene, error) {
	if s.slot != NoSlot && s.resumer != nil {
		next, err := s.resumer.Resume(s.slot)
		if err == nil && next != nil {
			log.Printf("[Cutscene] Resuming slot %d", s.slot)
			return next, nil
		}
		log.Printf("[Cutscene] Failed to resume slot %d: %v", s.slot, err)
	}

	if s.previous == nil {
		log.Printf("[Cutscene] Finished %s", s.name)
		return nil, ebiten.Termination
	}
	return s.previous, nil
}

// menuArtRect returns where the menu background covers the view, or false
// when none is drawn
func (s *Sequencer) menuArtRect() (ui.Rect, bool) {
	if !s.useMenuArt || s.menuBackground == nil {
		return ui.Rect{}, false
	}
	w, h := s.menuBackground.Size()
	if w <= 0 || h <= 0 {
		return ui.Rect{}, false
	}
	return ui.FitToScreen(w, h, true, s.env.ViewW, s.env.ViewH), true
}

// Draw implements scene.Scene. The screen is cleared to the script
// background before the menu art and the front scene are drawn.
func (s *Sequencer) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	if dest, ok := s.menuArtRect(); ok {
		w, h := s.menuBackground.Size()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(dest.W)/float64(w), float64(dest.H)/float64(h))
		op.GeoM.Translate(float64(dest.X), float64(dest.Y))
		screen.DrawImage(s.menuBackground.Texture(), op)
	}

	if sc := s.front(); sc != nil {
		sc.Draw(screen)
	}
}

// OnEnter implements scene.Scene
func (s *Sequencer) OnEnter() {
	log.Printf("[Cutscene] Playing %s (%d scenes)", s.name, len(s.scenes))
}

// OnExit stops the cutscene music and releases unfinished scenes
func (s *Sequencer) OnExit() {
	if s.track != "" && s.music != nil {
		s.music.StopMusic()
	}
	for _, sc := range s.scenes {
		sc.Close()
	}
	s.scenes = nil
}

// Resize implements scene.Resizer
func (s *Sequencer) Resize(w, h int) {
	s.env.ViewW, s.env.ViewH = w, h
	if sc := s.front(); sc != nil {
		sc.Relayout()
	}
}
