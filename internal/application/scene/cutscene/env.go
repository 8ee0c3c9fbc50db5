// Package cutscene provides cutscene playback: the static and scrolling
// scene players and the Sequencer scene that runs them in order.
package cutscene

import (
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/sound"
)

// SoundCategory is the category cutscene sound effects are loaded under
const SoundCategory = "Cutscenes"

// ImageLoader loads an image by path
type ImageLoader interface {
	LoadImage(path string) (*assets.Image, error)
}

// SoundSystem loads and plays one-shot sound effects.
// Load returns 0 when the sound could not be loaded.
type SoundSystem interface {
	Load(path, category string) sound.SoundID
	Unload(id sound.SoundID)
	Play(id sound.SoundID)
}

// MusicPlayer controls the background music track
type MusicPlayer interface {
	MusicEnabled() bool
	PlayMusic(path string) bool
	StopMusic()
}

// Env holds the collaborators and view metrics shared by the scenes of one
// sequence. The view size is updated in place on resize.
type Env struct {
	ViewW int
	ViewH int
	FPS   int

	Images ImageLoader
	Sounds SoundSystem
	Font   *assets.Font

	// Optional button art. Nil draws the built-in glyph.
	NextButton  *assets.Image
	CloseButton *assets.Image
}
