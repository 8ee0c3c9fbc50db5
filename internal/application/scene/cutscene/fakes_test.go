package cutscene

import (
	"fmt"
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/cutscene/internal/application/scene"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/sound"
)

// fakeImages serves blank images of fixed sizes
type fakeImages struct {
	sizes  map[string][2]int
	loaded []string
}

func (f *fakeImages) LoadImage(path string) (*assets.Image, error) {
	f.loaded = append(f.loaded, path)
	size, ok := f.sizes[path]
	if !ok {
		return nil, fmt.Errorf("image %s not found", path)
	}
	return assets.NewImage(image.NewRGBA(image.Rect(0, 0, size[0], size[1]))), nil
}

// fakeSounds records sound requests
type fakeSounds struct {
	missing  map[string]bool
	nextID   sound.SoundID
	loaded   []string
	unloaded []sound.SoundID
	played   []sound.SoundID
}

func (f *fakeSounds) Load(path, category string) sound.SoundID {
	f.loaded = append(f.loaded, category+":"+path)
	if f.missing[path] {
		return 0
	}
	f.nextID++
	return f.nextID
}

func (f *fakeSounds) Unload(id sound.SoundID) {
	f.unloaded = append(f.unloaded, id)
}

func (f *fakeSounds) Play(id sound.SoundID) {
	f.played = append(f.played, id)
}

// fakeMusic records music requests
type fakeMusic struct {
	enabled bool
	played  []string
	stops   int
}

func (f *fakeMusic) MusicEnabled() bool { return f.enabled }

func (f *fakeMusic) PlayMusic(path string) bool {
	f.played = append(f.played, path)
	return true
}

func (f *fakeMusic) StopMusic() { f.stops++ }

// scriptedInput replays queued frames, then idle input
type scriptedInput struct {
	frames []system.InputState
}

func (s *scriptedInput) GetInput() system.InputState {
	if len(s.frames) == 0 {
		return system.InputState{}
	}
	in := s.frames[0]
	s.frames = s.frames[1:]
	return in
}

// stubScene stands in for the scene played before or after a cutscene
type stubScene struct {
	name string
}

func (s *stubScene) Update(dt float64) (scene.Scene, error) { return nil, nil }
func (s *stubScene) Draw(screen *ebiten.Image)              {}
func (s *stubScene) OnEnter()                               {}
func (s *stubScene) OnExit()                                {}

func testEnv(t *testing.T) (*Env, *fakeImages, *fakeSounds) {
	t.Helper()
	font, err := assets.DefaultFont(16)
	require.NoError(t, err)

	images := &fakeImages{sizes: map[string][2]int{
		"bg.png":   {800, 600},
		"wide.png": {1000, 500},
		"logo.png": {100, 50},
	}}
	sounds := &fakeSounds{missing: map[string]bool{}}

	return &Env{
		ViewW:  640,
		ViewH:  480,
		FPS:    60,
		Images: images,
		Sounds: sounds,
		Font:   font,
	}, images, sounds
}

func idle() system.InputState {
	return system.InputState{}
}

func press(a system.Action) system.InputState {
	var in system.InputState
	in.Pressed[a] = true
	in.Held[a] = true
	in.MouseX, in.MouseY = 10, 400
	return in
}

func hold(a system.Action) system.InputState {
	var in system.InputState
	in.Held[a] = true
	in.MouseX, in.MouseY = 10, 400
	return in
}

// clickAt returns the press and release frames of a click at x, y
func clickAt(x, y int) (down, up system.InputState) {
	down.MouseX, down.MouseY = x, y
	down.Pressed[system.ActionMain1] = true
	down.Held[system.ActionMain1] = true

	up.MouseX, up.MouseY = x, y
	up.Released[system.ActionMain1] = true
	return down, up
}
