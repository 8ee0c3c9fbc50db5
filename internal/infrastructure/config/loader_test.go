package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/cutscene/internal/domain/cutscene"
)

func TestLoader_LoadEngine(t *testing.T) {
	loader := NewLoader("../../../cmd/cutscene/data")

	cfg, err := loader.LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.True(t, cfg.Display.Resizable)
	assert.Equal(t, 18.0, cfg.Fonts.CaptionSize)
	assert.Equal(t, []string{"Enter", "Space"}, cfg.Input.Accept)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.Len(t, cfg.Menu.Backgrounds, 1)
}

func TestLoader_LoadEngine_Defaults(t *testing.T) {
	fsys := fstest.MapFS{
		"engine.yaml": {Data: []byte("display:\n  screenWidth: 320\n")},
	}
	loader := NewFSLoader(fsys, "test")

	cfg, err := loader.LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 480, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, []string{"Escape"}, cfg.Input.Cancel)
	assert.NotEmpty(t, cfg.Buttons.Next)
}

func TestLoader_LoadEngine_Missing(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadEngine()
	assert.Error(t, err)
}

func TestLoader_LoadCutscene(t *testing.T) {
	loader := NewLoader("../../../cmd/cutscene/data")

	script, err := loader.LoadCutscene("intro", nil, 60)
	require.NoError(t, err)

	require.Len(t, script.Scenes, 2)
	assert.Equal(t, "music/intro.wav", script.Music)
	assert.Equal(t, cutscene.ModeStatic, script.Scenes[0].Mode)
	assert.True(t, script.Scenes[1].Last)
	assert.InDelta(t, 0.05, script.Scenes[0].Settings.CaptionMargins.Y, 1e-9)
}

func TestLoader_LoadCutscene_Credits(t *testing.T) {
	loader := NewLoader("../../../cmd/cutscene/data")

	script, err := loader.LoadCutscene("credits.txt", nil, 60)
	require.NoError(t, err)

	// Three adjacent vscroll sections merge into one scene.
	require.Len(t, script.Scenes, 1)
	assert.Equal(t, cutscene.ModeVScroll, script.Scenes[0].Mode)
	assert.Len(t, script.Scenes[0].Directives, 11)
	assert.True(t, script.MenuBackgrounds)
	assert.Equal(t, 4.0, script.Scenes[0].Settings.VScrollSpeed)
}

func TestLoader_LoadCutscene_NotFound(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "empty")

	_, err := loader.LoadCutscene("missing", nil, 60)
	assert.Error(t, err)
}
