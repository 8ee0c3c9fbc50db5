package cutscene

import "image/color"

// Mode selects how a scene plays its directives. It is fixed for the
// lifetime of a scene.
type Mode int

const (
	ModeStatic Mode = iota
	ModeVScroll
)

// String returns the section name that creates a scene of this mode
func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "scene"
	case ModeVScroll:
		return "vscroll"
	default:
		return "unknown"
	}
}

// ScaleMode controls how static art is fitted to the screen
type ScaleMode int

const (
	ScaleNone ScaleMode = iota
	ScaleHeight
	ScaleScreen
)

// Valid reports whether the value is one of the known scale modes
func (s ScaleMode) Valid() bool {
	return s >= ScaleNone && s <= ScaleScreen
}

// String returns the string representation of the scale mode
func (s ScaleMode) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleHeight:
		return "fit height"
	case ScaleScreen:
		return "fit screen"
	default:
		return "unknown"
	}
}

// Margins are fractions of the screen size
type Margins struct {
	X float64
	Y float64
}

// Settings is the presentation configuration copied into every scene when it
// is created.
type Settings struct {
	CaptionMargins    Margins
	CaptionBackground color.RGBA
	// VScrollSpeed is the scroll distance per second, relative to the view height.
	VScrollSpeed float64
}

// DefaultSettings returns the settings used before any global key is parsed
func DefaultSettings() Settings {
	return Settings{
		CaptionMargins:    Margins{X: 0.1, Y: 0},
		CaptionBackground: color.RGBA{0, 0, 0, 200},
		VScrollSpeed:      4,
	}
}

// SceneSpec describes one scene of a script
type SceneSpec struct {
	Mode       Mode
	Settings   Settings
	Directives []Directive
	Last       bool
}

// Append adds a directive at the end of the scene
func (s *SceneSpec) Append(d Directive) {
	s.Directives = append(s.Directives, d)
}

// Script is the parsed form of a cutscene file
type Script struct {
	Name            string
	Scenes          []*SceneSpec
	Music           string
	MenuBackgrounds bool
	// Background is the color the host clears the screen with while the
	// cutscene is active.
	Background color.RGBA
}

// Back returns the most recently created scene, or nil
func (s *Script) Back() *SceneSpec {
	if len(s.Scenes) == 0 {
		return nil
	}
	return s.Scenes[len(s.Scenes)-1]
}
