// Package cutscene holds the data model of scripted cutscenes: the directives
// parsed from a cutscene file, the per-scene directive queue and the
// presentation settings shared by the scenes of one script.
package cutscene

// Kind identifies the type of a directive
type Kind int

const (
	KindCaption Kind = iota
	KindImage
	KindPause
	KindSoundFX
	KindText
	KindSeparator
)

// String returns the key name used for the directive in cutscene files
func (k Kind) String() string {
	switch k {
	case KindCaption:
		return "caption"
	case KindImage:
		return "image"
	case KindPause:
		return "pause"
	case KindSoundFX:
		return "soundfx"
	case KindText:
		return "text"
	case KindSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// Directive is one parsed instruction of a scene.
// The set of implementations is closed to this package.
type Directive interface {
	Kind() Kind
	directive()
}

// Caption replaces the caption shown under a static scene
type Caption struct {
	Text string
}

// Image shows art. Scale is only meaningful in static scenes.
type Image struct {
	Path  string
	Scale ScaleMode
}

// Pause holds static playback for a number of ticks
type Pause struct {
	Ticks int
}

// SoundFX plays a sound once
type SoundFX struct {
	Path string
}

// Text is a single centered line in a scrolling scene
type Text struct {
	Text string
}

// Separator reserves an invisible vertical gap in a scrolling scene
type Separator struct {
	Height int
}

func (Caption) Kind() Kind   { return KindCaption }
func (Image) Kind() Kind     { return KindImage }
func (Pause) Kind() Kind     { return KindPause }
func (SoundFX) Kind() Kind   { return KindSoundFX }
func (Text) Kind() Kind      { return KindText }
func (Separator) Kind() Kind { return KindSeparator }

func (Caption) directive()   {}
func (Image) directive()     {}
func (Pause) directive()     {}
func (SoundFX) directive()   {}
func (Text) directive()      {}
func (Separator) directive() {}
