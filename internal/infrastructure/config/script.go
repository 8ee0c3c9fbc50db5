package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/younwookim/cutscene/internal/domain/cutscene"
)

// ErrNoScenes is returned when a cutscene file defines no scene
var ErrNoScenes = errors.New("no scenes defined")

// Messages looks up display strings by key
type Messages interface {
	Get(key string) string
}

// scriptBuilder turns parser records into a cutscene.Script
type scriptBuilder struct {
	parser   *FileParser
	msgs     Messages
	fps      int
	settings cutscene.Settings
	script   *cutscene.Script
}

// ParseScript parses a cutscene file. The returned diagnostics list every
// skipped line; they do not make the parse fail. The error is non-nil when
// the input cannot be read or no scene was defined.
func ParseScript(name string, r io.Reader, msgs Messages, fps int) (*cutscene.Script, []error, error) {
	b := &scriptBuilder{
		parser:   NewFileParser(name, r),
		msgs:     msgs,
		fps:      fps,
		settings: cutscene.DefaultSettings(),
		script:   &cutscene.Script{Name: name},
	}

	for b.parser.Next() {
		b.handle(b.parser.Record())
	}
	diags := b.parser.Diagnostics()

	if err := b.parser.Err(); err != nil {
		return nil, diags, fmt.Errorf("failed to read cutscene %s: %w", name, err)
	}

	if len(b.script.Scenes) == 0 {
		log.Printf("[Cutscene] No scenes defined in cutscene file %s", name)
		return nil, diags, fmt.Errorf("%s: %w", name, ErrNoScenes)
	}
	b.script.Back().Last = true

	// The host renderer shows whatever is behind the cutscene through
	// transparent black.
	b.script.Background = color.RGBA{0, 0, 0, 0}

	return b.script, diags, nil
}

func (b *scriptBuilder) handle(rec Record) {
	if rec.NewSection {
		b.openSection(rec.Section)
	}

	switch rec.Section {
	case "":
		b.globalKey(rec)
	case "scene":
		if d := b.sceneKey(rec); d != nil {
			b.script.Back().Append(d)
		}
	case "vscroll":
		if d := b.vscrollKey(rec); d != nil {
			b.script.Back().Append(d)
		}
	default:
		b.parser.Errorf("%w: '%s'", ErrUnknownSection, rec.Section)
	}
}

func (b *scriptBuilder) openSection(section string) {
	switch section {
	case "scene":
		b.newScene(cutscene.ModeStatic)
	case "vscroll":
		// Adjacent vscroll sections extend the same scene.
		if last := b.script.Back(); last == nil || last.Mode != cutscene.ModeVScroll {
			b.newScene(cutscene.ModeVScroll)
		}
	}
}

func (b *scriptBuilder) newScene(mode cutscene.Mode) {
	b.script.Scenes = append(b.script.Scenes, &cutscene.SceneSpec{
		Mode:     mode,
		Settings: b.settings,
	})
}

func (b *scriptBuilder) globalKey(rec Record) {
	switch rec.Key {
	case "caption_margins":
		xs, rest := PopFirst(rec.Value)
		ys, _ := PopFirst(rest)
		x, errX := ParseFloat(xs)
		y, errY := ParseFloat(ys)
		if err := errors.Join(errX, errY); err != nil {
			b.parser.Errorf("caption_margins: %w", err)
			return
		}
		b.settings.CaptionMargins = cutscene.Margins{X: x / 100, Y: y / 100}
	case "caption_background":
		c, err := ParseColor(rec.Value)
		if err != nil {
			b.parser.Errorf("caption_background: %w", err)
			return
		}
		b.settings.CaptionBackground = c
	case "vscroll_speed":
		v, err := ParseFloat(rec.Value)
		if err != nil {
			b.parser.Errorf("vscroll_speed: %w", err)
			return
		}
		b.settings.VScrollSpeed = v
	case "menu_backgrounds":
		b.script.MenuBackgrounds = ParseBool(rec.Value)
	case "music":
		b.script.Music = rec.Value
	default:
		b.parser.Errorf("%w: '%s'", ErrUnknownKey, rec.Key)
	}
}

func (b *scriptBuilder) sceneKey(rec Record) cutscene.Directive {
	switch rec.Key {
	case "caption":
		return cutscene.Caption{Text: b.lookup(rec.Value)}
	case "image":
		p, rest := PopFirst(rec.Value)
		scale := cutscene.ScaleNone
		if rest != "" {
			first, _ := PopFirst(rest)
			v, err := ParseInt(first)
			if err != nil || !cutscene.ScaleMode(v).Valid() {
				b.parser.Errorf("%w: '%s' is not a valid scaling type", ErrInvalidValue, first)
			} else {
				scale = cutscene.ScaleMode(v)
			}
		}
		return cutscene.Image{Path: p, Scale: scale}
	case "pause":
		if !HasDurationUnit(rec.Value) {
			b.parser.Errorf("duration '%s' does not have a suffix, assuming 'ms'", rec.Value)
		}
		ticks, err := ParseDuration(rec.Value, b.fps)
		if err != nil {
			b.parser.Errorf("pause: %w", err)
			return nil
		}
		return cutscene.Pause{Ticks: ticks}
	case "soundfx":
		return cutscene.SoundFX{Path: rec.Value}
	default:
		b.parser.Errorf("%w: '%s'", ErrUnknownKey, rec.Key)
		return nil
	}
}

func (b *scriptBuilder) vscrollKey(rec Record) cutscene.Directive {
	switch rec.Key {
	case "text":
		return cutscene.Text{Text: b.lookup(rec.Value)}
	case "image":
		return cutscene.Image{Path: rec.Value, Scale: cutscene.ScaleNone}
	case "separator":
		h, err := ParseInt(rec.Value)
		if err != nil {
			b.parser.Errorf("separator: %w", err)
			return nil
		}
		if h < 0 {
			b.parser.Errorf("%w: negative separator height %d, using 0", ErrInvalidValue, h)
			h = 0
		}
		return cutscene.Separator{Height: h}
	default:
		b.parser.Errorf("%w: '%s'", ErrUnknownKey, rec.Key)
		return nil
	}
}

func (b *scriptBuilder) lookup(key string) string {
	if b.msgs == nil {
		return key
	}
	return b.msgs.Get(key)
}
