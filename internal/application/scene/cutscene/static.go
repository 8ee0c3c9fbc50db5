package cutscene

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/state"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/application/ui"
	model "github.com/younwookim/cutscene/internal/domain/cutscene"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/sound"
)

// staticScene is a slide show: directives are applied in batches separated
// by pauses.
type staticScene struct {
	base

	frameCounter int
	pauseFrames  int

	caption    string
	captionBox *ui.CaptionBox

	art       *assets.Image
	artScaled *assets.Image
	artScale  model.ScaleMode
	artRect   ui.Rect

	sid sound.SoundID
}

func newStaticScene(b base) *staticScene {
	return &staticScene{
		base:       b,
		captionBox: ui.NewCaptionBox(b.env.Font, b.settings.CaptionBackground),
	}
}

func (s *staticScene) Mode() model.Mode {
	return model.ModeStatic
}

func (s *staticScene) Tick(in system.InputState) state.Playback {
	s.selectAdvance(s.queue.Empty())

	it := s.readInput(in, false)
	if it.cancel {
		return state.Finished
	}

	if !it.skip && s.pauseFrames != 0 && s.frameCounter < s.pauseFrames {
		s.frameCounter++
		return state.Running
	}

	for {
		d, ok := s.queue.Peek()
		if !ok || d.Kind() == model.KindPause {
			break
		}
		s.apply(d)
		s.queue.Pop()
	}

	d, ok := s.queue.Pop()
	if !ok {
		return state.Finished
	}

	s.frameCounter = 0
	s.pauseFrames = d.(model.Pause).Ticks
	s.Relayout()
	return state.Running
}

func (s *staticScene) apply(d model.Directive) {
	switch d := d.(type) {
	case model.Caption:
		s.caption = d.Text
	case model.Image:
		s.setArt(d)
	case model.SoundFX:
		if s.sid != 0 {
			s.env.Sounds.Unload(s.sid)
		}
		s.sid = s.env.Sounds.Load(d.Path, SoundCategory)
		if s.sid != 0 {
			s.env.Sounds.Play(s.sid)
		}
	default:
		log.Printf("[Cutscene] Ignoring %s directive in a static scene", d.Kind())
	}
}

func (s *staticScene) setArt(d model.Image) {
	s.art.Dispose()
	s.artScaled.Dispose()
	s.art, s.artScaled = nil, nil
	s.artScale = d.Scale

	img, err := s.env.Images.LoadImage(d.Path)
	if err != nil {
		log.Printf("[Cutscene] Failed to load image: %v", err)
		return
	}
	s.art = img
}

// Relayout resizes the caption box and the art to the current view
func (s *staticScene) Relayout() {
	s.pinButtons()
	viewW, viewH := s.env.ViewW, s.env.ViewH

	if s.caption != "" {
		m := s.settings.CaptionMargins
		s.captionBox.Layout(s.caption, m.X, m.Y, viewW, viewH)
	}

	if s.art == nil {
		return
	}
	w, h := s.art.Size()
	if s.artScale == model.ScaleNone {
		s.artRect = ui.AlignToScreen(ui.AlignCenter, w, h, viewW, viewH)
		return
	}

	dest := ui.FitToScreen(w, h, s.artScale == model.ScaleHeight, viewW, viewH)
	if scaled := s.art.Resize(dest.W, dest.H); scaled != nil {
		s.artScaled.Dispose()
		s.artScaled = scaled
		s.artRect = dest
		return
	}
	s.artScaled.Dispose()
	s.artScaled = nil
	s.artRect = ui.AlignToScreen(ui.AlignCenter, w, h, viewW, viewH)
}

func (s *staticScene) Draw(screen *ebiten.Image) {
	switch {
	case s.artScaled != nil:
		drawImage(screen, s.artScaled.Texture(), s.artRect.X, s.artRect.Y)
	case s.art != nil:
		drawImage(screen, s.art.Texture(), s.artRect.X, s.artRect.Y)
	}

	if s.caption != "" {
		s.captionBox.Draw(screen)
	}

	s.advance.Draw(screen)
}

func (s *staticScene) Close() {
	s.art.Dispose()
	s.artScaled.Dispose()
	s.art, s.artScaled = nil, nil
	s.captionBox.Dispose()
}
