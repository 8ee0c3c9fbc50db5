package cutscene

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/state"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/application/ui"
	model "github.com/younwookim/cutscene/internal/domain/cutscene"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
)

// heldSkipTicks is how many ticks a held skip key advances the scroll
const heldSkipTicks = 8

// scrollElement is one laid-out entry of a scrolling scene. Exactly one of
// label and image is set, or neither for a separator.
type scrollElement struct {
	label *ui.Label
	image *assets.Image

	// top is the unscrolled y of the element's top edge
	top int
	// height is the label, image or gap height
	height int
	// y is the current on-screen top edge
	y int
}

func (e *scrollElement) separator() bool {
	return e.label == nil && e.image == nil
}

// anchor returns the unscrolled anchor point: the midpoint for separators,
// the top edge otherwise.
func (e *scrollElement) anchor() int {
	if e.separator() {
		return e.top + e.height/2
	}
	return e.top
}

// gone reports whether the element has scrolled fully above the screen
func (e *scrollElement) gone() bool {
	if e.separator() {
		return e.y+e.height/2 < 0
	}
	return e.y+e.height < 0
}

func (e *scrollElement) visible(viewH int) bool {
	return !e.separator() && e.y <= viewH && e.y+e.height >= 0
}

// scrollScene is a credits style crawl of text and images
type scrollScene struct {
	base

	elements []*scrollElement
	nextY    int
	ticks    int
	offset   int
}

func newScrollScene(b base) *scrollScene {
	return &scrollScene{base: b}
}

func (s *scrollScene) Mode() model.Mode {
	return model.ModeVScroll
}

func (s *scrollScene) Tick(in system.InputState) state.Playback {
	s.selectAdvance(true)

	it := s.readInput(in, true)
	if it.cancel {
		return state.Finished
	}

	s.materialize()

	s.offset = int(float64(s.ticks) * (s.settings.VScrollSpeed * float64(s.env.FPS)) / float64(s.env.ViewH))
	switch {
	case it.click:
		return state.Finished
	case it.skip:
		s.ticks += heldSkipTicks
	default:
		s.ticks++
	}

	s.Relayout()

	if len(s.elements) == 0 || s.elements[len(s.elements)-1].gone() {
		return state.Finished
	}
	return state.Running
}

// materialize drains the directive queue into laid-out elements stacked
// downward from the vertical center of the view.
func (s *scrollScene) materialize() {
	centerX, centerY := s.env.ViewW/2, s.env.ViewH/2

	for {
		d, ok := s.queue.Pop()
		if !ok {
			return
		}

		switch d := d.(type) {
		case model.Text:
			label := ui.NewLabel(s.env.Font, d.Text)
			label.SetPos(centerX, centerY+s.nextY)
			e := &scrollElement{label: label, top: centerY + s.nextY, height: label.Bounds().H}
			s.add(e)
		case model.Image:
			img, err := s.env.Images.LoadImage(d.Path)
			if err != nil {
				log.Printf("[Cutscene] Failed to load image: %v", err)
				continue
			}
			_, h := img.Size()
			s.add(&scrollElement{image: img, top: centerY + s.nextY, height: h})
		case model.Separator:
			s.add(&scrollElement{top: centerY + s.nextY, height: d.Height})
		default:
			log.Printf("[Cutscene] Ignoring %s directive in a scrolling scene", d.Kind())
		}
	}
}

func (s *scrollScene) add(e *scrollElement) {
	e.y = e.top
	s.elements = append(s.elements, e)
	s.nextY += e.height
}

// Relayout moves every element up by the scroll offset and recenters it
func (s *scrollScene) Relayout() {
	s.pinButtons()
	for _, e := range s.elements {
		e.y = e.top - s.offset
		if e.label != nil {
			e.label.SetPos(s.env.ViewW/2, e.y)
		}
	}
}

func (s *scrollScene) Draw(screen *ebiten.Image) {
	for _, e := range s.elements {
		if !e.visible(s.env.ViewH) {
			continue
		}
		switch {
		case e.label != nil:
			e.label.Draw(screen)
		case e.image != nil:
			w, _ := e.image.Size()
			drawImage(screen, e.image.Texture(), s.env.ViewW/2-w/2, e.y)
		}
	}

	s.advance.Draw(screen)
}

func (s *scrollScene) Close() {
	for _, e := range s.elements {
		e.image.Dispose()
	}
	s.elements = nil
}
