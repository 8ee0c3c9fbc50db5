package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/cutscene/internal/application/scene"
	"github.com/younwookim/cutscene/internal/application/scene/cutscene"
	"github.com/younwookim/cutscene/internal/application/system"
	"github.com/younwookim/cutscene/internal/application/ui"
	"github.com/younwookim/cutscene/internal/infrastructure/assets"
	"github.com/younwookim/cutscene/internal/infrastructure/storage"
)

var colorResumeBG = color.RGBA{26, 26, 46, 255}

// SlotStore reads and writes saved slots
type SlotStore interface {
	Load(slot int) (*storage.SlotData, error)
	Save(sd *storage.SlotData) error
}

// slotResumer hands a finished cutscene over to the saved game in a slot
type slotResumer struct {
	slots SlotStore
	input cutscene.InputSource
	font  *assets.Font
	now   func() time.Time
}

func (r *slotResumer) Resume(slot int) (scene.Scene, error) {
	data, err := r.slots.Load(slot)
	if err != nil {
		return nil, fmt.Errorf("failed to resume slot %d: %w", slot, err)
	}
	log.Printf("[Resume] Loaded slot %d (level %s)", data.Slot, data.Level)
	return newResumed(data, r), nil
}

// resumed is the scene entered after a cutscene resumes a save slot. It
// shows the slot summary until accepted or cancelled. Accepting continues
// the save and writes it back with a new timestamp.
type resumed struct {
	data  *storage.SlotData
	slots SlotStore
	input cutscene.InputSource
	now   func() time.Time
	label *ui.Label
}

func newResumed(data *storage.SlotData, r *slotResumer) *resumed {
	text := fmt.Sprintf("Slot %d: %s", data.Slot, data.Level)
	return &resumed{
		data:  data,
		slots: r.slots,
		input: r.input,
		now:   r.now,
		label: ui.NewLabel(r.font, text),
	}
}

func (r *resumed) Update(dt float64) (scene.Scene, error) {
	in := r.input.GetInput()
	switch {
	case in.JustPressed(system.ActionAccept):
		r.data.SavedAt = r.now()
		if err := r.slots.Save(r.data); err != nil {
			log.Printf("[Resume] Failed to save slot %d: %v", r.data.Slot, err)
		}
		return nil, ebiten.Termination
	case in.JustPressed(system.ActionCancel):
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (r *resumed) Draw(screen *ebiten.Image) {
	screen.Fill(colorResumeBG)
	r.label.Draw(screen)
}

func (r *resumed) OnEnter() {
	log.Printf("[Resume] Entered level %s", r.data.Level)
}

func (r *resumed) OnExit() {}

func (r *resumed) Resize(w, h int) {
	r.label.SetPos(w/2, h/2-r.label.Bounds().H/2)
}
