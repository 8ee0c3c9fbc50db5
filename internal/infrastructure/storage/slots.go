package storage

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ErrSlotNotFound is returned when a save slot has never been written
var ErrSlotNotFound = errors.New("save slot not found")

const slotsObject = "slots"

// SlotData is the metadata of a saved game a cutscene can resume into
type SlotData struct {
	Slot    int       `yaml:"slot"`
	Level   string    `yaml:"level"`
	SavedAt time.Time `yaml:"savedAt"`
}

// SlotStore reads and writes save slots
type SlotStore struct {
	manager *gdata.Manager
}

// NewSlotStore creates a slot store. A nil manager has no slots.
func NewSlotStore(manager *gdata.Manager) *SlotStore {
	return &SlotStore{manager: manager}
}

func slotKey(slot int) string {
	return "slot" + strconv.Itoa(slot)
}

// Exists reports whether the slot has been saved
func (s *SlotStore) Exists(slot int) bool {
	if s.manager == nil || slot < 0 {
		return false
	}
	return s.manager.ObjectPropExists(slotsObject, slotKey(slot))
}

// Load reads a save slot
func (s *SlotStore) Load(slot int) (*SlotData, error) {
	if !s.Exists(slot) {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrSlotNotFound)
	}

	data, err := s.manager.LoadObjectProp(slotsObject, slotKey(slot))
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %d: %w", slot, err)
	}

	var sd SlotData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse slot %d: %w", slot, err)
	}
	return &sd, nil
}

// Save writes a save slot
func (s *SlotStore) Save(sd *SlotData) error {
	if s.manager == nil {
		return errors.New("no storage available")
	}

	data, err := yaml.Marshal(sd)
	if err != nil {
		return fmt.Errorf("failed to marshal slot %d: %w", sd.Slot, err)
	}
	if err := s.manager.SaveObjectProp(slotsObject, slotKey(sd.Slot), data); err != nil {
		return fmt.Errorf("failed to save slot %d: %w", sd.Slot, err)
	}
	return nil
}
