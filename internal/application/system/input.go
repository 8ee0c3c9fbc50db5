package system

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/cutscene/internal/infrastructure/config"
)

// Action is a logical input the cutscene player reacts to
type Action int

const (
	// ActionMain1 is the primary pointer button
	ActionMain1 Action = iota
	ActionAccept
	ActionCancel
	actionCount
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMain1:
		return "Main1"
	case ActionAccept:
		return "Accept"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputState is the input snapshot of one tick. Pressed and Released are
// edge-triggered: they are true only on the tick the transition happened.
type InputState struct {
	Held     [actionCount]bool
	Pressed  [actionCount]bool
	Released [actionCount]bool
	MouseX   int
	MouseY   int
}

// IsHeld reports whether the action is down this tick
func (s InputState) IsHeld(a Action) bool {
	return s.Held[a]
}

// JustPressed reports whether the action went down this tick
func (s InputState) JustPressed(a Action) bool {
	return s.Pressed[a]
}

// JustReleased reports whether the action went up this tick
func (s InputState) JustReleased(a Action) bool {
	return s.Released[a]
}

// Consume returns a copy with the edge-triggered events cleared. Held
// state is kept.
func (s InputState) Consume() InputState {
	s.Pressed = [actionCount]bool{}
	s.Released = [actionCount]bool{}
	return s
}

// InputSystem reads ebiten input into InputState snapshots
type InputSystem struct {
	bindings [actionCount][]ebiten.Key
}

// NewInputSystem creates an input system with key bindings from config.
// Unknown key names are logged and ignored.
func NewInputSystem(cfg config.InputConfig) *InputSystem {
	s := &InputSystem{}
	s.bindings[ActionAccept] = parseKeys(cfg.Accept)
	s.bindings[ActionCancel] = parseKeys(cfg.Cancel)
	return s
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	var in InputState
	in.MouseX, in.MouseY = ebiten.CursorPosition()

	in.Held[ActionMain1] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Pressed[ActionMain1] = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.Released[ActionMain1] = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)

	for a := ActionAccept; a < actionCount; a++ {
		for _, k := range s.bindings[a] {
			in.Held[a] = in.Held[a] || ebiten.IsKeyPressed(k)
			in.Pressed[a] = in.Pressed[a] || inpututil.IsKeyJustPressed(k)
			in.Released[a] = in.Released[a] || inpututil.IsKeyJustReleased(k)
		}
	}

	return in
}

var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ParseKey resolves an ebiten key name such as "Enter" or "Escape"
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

func parseKeys(names []string) []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(names))
	for _, n := range names {
		k, ok := ParseKey(n)
		if !ok {
			log.Printf("[Input] Unknown key name %q", n)
			continue
		}
		keys = append(keys, k)
	}
	return keys
}
