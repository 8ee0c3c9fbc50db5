// Package replay records the per-tick input of a cutscene session and feeds
// it back for deterministic playback.
package replay

import (
	"errors"
	"fmt"

	"github.com/younwookim/cutscene/internal/application/system"
)

// FormatVersion is written to every recording
const FormatVersion = "2"

var (
	ErrVersion     = errors.New("unsupported replay version")
	ErrFrameOrder  = errors.New("frames out of order")
	ErrFrameBounds = errors.New("frame outside recording")
)

// FrameInput records input state for a single tick.
// Action states are bitmasks indexed by system.Action.
type FrameInput struct {
	F  int `json:"f"`           // Tick number
	H  int `json:"h,omitempty"` // Held
	P  int `json:"p,omitempty"` // Pressed this tick
	R  int `json:"r,omitempty"` // Released this tick
	MX int `json:"mx"`          // MouseX
	MY int `json:"my"`          // MouseY
}

// ReplayData is a sparse recording: only ticks with action activity or
// cursor movement are stored. Every other tick up to Ticks is idle input
// at the last recorded cursor position.
type ReplayData struct {
	Version   string       `json:"version"`
	Cutscene  string       `json:"cutscene"`
	StartTime string       `json:"startTime"`
	Ticks     int          `json:"ticks"`
	Frames    []FrameInput `json:"frames"`
}

// Validate checks the version and that frames are strictly increasing and
// inside the recording.
func (d *ReplayData) Validate() error {
	if d.Version != FormatVersion {
		return fmt.Errorf("%w: %q", ErrVersion, d.Version)
	}
	prev := -1
	for _, fi := range d.Frames {
		if fi.F <= prev {
			return fmt.Errorf("%w: tick %d after %d", ErrFrameOrder, fi.F, prev)
		}
		if fi.F >= d.Ticks {
			return fmt.Errorf("%w: tick %d of %d", ErrFrameBounds, fi.F, d.Ticks)
		}
		prev = fi.F
	}
	return nil
}

// Encode packs an input snapshot into a frame record
func Encode(frame int, in system.InputState) FrameInput {
	fi := FrameInput{F: frame, MX: in.MouseX, MY: in.MouseY}
	for a := range in.Held {
		bit := 1 << a
		if in.Held[a] {
			fi.H |= bit
		}
		if in.Pressed[a] {
			fi.P |= bit
		}
		if in.Released[a] {
			fi.R |= bit
		}
	}
	return fi
}

// Decode unpacks a frame record into an input snapshot
func (fi FrameInput) Decode() system.InputState {
	in := system.InputState{MouseX: fi.MX, MouseY: fi.MY}
	for a := range in.Held {
		bit := 1 << a
		in.Held[a] = fi.H&bit != 0
		in.Pressed[a] = fi.P&bit != 0
		in.Released[a] = fi.R&bit != 0
	}
	return in
}

// idle reports whether the record has no action activity
func (fi FrameInput) idle() bool {
	return fi.H == 0 && fi.P == 0 && fi.R == 0
}
