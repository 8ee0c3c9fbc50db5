package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/cutscene/internal/application/system"
)

// Replayer plays a recording back one tick per GetInput call
type Replayer struct {
	data   ReplayData
	tick   int
	next   int
	mouseX int
	mouseY int
}

// NewReplayer creates a replayer positioned at the first tick
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay reads and validates a recording
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay %s: %w", filename, err)
	}
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", filename, err)
	}

	return &data, nil
}

// Next returns the input of the current tick and advances. Ticks without a
// record are idle at the last cursor position. ok is false past the end.
func (r *Replayer) Next() (in system.InputState, ok bool) {
	if r.Done() {
		return r.idle(), false
	}

	in = r.idle()
	if r.next < len(r.data.Frames) && r.data.Frames[r.next].F == r.tick {
		in = r.data.Frames[r.next].Decode()
		r.mouseX, r.mouseY = in.MouseX, in.MouseY
		r.next++
	}
	r.tick++
	return in, true
}

// GetInput implements the per-tick input source. Once the recording is
// exhausted the input stays idle.
func (r *Replayer) GetInput() system.InputState {
	in, _ := r.Next()
	return in
}

func (r *Replayer) idle() system.InputState {
	return system.InputState{MouseX: r.mouseX, MouseY: r.mouseY}
}

// Done reports whether every recorded tick has been played
func (r *Replayer) Done() bool {
	return r.tick >= r.data.Ticks
}

// CurrentTick returns the number of ticks played so far
func (r *Replayer) CurrentTick() int {
	return r.tick
}

// TotalTicks returns the length of the recording in ticks
func (r *Replayer) TotalTicks() int {
	return r.data.Ticks
}

// Cutscene returns the name of the recorded cutscene
func (r *Replayer) Cutscene() string {
	return r.data.Cutscene
}
