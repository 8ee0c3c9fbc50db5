package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/cutscene/internal/application/system"
)

// InputSource provides one input snapshot per tick
type InputSource interface {
	GetInput() system.InputState
}

// Recorder captures the input of a session, dropping idle ticks where the
// cursor did not move.
type Recorder struct {
	data    ReplayData
	last    FrameInput
	hasLast bool
}

// NewRecorder creates a new recorder for the named cutscene
func NewRecorder(cutscene string) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Cutscene:  cutscene,
			StartTime: time.Now().Format(time.RFC3339),
		},
	}
}

// RecordFrame records one tick of input
func (r *Recorder) RecordFrame(in system.InputState) {
	fi := Encode(r.data.Ticks, in)
	r.data.Ticks++

	moved := !r.hasLast || fi.MX != r.last.MX || fi.MY != r.last.MY
	if fi.idle() && !moved {
		return
	}
	r.data.Frames = append(r.data.Frames, fi)
	r.last, r.hasLast = fi, true
}

// Save writes the recording to a file as JSON
func (r *Recorder) Save(filename string) error {
	if r.data.Ticks == 0 {
		return fmt.Errorf("no ticks to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create replay file %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Ticks returns the number of ticks seen while recording
func (r *Recorder) Ticks() int {
	return r.data.Ticks
}

// FrameCount returns the number of stored frame records
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// RecordingSource records every snapshot it passes through
type RecordingSource struct {
	source   InputSource
	recorder *Recorder
}

// NewRecordingSource wraps source so its input is recorded by recorder
func NewRecordingSource(source InputSource, recorder *Recorder) *RecordingSource {
	return &RecordingSource{source: source, recorder: recorder}
}

// GetInput reads the wrapped source and records the result
func (s *RecordingSource) GetInput() system.InputState {
	in := s.source.GetInput()
	s.recorder.RecordFrame(in)
	return in
}

// GenerateFilename names a recording after the cutscene and the current time
func GenerateFilename(cutscene string) string {
	return fmt.Sprintf("replay_%s_%s.json", cutscene, time.Now().Format("20060102_150405"))
}
