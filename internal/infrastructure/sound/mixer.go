// Package sound plays cutscene sound effects and background music.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SoundID is an opaque handle to a loaded sound. The zero value means
// "no sound".
type SoundID int

// Volumes provides the effective music and sound volumes
type Volumes interface {
	MusicVolume() float64
	SoundVolume() float64
}

type loadedSound struct {
	player   *audio.Player
	path     string
	category string
}

// Mixer loads sounds from a filesystem and plays them on an audio context.
// Sounds are owned by the mixer; callers hold SoundIDs.
type Mixer struct {
	ctx     *audio.Context
	fsys    fs.FS
	volumes Volumes

	sounds map[SoundID]*loadedSound
	nextID SoundID

	music     *audio.Player
	musicPath string
}

// NewMixer creates a mixer. volumes may be nil, in which case everything
// plays at full volume.
func NewMixer(ctx *audio.Context, fsys fs.FS, volumes Volumes) *Mixer {
	return &Mixer{
		ctx:     ctx,
		fsys:    fsys,
		volumes: volumes,
		sounds:  make(map[SoundID]*loadedSound),
	}
}

// Load decodes a sound effect. A sound that cannot be loaded is logged and
// yields the zero SoundID.
func (m *Mixer) Load(path, category string) SoundID {
	stream, err := m.decode(path)
	if err != nil {
		log.Printf("[Mixer] Failed to load sound %s: %v", path, err)
		return 0
	}

	player, err := m.ctx.NewPlayer(stream)
	if err != nil {
		log.Printf("[Mixer] Failed to create player for %s: %v", path, err)
		return 0
	}

	m.nextID++
	m.sounds[m.nextID] = &loadedSound{player: player, path: path, category: category}
	return m.nextID
}

// Unload stops and releases a sound
func (m *Mixer) Unload(id SoundID) {
	s, ok := m.sounds[id]
	if !ok {
		return
	}
	if err := s.player.Close(); err != nil {
		log.Printf("[Mixer] Failed to close sound %s: %v", s.path, err)
	}
	delete(m.sounds, id)
}

// Play plays a loaded sound once from the start
func (m *Mixer) Play(id SoundID) {
	s, ok := m.sounds[id]
	if !ok {
		return
	}
	s.player.SetVolume(m.soundVolume())
	if err := s.player.Rewind(); err != nil {
		log.Printf("[Mixer] Failed to rewind sound %s: %v", s.path, err)
	}
	s.player.Play()
}

// MusicEnabled reports whether music would be audible
func (m *Mixer) MusicEnabled() bool {
	return m.musicVolume() > 0
}

// PlayMusic starts a looping music track, replacing the current one
func (m *Mixer) PlayMusic(path string) bool {
	m.StopMusic()

	stream, err := m.decode(path)
	if err != nil {
		log.Printf("[Mixer] Failed to load music %s: %v", path, err)
		return false
	}

	player, err := m.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		log.Printf("[Mixer] Failed to create music player for %s: %v", path, err)
		return false
	}
	player.SetVolume(m.musicVolume())
	player.Play()

	m.music = player
	m.musicPath = path
	log.Printf("[Mixer] Playing music: %s", path)
	return true
}

// StopMusic stops and releases the current music track
func (m *Mixer) StopMusic() {
	if m.music == nil {
		return
	}
	if err := m.music.Close(); err != nil {
		log.Printf("[Mixer] Failed to close music %s: %v", m.musicPath, err)
	}
	m.music = nil
	m.musicPath = ""
}

// Close releases every sound and the music track
func (m *Mixer) Close() {
	for id := range m.sounds {
		m.Unload(id)
	}
	m.StopMusic()
}

func (m *Mixer) musicVolume() float64 {
	if m.volumes == nil {
		return 1
	}
	return m.volumes.MusicVolume()
}

func (m *Mixer) soundVolume() float64 {
	if m.volumes == nil {
		return 1
	}
	return m.volumes.SoundVolume()
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

// decode reads the whole file so that the stream can seek without keeping
// the file open
func (m *Mixer) decode(path string) (stream, error) {
	data, err := fs.ReadFile(m.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	r := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		return vorbis.DecodeWithSampleRate(m.ctx.SampleRate(), r)
	case ".wav":
		return wav.DecodeWithSampleRate(m.ctx.SampleRate(), r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(m.ctx.SampleRate(), r)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .ogg, .wav, .mp3)", ext)
	}
}
