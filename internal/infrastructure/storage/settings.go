// Package storage persists player settings and save slot metadata through
// gdata, serialized as YAML.
package storage

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AudioSettings holds the volume preferences used by cutscene playback
type AudioSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 0.0 ~ 1.0
	SoundVolume  float64 `yaml:"soundVolume"`  // 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"`
	SoundEnabled bool    `yaml:"soundEnabled"`
}

// DefaultAudioSettings returns the settings used when nothing was saved
func DefaultAudioSettings() AudioSettings {
	return AudioSettings{
		MusicVolume:  0.7,
		SoundVolume:  0.8,
		MusicEnabled: true,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "audio"
)

// SettingsStore loads and saves AudioSettings. A nil gdata manager keeps the
// settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings AudioSettings
}

// NewSettingsStore creates a store and loads any saved settings.
// Load failures are logged and the defaults are used.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{
		manager:  manager,
		settings: DefaultAudioSettings(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Failed to load settings: %v (using defaults)", err)
	}
	return s
}

// Load reads the saved settings, keeping defaults when none exist
func (s *SettingsStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultAudioSettings()
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultAudioSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultAudioSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		s.settings = DefaultAudioSettings()
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	s.settings = loaded
	return nil
}

// Save writes the current settings. It is a no-op without a gdata manager.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings returns a copy of the current settings
func (s *SettingsStore) Settings() AudioSettings {
	return s.settings
}

// MusicVolume returns the effective music volume, 0 when music is disabled
func (s *SettingsStore) MusicVolume() float64 {
	if !s.settings.MusicEnabled {
		return 0
	}
	return s.settings.MusicVolume
}

// SoundVolume returns the effective sound volume, 0 when sound is disabled
func (s *SettingsStore) SoundVolume() float64 {
	if !s.settings.SoundEnabled {
		return 0
	}
	return s.settings.SoundVolume
}

// SetMusicVolume changes the music volume, clamped to 0.0 ~ 1.0
func (s *SettingsStore) SetMusicVolume(v float64) {
	s.settings.MusicVolume = clampVolume(v)
}

// SetSoundVolume changes the sound volume, clamped to 0.0 ~ 1.0
func (s *SettingsStore) SetSoundVolume(v float64) {
	s.settings.SoundVolume = clampVolume(v)
}

// SetMusicEnabled toggles music
func (s *SettingsStore) SetMusicEnabled(enabled bool) {
	s.settings.MusicEnabled = enabled
}

// SetSoundEnabled toggles sound effects
func (s *SettingsStore) SetSoundEnabled(enabled bool) {
	s.settings.SoundEnabled = enabled
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
