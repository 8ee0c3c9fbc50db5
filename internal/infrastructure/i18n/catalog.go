// Package i18n provides the message table used to localize cutscene text.
package i18n

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Catalog maps message keys to display strings
type Catalog struct {
	messages map[string]string
}

// NewCatalog creates a catalog from an in-memory table
func NewCatalog(messages map[string]string) *Catalog {
	c := &Catalog{messages: make(map[string]string, len(messages))}
	for k, v := range messages {
		c.messages[k] = v
	}
	return c
}

// LoadCatalog reads a YAML mapping of key: text from fsys.
//
// Example file:
//
//	intro.arrival: "The caravan reached the pass at dusk."
//	credits.title: "Credits"
func LoadCatalog(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages %s: %w", path, err)
	}

	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages %s: %w", path, err)
	}

	return &Catalog{messages: messages}, nil
}

// Get returns the display string for key. Untranslated keys are returned
// unchanged so that literal text can be written straight into a cutscene.
// A nil catalog translates nothing.
func (c *Catalog) Get(key string) string {
	if c == nil {
		return key
	}
	if text, ok := c.messages[key]; ok {
		return text
	}
	return key
}

// Len returns the number of messages
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.messages)
}
