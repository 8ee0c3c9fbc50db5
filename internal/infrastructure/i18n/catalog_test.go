package i18n

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Get(t *testing.T) {
	c := NewCatalog(map[string]string{"greeting": "Hello"})

	assert.Equal(t, "Hello", c.Get("greeting"))
	assert.Equal(t, "missing.key", c.Get("missing.key"))
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_NilTranslatesNothing(t *testing.T) {
	var c *Catalog

	assert.Equal(t, "anything", c.Get("anything"))
	assert.Equal(t, 0, c.Len())
}

func TestLoadCatalog(t *testing.T) {
	fsys := fstest.MapFS{
		"messages.yaml": {Data: []byte("a: \"Alpha\"\nb: \"Beta: the second\"\n")},
	}

	c, err := LoadCatalog(fsys, "messages.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", c.Get("a"))
	assert.Equal(t, "Beta: the second", c.Get("b"))
}

func TestLoadCatalog_Missing(t *testing.T) {
	_, err := LoadCatalog(fstest.MapFS{}, "messages.yaml")
	assert.Error(t, err)
}

func TestLoadCatalog_ShippedMessages(t *testing.T) {
	c, err := LoadCatalog(os.DirFS("../../../cmd/cutscene/data"), "messages.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Credits", c.Get("credits.title"))
	assert.Greater(t, c.Len(), 5)
}

func TestLoadCatalog_NotAMapping(t *testing.T) {
	fsys := fstest.MapFS{
		"messages.yaml": {Data: []byte("- a\n- b\n")},
	}

	_, err := LoadCatalog(fsys, "messages.yaml")
	assert.Error(t, err)
}
