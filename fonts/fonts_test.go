package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(20, 36))

	assert.True(t, Loaded(Body))
	assert.True(t, Loaded(Title))
	assert.Greater(t, Title.Get().Metrics().Height, Body.Get().Metrics().Height)
}

func TestLoadRejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("nope"), 12)
	assert.Error(t, err)
	assert.False(t, Loaded("broken"))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
