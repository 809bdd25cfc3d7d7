package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	t.Parallel()

	value := New()
	require.NoError(t, value.Set("alpha", 1))
	require.NoError(t, value.Set("beta.gamma", 2))

	assert.Equal(t, "2 entries\n     alpha = 1\nbeta.gamma = 2\n", value.String())
}

func TestValue_String_Empty(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 entries\n", New().String())
}

func TestValue_Render_NoTruncation(t *testing.T) {
	t.Parallel()

	value := New()
	require.NoError(t, value.Set("a", 1))
	require.NoError(t, value.Set("b", 2))

	var rendered strings.Builder

	err := value.Render(&rendered, 5)

	require.NoError(t, err)
	assert.Equal(t, "2 entries\na = 1\nb = 2\n", rendered.String())
}

func TestValue_Render_Truncation(t *testing.T) {
	t.Parallel()

	value := New()
	require.NoError(t, value.Set("a", 1))
	require.NoError(t, value.Set("b", 2))
	require.NoError(t, value.Set("c", 3))
	require.NoError(t, value.Set("d", 4))

	var rendered strings.Builder

	err := value.Render(&rendered, 2)

	require.NoError(t, err)
	assert.Equal(t, "4 entries\na = 1\nb = 2\n... (2 more)\n", rendered.String())
}

func TestValue_Render_ListsEveryEntryWhenUnlimited(t *testing.T) {
	t.Parallel()

	value := FromMap(sampleMapping())

	var rendered strings.Builder

	err := value.Render(&rendered, 0)
	require.NoError(t, err)

	for _, path := range value.Keys() {
		assert.Contains(t, rendered.String(), path)
	}

	assert.NotContains(t, rendered.String(), "more)")
}
