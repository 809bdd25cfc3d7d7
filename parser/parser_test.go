package parser_test

import (
	"testing"

	"github.com/0xalexb/hjarta-config/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_KnownFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
	}{
		{name: "json", format: "json"},
		{name: "toml", format: "toml"},
		{name: "yaml", format: "yaml"},
		{name: "yml alias", format: "yml"},
		{name: "case insensitive", format: "YAML"},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			p, err := parser.For(testInfo.format)

			require.NoError(t, err)
			assert.NotNil(t, p)
		})
	}
}

func TestFor_UnknownFormat(t *testing.T) {
	t.Parallel()

	p, err := parser.For("ini")

	assert.Nil(t, p)
	require.ErrorIs(t, err, parser.ErrUnknownFormat)
	assert.Contains(t, err.Error(), "ini")
}

func TestFormats(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"json", "toml", "yaml"}, parser.Formats())
}

func TestFor_ParsersAgreeOnEquivalentDocuments(t *testing.T) {
	t.Parallel()

	documents := map[string][]byte{
		"json": []byte(`{"server": {"host": "localhost", "tags": ["a", "b"]}}`),
		"toml": []byte("[server]\nhost = \"localhost\"\ntags = [\"a\", \"b\"]\n"),
		"yaml": []byte("server:\n  host: localhost\n  tags: [a, b]\n"),
	}

	for format, document := range documents {
		p, err := parser.For(format)
		require.NoError(t, err)

		mapping, err := p.Parse(document)
		require.NoError(t, err, "format %s", format)

		server, isGroup := mapping["server"].(map[string]any)
		require.True(t, isGroup, "format %s", format)
		assert.Equal(t, "localhost", server["host"], "format %s", format)
		assert.Equal(t, []any{"a", "b"}, server["tags"], "format %s", format)
	}
}
