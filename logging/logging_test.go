package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestJSONOutputWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Output: &buf})
	l.WithComponent("forms").Info().Str("page", "contact").Msg("submitted")
	l.Debug().Msg("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "forms", entry["component"])
	assert.Equal(t, "contact", entry["page"])
	assert.Equal(t, "submitted", entry["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unopro.log")
	var buf bytes.Buffer
	l := New(Options{Format: "json", Output: &buf, File: path})
	l.Info().Msg("to file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, buf.String(), "to file")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error().Msg("dropped")
	assert.NoError(t, l.Close())
}
