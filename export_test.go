package main

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.png")
	field := Field{Width: 1000, Height: 600}
	require.NoError(t, ExportPNG(path, field, DefaultRules(), samplePlay()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1000, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestExportPNGEmptyPlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.png")
	err := ExportPNG(path, Field{Width: 1000, Height: 600}, DefaultRules(), Entities{})
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.NoFileExists(t, path)
}

func TestExportJSONUsesEmptyArrays(t *testing.T) {
	data, err := ExportJSON(Entities{})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.JSONEq(t, `[]`, string(decoded["players"]))
	assert.JSONEq(t, `[]`, string(decoded["routes"]))
}

func TestExportJSONRoundTripsPlay(t *testing.T) {
	data, err := ExportJSON(samplePlay())
	require.NoError(t, err)

	var back Entities
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, samplePlay(), back)
}

func TestExportVisualTXT(t *testing.T) {
	s := newTestSession(false, false)
	placeOffense(t, s, 500, 450)
	path := filepath.Join(t.TempDir(), "play.txt")
	require.NoError(t, exportVisualTXT(path, s.View(), Field{Width: 1000, Height: 600}, 40, 12))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 12)
	assert.Contains(t, string(data), "O")
}
