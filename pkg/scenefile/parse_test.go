package scenefile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsave/pkg/sanitizer"
)

func TestParse(t *testing.T) {
	sf, err := Parse("/proj/Scenes/main_model_v001.ma")
	require.NoError(t, err)

	assert.Equal(t, filepath.FromSlash("/proj/Scenes"), sf.FolderPath())
	assert.Equal(t, "main", sf.Descriptor())
	assert.Equal(t, "model", sf.Task())
	assert.Equal(t, 1, sf.Version())
	assert.Equal(t, ".ma", sf.Extension())
}

func TestParse_RoundTrip(t *testing.T) {
	folder := t.TempDir()

	tests := []struct {
		descriptor string
		task       string
		version    int
		extension  string
	}{
		{"main", "model", 1, ".ma"},
		{"hero", "rig", 7, ".mb"},
		{"shot010", "anim", 123, ".ma"},
		{"env-forest", "look-dev", 1234, ".usd"},
		{"prop.v2", "layout", 99, ".ma"},
		{"prop", "lay.out", 1, ".mb"},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor+"_"+tt.task, func(t *testing.T) {
			original := newScene(t, folder, Options{Defaults: Defaults{
				Descriptor: tt.descriptor,
				Task:       tt.task,
				Version:    tt.version,
				Extension:  tt.extension,
			}})

			parsed, err := Parse(original.Path())
			require.NoError(t, err)

			assert.Equal(t, original.FolderPath(), parsed.FolderPath())
			assert.Equal(t, tt.descriptor, parsed.Descriptor())
			assert.Equal(t, tt.task, parsed.Task())
			assert.Equal(t, tt.version, parsed.Version())
			assert.Equal(t, tt.extension, parsed.Extension())
			assert.Equal(t, original.Path(), parsed.Path())
		})
	}
}

// A scene without an extension could not be read back when a field holds a dot.
func TestSetExtension_RejectsEmpty(t *testing.T) {
	sf := newScene(t, t.TempDir(), Options{Defaults: Defaults{Descriptor: "prop.v2", Task: "layout"}})

	err := sf.SetExtension("")
	require.ErrorIs(t, err, ErrInvalidField)
	assert.ErrorIs(t, err, sanitizer.ErrEmptyField)
	assert.Equal(t, ".ma", sf.Extension())

	parsed, err := Parse(sf.Path())
	require.NoError(t, err)
	assert.Equal(t, "prop.v2", parsed.Descriptor())
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "no separators", path: "bad-name.ext"},
		{name: "non-numeric version", path: "a_b_vX.ext"},
		{name: "too many fields", path: "hero_char_rig_v001.ma"},
		{name: "too few fields", path: "hero_v001.ma"},
		{name: "missing version marker", path: "a_b_001.ma"},
		{name: "marker only", path: "a_b_v.ma"},
		{name: "version zero", path: "a_b_v000.ma"},
		{name: "signed version", path: "a_b_v+01.ma"},
		{name: "empty descriptor", path: "_b_v001.ma"},
		{name: "empty task", path: "a__v001.ma"},
		{name: "dot extension", path: "a_b_v001."},
		{name: "no extension", path: "a_b_v001"},
		{name: "dotted field without extension", path: "a.b_c_v001"},
		{name: "empty path", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf, err := Parse(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedName)
			assert.Nil(t, sf)

			var malformed *MalformedNameError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.path, malformed.Path)
			assert.NotEmpty(t, malformed.Reason)
		})
	}
}

func TestParse_ErrorMessage(t *testing.T) {
	_, err := Parse("/proj/Scenes/bad-name.ext")
	require.Error(t, err)
	assert.Equal(t, `malformed scene name "bad-name.ext": expected 3 "_"-separated fields, got 1`, err.Error())
}

func TestParse_FailureLeavesSceneUntouched(t *testing.T) {
	sf := newScene(t, "/proj/Scenes", Options{})

	err := sf.parse("/elsewhere/a_b_vX.ma")
	require.ErrorIs(t, err, ErrMalformedName)

	assert.Equal(t, "/proj/Scenes", sf.FolderPath())
	assert.Equal(t, "main_model_v001.ma", sf.Filename())
}
