package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsave/internal/testutil"
)

// isolateHome points the user config lookup at an empty directory.
func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func resolved(t *testing.T, path string) string {
	t.Helper()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	return abs
}

func TestLoader_DefaultsWithoutAnyConfig(t *testing.T) {
	isolateHome(t)
	start := t.TempDir()

	project, err := NewLoader(nil, "").Load(start)
	require.NoError(t, err)

	assert.Equal(t, resolved(t, start), project.Root)
	assert.Empty(t, project.ConfigPath)
	assert.Equal(t, DefaultConfig(), project.Config)
	assert.Equal(t, filepath.Join(resolved(t, start), "Scenes"), project.ScenesFolder())
}

func TestLoader_ProjectConfigInParent(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	testutil.CreateFile(t, filepath.Join(root, ProjectConfigFile), "scenes_dir: scenes\ndescriptor: hero\n")
	start := filepath.Join(root, "assets", "chars")
	require.NoError(t, os.MkdirAll(start, 0o755))

	project, err := NewLoader(nil, "").Load(start)
	require.NoError(t, err)

	assert.Equal(t, resolved(t, root), project.Root)
	assert.Equal(t, filepath.Join(resolved(t, root), ProjectConfigFile), project.ConfigPath)
	assert.Equal(t, "hero", project.Config.Descriptor)
	assert.Equal(t, "model", project.Config.Task)
	assert.Equal(t, filepath.Join(resolved(t, root), "scenes"), project.ScenesFolder())
}

func TestLoader_WorkspaceMarkerSetsRoot(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	testutil.CreateFile(t, filepath.Join(root, WorkspaceMarker), "workspace -fr \"scene\" \"Scenes\";")
	start := filepath.Join(root, "sourceimages")
	require.NoError(t, os.MkdirAll(start, 0o755))

	project, err := NewLoader(nil, "").Load(start)
	require.NoError(t, err)

	assert.Equal(t, resolved(t, root), project.Root)
	assert.Empty(t, project.ConfigPath)
}

func TestLoader_UserConfigBelowProjectConfig(t *testing.T) {
	home := isolateHome(t)
	testutil.CreateFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "task: rig\nextension: .mb\n")

	root := t.TempDir()
	testutil.CreateFile(t, filepath.Join(root, ProjectConfigFile), "extension: .ma\n")

	project, err := NewLoader(nil, "").Load(root)
	require.NoError(t, err)

	assert.Equal(t, "rig", project.Config.Task, "user layer applies")
	assert.Equal(t, ".ma", project.Config.Extension, "project layer wins")
}

func TestLoader_BrokenUserConfigIsSkipped(t *testing.T) {
	home := isolateHome(t)
	testutil.CreateFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "task: [oops\n")

	project, err := NewLoader(nil, "").Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "model", project.Config.Task)
}

func TestLoader_ExplicitPath(t *testing.T) {
	isolateHome(t)
	configDir := t.TempDir()
	explicit := filepath.Join(configDir, "show.yaml")
	testutil.CreateFile(t, explicit, "scenes_dir: /shows/abc/scenes\n")

	project, err := NewLoader(nil, explicit).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, resolved(t, configDir), project.Root)
	assert.Equal(t, filepath.Clean("/shows/abc/scenes"), project.ScenesFolder())
}

func TestLoader_InvalidProjectConfig(t *testing.T) {
	isolateHome(t)
	root := t.TempDir()
	testutil.CreateFile(t, filepath.Join(root, ProjectConfigFile), "descriptor: hero_char\n")

	_, err := NewLoader(nil, "").Load(root)
	assert.Error(t, err)

	_, err = NewLoader(nil, filepath.Join(root, "missing.yaml")).Load(root)
	assert.Error(t, err)
}
