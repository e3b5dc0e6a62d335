package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartsave/internal/testutil"
)

func TestFileHost_CurrentDocumentPath(t *testing.T) {
	h := NewFileHost("", nil)
	path, err := h.CurrentDocumentPath()
	require.NoError(t, err)
	assert.Empty(t, path)

	docPath := filepath.Join(t.TempDir(), "work.ma")
	h = NewFileHost(docPath, nil)
	path, err = h.CurrentDocumentPath()
	require.NoError(t, err)
	assert.Equal(t, docPath, path)
}

func TestFileHost_SaveDocumentAs_CopiesContent(t *testing.T) {
	tmpDir := t.TempDir()
	docPath := filepath.Join(tmpDir, "work.ma")
	testutil.CreateFile(t, docPath, "//Maya ASCII scene")

	h := NewFileHost(docPath, nil)
	target := filepath.Join(tmpDir, "main_model_v001.ma")
	require.NoError(t, h.SaveDocumentAs(target))

	assert.Equal(t, "//Maya ASCII scene", testutil.ReadFile(t, target))
	assert.Equal(t, "//Maya ASCII scene", testutil.ReadFile(t, docPath), "source must be left in place")

	current, err := h.CurrentDocumentPath()
	require.NoError(t, err)
	assert.Equal(t, target, current, "saved file becomes the open document")

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFileHost_SaveDocumentAs_Untitled(t *testing.T) {
	target := filepath.Join(t.TempDir(), "main_model_v001.ma")

	h := NewFileHost("", nil)
	require.NoError(t, h.SaveDocumentAs(target))

	assert.Empty(t, testutil.ReadFile(t, target))
}

func TestFileHost_SaveDocumentAs_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "Scenes", "props", "main_model_v001.ma")

	h := NewFileHost("", nil)
	err := h.SaveDocumentAs(target)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMissingDirectory)
	var missing *MissingDirectoryError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, filepath.Dir(target), missing.Dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileHost_SaveDocumentAs_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()

	h := NewFileHost(filepath.Join(tmpDir, "gone.ma"), nil)
	err := h.SaveDocumentAs(filepath.Join(tmpDir, "main_model_v001.ma"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingDirectory)

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "failed save must not leave temp files behind")
}

func TestFileHost_SaveDocumentAs_ParentIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "Scenes")
	testutil.CreateFile(t, blocker, "not a directory")

	h := NewFileHost("", nil)
	err := h.SaveDocumentAs(filepath.Join(blocker, "main_model_v001.ma"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingDirectory)
}

func TestMissingDirectoryError_Message(t *testing.T) {
	err := &MissingDirectoryError{Dir: "/proj/Scenes"}
	assert.Equal(t, "missing directory /proj/Scenes", err.Error())

	err = &MissingDirectoryError{Dir: "/proj/Scenes", Err: os.ErrNotExist}
	assert.Contains(t, err.Error(), "file does not exist")
}
