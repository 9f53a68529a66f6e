package exports

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestYAML = `modules:
  demo:
    send: 2
    send_after: 3
    now: 0
  lists:
    append: 2
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exports.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifestYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	m, err := Load(writeManifest(t))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"demo", "lists"}, m.Modules())

	set, err := m.ExportSet("demo")
	require.NoError(t, err)
	assert.Equal(t, 3, set["send_after"])
	assert.Equal(t, 0, set["now"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExportSet_ModuleNotLoaded(t *testing.T) {
	m, err := Load(writeManifest(t))
	require.NoError(t, err)

	_, err = m.ExportSet("kernel")
	var notLoaded *ModuleNotLoadedError
	require.True(t, errors.As(err, &notLoaded))
	assert.Equal(t, "kernel", notLoaded.Module)
}

func TestEmpty(t *testing.T) {
	m := Empty()
	assert.Empty(t, m.Modules())
	_, err := m.ExportSet("demo")
	assert.Error(t, err)
}
