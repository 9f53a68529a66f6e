package manpath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, root, section, module, content string) {
	t.Helper()
	dir := filepath.Join(root, "man"+section)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, module+"."+section), []byte(content), 0o644))
}

func TestFinder_LoadExplicitRoot(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "3", "demo", ".TH demo 3\n")

	f := &Finder{Root: root}
	page, err := f.Load("demo")
	require.NoError(t, err)
	assert.Contains(t, page, ".TH demo 3")
}

func TestFinder_LoadCustomSection(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "1", "demo", ".TH demo 1\n")

	f := &Finder{Root: root, Section: 1}
	page, err := f.Load("demo")
	require.NoError(t, err)
	assert.Contains(t, page, ".TH demo 1")
}

func TestFinder_LoadFromEnvRoot(t *testing.T) {
	root := t.TempDir()
	writePage(t, root, "3", "demo", "page\n")
	t.Setenv(RootEnv, root)

	f := &Finder{}
	page, err := f.Load("demo")
	require.NoError(t, err)
	assert.Equal(t, "page\n", page)
}

func TestFinder_LoadFromManpath(t *testing.T) {
	empty := t.TempDir()
	root := t.TempDir()
	writePage(t, root, "3", "demo", "page\n")
	t.Setenv(RootEnv, "")
	t.Setenv("MANPATH", empty+string(os.PathListSeparator)+root)

	f := &Finder{}
	_, err := f.Load("demo")
	require.NoError(t, err)
}

func TestFinder_NotFound(t *testing.T) {
	f := &Finder{Root: t.TempDir()}
	_, err := f.Load("missing")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "missing", nf.Module)
	assert.Equal(t, DefaultSection, nf.Section)
	assert.NotEmpty(t, nf.Searched)
}

func TestFinder_ExplicitRootWins(t *testing.T) {
	explicit := t.TempDir()
	env := t.TempDir()
	writePage(t, env, "3", "demo", "from env\n")
	t.Setenv(RootEnv, env)

	f := &Finder{Root: explicit}
	_, err := f.Load("demo")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf), "explicit root must not fall back to env")
}
