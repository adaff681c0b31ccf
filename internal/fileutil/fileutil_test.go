package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]string{"ts", ".tsx", " js ", ""})
	assert.Equal(t, []string{".ts", ".tsx", ".js"}, got)
}

func TestHasExtension(t *testing.T) {
	exts := []string{".ts", ".tsx"}
	assert.True(t, HasExtension("src/a.ts", exts))
	assert.True(t, HasExtension("src/a.tsx", exts))
	assert.False(t, HasExtension("src/a.go", exts))
}

func TestFindWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	touch := func(parts ...string) {
		path := filepath.Join(append([]string{dir}, parts...)...)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0o600))
	}
	touch("a.ts")
	touch("sub", "b.tsx")
	touch("sub", "ignored.go")
	touch("node_modules", "dep.ts")
	touch(".hidden", "c.ts")

	files, err := Find([]string{dir}, []string{".ts", ".tsx"})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, relErr := filepath.Rel(dir, f)
		require.NoError(t, relErr)
		names = append(names, rel)
	}
	assert.ElementsMatch(t, []string{"a.ts", filepath.Join("sub", "b.tsx")}, names)
}

func TestFindPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.ts")
	require.NoError(t, os.WriteFile(path, []byte("export {};\n"), 0o600))

	files, err := Find([]string{path}, []string{".ts"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindRejectsUnsupportedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(path, []byte("package a\n"), 0o600))

	_, err := Find([]string{path}, []string{".ts"})
	assert.ErrorContains(t, err, "does not have a supported extension")
}

func TestFindMissingPath(t *testing.T) {
	_, err := Find([]string{filepath.Join(t.TempDir(), "nope")}, []string{".ts"})
	assert.ErrorContains(t, err, "cannot access path")
}
