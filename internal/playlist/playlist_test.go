package playlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAndRead(t *testing.T) {
	dir := t.TempDir()
	tracks := []string{"/music/jazz_piano.mp3", "/music/rock_anthem.mp3"}

	out, err := Write(dir, "Night Vibes", tracks)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Night Vibes.m3u"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, Header, lines[0])

	got, err := Read(out)
	require.NoError(t, err)
	assert.Equal(t, tracks, got)
}

func TestWrite_EmptyPlaylist(t *testing.T) {
	dir := t.TempDir()

	out, err := Write(dir, "Empty", nil)
	require.NoError(t, err)

	got, err := Read(out)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWrite_SanitizesName(t *testing.T) {
	dir := t.TempDir()

	out, err := Write(dir, "a/b\\c", []string{"/t.mp3"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "a_b_c.m3u"), out)

	out, err = Write(dir, "   ", []string{"/t.mp3"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "playlist.m3u"), out)
}

func TestWrite_MissingDirectory(t *testing.T) {
	_, err := Write(filepath.Join(t.TempDir(), "nope"), "P", []string{"/t.mp3"})

	assert.Error(t, err)
}

func TestRead_SkipsCommentsAndBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.m3u")
	content := Header + "\n\n# a comment\n/music/a.mp3\n\n/music/b.mp3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/music/a.mp3", "/music/b.mp3"}, got)
}
