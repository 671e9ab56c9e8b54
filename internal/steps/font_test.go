package steps

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFontArchive zips the given name->content entries, padding one entry so
// the archive clears the truncation floor.
func buildFontArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	pad, err := zw.Create("PAD.txt")
	require.NoError(t, err)
	_, err = pad.Write(bytes.Repeat([]byte{'x'}, 4096))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func writeTempArchive(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fonts.zip")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestValidateFontArchive(t *testing.T) {
	t.Run("accepts a real zip", func(t *testing.T) {
		data := buildFontArchive(t, map[string]string{"A.ttf": "font"})
		require.NoError(t, validateFontArchive(writeTempArchive(t, data)))
	})

	t.Run("rejects a truncated download", func(t *testing.T) {
		err := validateFontArchive(writeTempArchive(t, []byte("PK\x03\x04short")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1024")
	})

	t.Run("rejects a non-zip payload", func(t *testing.T) {
		body := append([]byte("<html>Not Found</html>"), bytes.Repeat([]byte{' '}, 2048)...)
		err := validateFontArchive(writeTempArchive(t, body))
		require.Error(t, err)
	})
}

func TestExtractFontsFlattensAndFilters(t *testing.T) {
	data := buildFontArchive(t, map[string]string{
		"MesloLGS NF Regular.ttf":       "regular",
		"nested/MesloLGS NF Bold.ttf":   "bold",
		"extras/MesloLGS NF Italic.otf": "italic",
		"README.md":                     "docs",
	})
	dest := filepath.Join(t.TempDir(), "fonts")

	installed, err := extractFonts(writeTempArchive(t, data), dest)
	require.NoError(t, err)
	require.Len(t, installed, 3)

	assert.FileExists(t, filepath.Join(dest, "MesloLGS NF Regular.ttf"))
	assert.FileExists(t, filepath.Join(dest, "MesloLGS NF Bold.ttf"))
	assert.FileExists(t, filepath.Join(dest, "MesloLGS NF Italic.otf"))
	assert.NoFileExists(t, filepath.Join(dest, "README.md"))
	assert.NoFileExists(t, filepath.Join(dest, "PAD.txt"))
}

func TestFontStepDownloadsValidatesAndInstalls(t *testing.T) {
	env := newTestEnv(t)
	archive := buildFontArchive(t, map[string]string{"MesloLGS NF Regular.ttf": "regular"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()
	env.ctx.FontArchiveURL = server.URL
	s := newFontStep()

	present, err := s.Precondition(context.Background(), env.ctx)
	require.NoError(t, err)
	require.False(t, present)

	require.NoError(t, s.Action(context.Background(), env.ctx))
	assert.FileExists(t, filepath.Join(env.ctx.Paths.FontDir, "MesloLGS NF Regular.ttf"))
	assert.True(t, env.sys.Ran("fc-cache -f "+env.ctx.Paths.FontDir))
	require.NoError(t, s.Verify(context.Background(), env.ctx))

	present, err = s.Precondition(context.Background(), env.ctx)
	require.NoError(t, err)
	assert.True(t, present)
}

func TestFontStepRejectsBadDownloadWithoutInstalling(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(bytes.Repeat([]byte("not a zip "), 300))
	}))
	defer server.Close()
	env.ctx.FontArchiveURL = server.URL
	s := newFontStep()

	require.Error(t, s.Action(context.Background(), env.ctx))
	assert.NoDirExists(t, env.ctx.Paths.FontDir)
}

func TestFontStepHTTPErrorStatus(t *testing.T) {
	env := newTestEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()
	env.ctx.FontArchiveURL = server.URL
	s := newFontStep()

	err := s.Action(context.Background(), env.ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFontStepArchiveWithoutFontFiles(t *testing.T) {
	env := newTestEnv(t)
	archive := buildFontArchive(t, map[string]string{"LICENSE": "text"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()
	env.ctx.FontArchiveURL = server.URL
	s := newFontStep()

	err := s.Action(context.Background(), env.ctx)
	require.Error(t, err)
}

func TestFontStepRollbackRemovesInstalledFiles(t *testing.T) {
	env := newTestEnv(t)
	archive := buildFontArchive(t, map[string]string{"MesloLGS NF Regular.ttf": "regular"})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(archive)
	}))
	defer server.Close()
	env.ctx.FontArchiveURL = server.URL
	s := newFontStep()
	require.NoError(t, s.Action(context.Background(), env.ctx))

	require.NoError(t, s.Rollback(context.Background(), env.ctx))
	assert.NoFileExists(t, filepath.Join(env.ctx.Paths.FontDir, "MesloLGS NF Regular.ttf"))
}
