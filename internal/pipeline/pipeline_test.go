package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/slidepress/internal/layout"
	"github.com/thywilljoshua/slidepress/internal/render"
)

func quietConfig() Config {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return Config{Log: log}
}

func TestConfigDefaults(t *testing.T) {
	var c Config
	assert.Equal(t, render.DefaultDPI, c.dpi())
	assert.Equal(t, layout.DefaultSlidesPerPage, c.perPage())
	assert.Equal(t, 1, c.startPage())
	assert.Equal(t, defaultJPEGQuality, c.quality())
	assert.NotNil(t, c.logger())
}

func TestConfigOverrides(t *testing.T) {
	c := Config{DPI: 150, SlidesPerPage: 2, StartPage: 5, JPEGQuality: 80}
	assert.Equal(t, 150, c.dpi())
	assert.Equal(t, 2, c.perPage())
	assert.Equal(t, 5, c.startPage())
	assert.Equal(t, 80, c.quality())
}

func TestEnhanceDirEmptyFolder(t *testing.T) {
	cfg := quietConfig()
	err := cfg.EnhanceDir(t.TempDir(), t.TempDir(), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PDF files found")
}

func TestImagesToPDFEmptyFolder(t *testing.T) {
	cfg := quietConfig()
	err := cfg.ImagesToPDF(t.TempDir(), t.TempDir(), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image files found")
}

func TestPackInputsMissingInput(t *testing.T) {
	cfg := quietConfig()
	err := cfg.PackInputs(filepath.Join(t.TempDir(), "missing.pdf"), t.TempDir(), "out")
	assert.Error(t, err)
}

func TestPackInputsEmptyFolder(t *testing.T) {
	cfg := quietConfig()
	err := cfg.PackInputs(t.TempDir(), t.TempDir(), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no PDF files found")
}

// A batch containing only unreadable documents reports failure instead of
// writing an empty output.
func TestEnhanceDirSkipsCorruptDocuments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.pdf"), []byte("not a pdf"), 0o644))

	cfg := quietConfig()
	err := cfg.EnhanceDir(dir, t.TempDir(), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no documents could be enhanced")
}

func TestCollectPDFsSingleFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deck.pdf")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))

	cfg := quietConfig()
	files, err := cfg.collectPDFs(p)
	require.NoError(t, err)
	assert.Equal(t, []string{p}, files)
}

func TestCollectPDFsDirectorySorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.pdf"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.pdf"), []byte("x"), 0o644))

	cfg := quietConfig()
	files, err := cfg.collectPDFs(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.pdf", filepath.Base(files[0]))
	assert.Equal(t, "b.pdf", filepath.Base(files[1]))
}
