package pdfout

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/slidepress/internal/layout"
)

// writePageImages writes n small solid JPEGs and returns their paths.
func writePageImages(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, n)
	for i := range paths {
		p := filepath.Join(dir, "page_"+string(rune('a'+i))+".jpg")
		img := imaging.New(600, 800, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
		require.NoError(t, imaging.Save(img, p, imaging.JPEGQuality(90)))
		paths[i] = p
	}
	return paths
}

func TestImportImagesOnePagePerImage(t *testing.T) {
	dir := t.TempDir()
	imgs := writePageImages(t, dir, 3)

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, ImportImages(imgs, out, 300))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestImportImagesA4PageSize(t *testing.T) {
	dir := t.TempDir()
	imgs := writePageImages(t, dir, 2)

	out := filepath.Join(dir, "out.pdf")
	require.NoError(t, ImportImagesA4(imgs, out))

	dims, err := api.PageDimsFile(out)
	require.NoError(t, err)
	require.Len(t, dims, 2)
	for _, d := range dims {
		assert.InDelta(t, 595, d.Width, 1, "A4 width in points")
		assert.InDelta(t, 842, d.Height, 1, "A4 height in points")
	}
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.pdf")
	require.NoError(t, ImportImages(writePageImages(t, t.TempDir(), 2), a, 300))
	b := filepath.Join(dir, "b.pdf")
	require.NoError(t, ImportImages(writePageImages(t, t.TempDir(), 3), b, 300))

	out := filepath.Join(dir, "merged.pdf")
	require.NoError(t, Merge([]string{a, b}, out))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

// Numbering must not change the page count or page sizes, only overlay.
func TestStampPageNumbers(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.pdf")
	require.NoError(t, ImportImages(writePageImages(t, t.TempDir(), 3), in, 300))

	dimsBefore, err := api.PageDimsFile(in)
	require.NoError(t, err)

	out := filepath.Join(dir, "numbered.pdf")
	require.NoError(t, StampPageNumbers(in, out, layout.BottomRight, 5))

	n, err := api.PageCountFile(out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	dimsAfter, err := api.PageDimsFile(out)
	require.NoError(t, err)
	assert.Equal(t, dimsBefore, dimsAfter)
}
