// Package render rasterizes PDF pages via MuPDF (go-fitz).
package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the rasterization resolution used when none is configured.
const DefaultDPI = 300

// EachPage renders every page of the document at path in page order and
// calls fn once per page. One raster buffer is live at a time, so memory
// stays proportional to a single page.
//
// A failure to render an individual page is passed to fn as renderErr with a
// nil image, leaving the skip-or-abort decision to the caller; any error
// returned by fn stops the iteration. Failure to open the document is
// returned directly.
func EachPage(path string, dpi float64, fn func(n int, img image.Image, renderErr error) error) error {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	doc, err := fitz.New(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	for n := 0; n < doc.NumPage(); n++ {
		img, renderErr := doc.ImageDPI(n, dpi)
		if renderErr != nil {
			renderErr = fmt.Errorf("render page %d: %w", n+1, renderErr)
			if err := fn(n, nil, renderErr); err != nil {
				return err
			}
			continue
		}
		if err := fn(n, img, nil); err != nil {
			return err
		}
	}
	return nil
}
