// Package layout packs slide images onto fixed-size output pages and maps
// page-number anchors to coordinates.
package layout

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// A4 page dimensions in pixels at 300 DPI (8.27in x 11.69in).
const (
	A4Width  = 2480
	A4Height = 3508
)

// DefaultSlidesPerPage is the number of slides stacked onto one sheet.
const DefaultSlidesPerPage = 3

type fitKind int

const (
	// fitHeight: the slide fills its band height exactly.
	fitHeight fitKind = iota
	// fitWidth: the slide is clamped to the page width and ends up shorter
	// than its band, leaving a gap below.
	fitWidth
)

// slotFit is the resolved target size for one slide within its band.
type slotFit struct {
	kind   fitKind
	width  int
	height int
}

// fitSlide computes the target size for a slide of imgW x imgH pixels in a
// band of bandH pixels on a page of pageW pixels. The band height wins
// unless the width at that scale would overflow the page, in which case the
// width is clamped and the height shrinks below the band.
func fitSlide(imgW, imgH, bandH, pageW int) slotFit {
	scale := float64(bandH) / float64(imgH)
	w := int(float64(imgW) * scale)
	if w > pageW {
		scale = float64(pageW) / float64(imgW)
		return slotFit{kind: fitWidth, width: pageW, height: int(float64(imgH) * scale)}
	}
	return slotFit{kind: fitHeight, width: w, height: bandH}
}

// Pack lays slides out onto white pageW x pageH canvases, perPage slides per
// canvas, in input order. The last page may hold fewer slides. Each slide is
// flattened, scaled to its band with Lanczos resampling, horizontally
// centered and stacked from the top using the actual rendered heights, so a
// width-clamped slide leaves its gap below itself rather than pushing later
// slides down. An empty input yields an empty result.
func Pack(slides []image.Image, perPage, pageW, pageH int) []*image.NRGBA {
	if perPage <= 0 {
		perPage = DefaultSlidesPerPage
	}
	bandH := pageH / perPage

	var pages []*image.NRGBA
	for i := 0; i < len(slides); i += perPage {
		end := i + perPage
		if end > len(slides) {
			end = len(slides)
		}

		page := imaging.New(pageW, pageH, color.White)
		yCursor := 0
		for _, slide := range slides[i:end] {
			b := slide.Bounds()
			fit := fitSlide(b.Dx(), b.Dy(), bandH, pageW)
			resized := imaging.Resize(Flatten(slide), fit.width, fit.height, imaging.Lanczos)
			x := (pageW - fit.width) / 2
			page = imaging.Paste(page, resized, image.Pt(x, yCursor))
			yCursor += fit.height
		}
		pages = append(pages, page)
	}
	return pages
}

// Flatten returns img as fully opaque NRGBA. The alpha channel is discarded
// outright, not composited against a background.
func Flatten(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
