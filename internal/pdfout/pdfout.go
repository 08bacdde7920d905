// Package pdfout writes the pipeline's PDF artifacts: importing page images
// into documents, merging documents, and stamping page numbers.
package pdfout

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/thywilljoshua/slidepress/internal/layout"
)

// numberFont matches the overlay the legacy tool produced.
const (
	numberFont   = "Helvetica"
	numberPoints = 12
)

// ImportImages builds a PDF at out from the given image files, one page per
// image, with each page sized to its image at the given DPI.
func ImportImages(paths []string, out string, dpi int) error {
	imp, err := api.Import(fmt.Sprintf("dpi:%d", dpi), types.POINTS)
	if err != nil {
		return fmt.Errorf("import details: %w", err)
	}
	if err := api.ImportImagesFile(paths, out, imp, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("import %d images into %s: %w", len(paths), out, err)
	}
	return nil
}

// ImportImagesA4 builds a PDF at out from the given image files, one image
// per page, scaled to fill an A4 sheet.
func ImportImagesA4(paths []string, out string) error {
	imp, err := api.Import("f:A4, pos:full", types.POINTS)
	if err != nil {
		return fmt.Errorf("import details: %w", err)
	}
	if err := api.ImportImagesFile(paths, out, imp, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("import %d images into %s: %w", len(paths), out, err)
	}
	return nil
}

// Merge concatenates the given PDFs into a single document at out, in input
// order.
func Merge(paths []string, out string) error {
	if err := api.MergeCreateFile(paths, out, false, model.NewDefaultConfiguration()); err != nil {
		return fmt.Errorf("merge %d documents into %s: %w", len(paths), out, err)
	}
	return nil
}

// StampPageNumbers copies in to out and overlays a running page number on
// every page, placed at the anchor position for that page's dimensions.
// Numbers start at start and increment once per physical page.
func StampPageNumbers(in, out string, anchor layout.Anchor, start int) error {
	dims, err := api.PageDimsFile(in)
	if err != nil {
		return fmt.Errorf("page dimensions of %s: %w", in, err)
	}
	if err := copyFile(in, out); err != nil {
		return fmt.Errorf("copy %s: %w", in, err)
	}

	conf := model.NewDefaultConfiguration()
	desc := fmt.Sprintf("font:%s, points:%d, scale:1 abs, pos:bl, rot:0, op:1", numberFont, numberPoints)

	for i, dim := range dims {
		wm, err := pdfcpu.ParseTextWatermarkDetails(strconv.Itoa(start+i), desc, true, types.POINTS)
		if err != nil {
			return fmt.Errorf("page number stamp: %w", err)
		}
		// Shift from the bottom-left anchor to the absolute coordinate.
		wm.Dx, wm.Dy = layout.Position(anchor, dim.Width, dim.Height)

		pages := []string{strconv.Itoa(i + 1)}
		if err := api.AddWatermarksFile(out, "", pages, wm, conf); err != nil {
			return fmt.Errorf("stamp page %d: %w", i+1, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
