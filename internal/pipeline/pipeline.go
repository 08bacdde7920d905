// Package pipeline sequences the document-processing stages: rasterize,
// enhance, pack, number. All modes are synchronous and single-threaded;
// outputs are combined strictly in sorted-filename order.
package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"github.com/thywilljoshua/slidepress/internal/enhance"
	"github.com/thywilljoshua/slidepress/internal/layout"
	"github.com/thywilljoshua/slidepress/internal/pdfout"
	"github.com/thywilljoshua/slidepress/internal/render"
)

// defaultJPEGQuality is used for packed sheets and flattened images.
const defaultJPEGQuality = 95

// Config carries the knobs shared by the pipeline modes. The zero value is
// usable: every accessor falls back to the tuned default.
type Config struct {
	Log           *logrus.Logger
	DPI           int
	SlidesPerPage int
	Anchor        layout.Anchor
	StartPage     int
	Enhance       enhance.Options
	Combine       bool
	JPEGQuality   int
}

func (c Config) logger() *logrus.Logger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

func (c Config) dpi() int {
	if c.DPI <= 0 {
		return render.DefaultDPI
	}
	return c.DPI
}

func (c Config) perPage() int {
	if c.SlidesPerPage <= 0 {
		return layout.DefaultSlidesPerPage
	}
	return c.SlidesPerPage
}

func (c Config) startPage() int {
	if c.StartPage <= 0 {
		return 1
	}
	return c.StartPage
}

func (c Config) quality() int {
	if c.JPEGQuality <= 0 {
		return defaultJPEGQuality
	}
	return c.JPEGQuality
}

// readable probes path as a PDF and logs a warning when it cannot be opened.
// One corrupt document is skipped rather than aborting the batch.
func (c Config) readable(path string) bool {
	n, err := pdfout.PageCount(path)
	if err != nil {
		c.logger().WithFields(logrus.Fields{"document": path, "error": err}).Warn("skipping unreadable document")
		return false
	}
	if n == 0 {
		c.logger().WithField("document", path).Warn("skipping document with no pages")
		return false
	}
	return true
}

// enhanceDocument rasterizes every page of in, runs the filter chain on it
// and writes the result as a fixed-DPI PDF at out. Pages that fail to render
// or encode are logged and omitted; the page raster is released as soon as
// its scratch file is written.
func (c Config) enhanceDocument(in, out string) error {
	log := c.logger()

	scratch, err := os.MkdirTemp("", "slidepress-pages-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	var pagePaths []string
	err = render.EachPage(in, float64(c.dpi()), func(n int, img image.Image, renderErr error) error {
		if renderErr != nil {
			log.WithFields(logrus.Fields{"document": in, "page": n + 1, "error": renderErr}).Warn("skipping page")
			return nil
		}
		p := filepath.Join(scratch, fmt.Sprintf("page_%04d.png", n+1))
		if err := imaging.Save(enhance.Apply(img, c.Enhance), p); err != nil {
			log.WithFields(logrus.Fields{"document": in, "page": n + 1, "error": err}).Warn("skipping page")
			return nil
		}
		pagePaths = append(pagePaths, p)
		return nil
	})
	if err != nil {
		return err
	}
	if len(pagePaths) == 0 {
		return fmt.Errorf("no pages could be processed from %s", in)
	}
	return pdfout.ImportImages(pagePaths, out, c.dpi())
}

// EnhanceDir enhances every PDF in dir. With Combine set, the per-document
// results are merged into <name>_combined.pdf in outDir and the scratch
// directory is removed; otherwise each input becomes enhanced_<file> in
// outDir. Unreadable documents are skipped.
func (c Config) EnhanceDir(dir, outDir, name string) error {
	log := c.logger()

	files, err := scanPDFs(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF files found in %s", dir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	targetDir := outDir
	if c.Combine {
		targetDir = filepath.Join(outDir, "temp_enhanced")
		if err := os.MkdirAll(targetDir, 0o755); err != nil {
			return err
		}
	}

	var outputs []string
	for i, f := range files {
		if !c.readable(f) {
			continue
		}
		log.WithFields(logrus.Fields{"document": f, "index": i + 1, "total": len(files)}).Info("enhancing")
		out := filepath.Join(targetDir, "enhanced_"+filepath.Base(f))
		if err := c.enhanceDocument(f, out); err != nil {
			log.WithFields(logrus.Fields{"document": f, "error": err}).Warn("skipping document")
			continue
		}
		outputs = append(outputs, out)
	}
	if len(outputs) == 0 {
		return fmt.Errorf("no documents could be enhanced from %s", dir)
	}

	if !c.Combine {
		return nil
	}
	final := filepath.Join(outDir, name+"_combined.pdf")
	if err := pdfout.Merge(outputs, final); err != nil {
		return err
	}
	log.WithField("output", final).Info("combined enhanced documents")
	return os.RemoveAll(targetDir)
}

// PackInputs rasterizes every page of the input (a single PDF or a folder of
// PDFs, sorted, non-recursive) into one flat sequence and lays the pages out
// SlidesPerPage-up on A4 sheets, written to <outDir>/<name>.pdf.
//
// All rasterized pages are held in memory at once in this mode; peak memory
// grows with the total page count of the batch.
func (c Config) PackInputs(in, outDir, name string) error {
	log := c.logger()

	files, err := c.collectPDFs(in)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var slides []image.Image
	for i, f := range files {
		if !c.readable(f) {
			continue
		}
		log.WithFields(logrus.Fields{"document": f, "index": i + 1, "total": len(files)}).Info("rasterizing")
		err := render.EachPage(f, float64(c.dpi()), func(n int, img image.Image, renderErr error) error {
			if renderErr != nil {
				log.WithFields(logrus.Fields{"document": f, "page": n + 1, "error": renderErr}).Warn("skipping page")
				return nil
			}
			slides = append(slides, img)
			return nil
		})
		if err != nil {
			log.WithFields(logrus.Fields{"document": f, "error": err}).Warn("skipping document")
		}
	}
	if len(slides) == 0 {
		return fmt.Errorf("no pages to pack from %s", in)
	}

	pages := layout.Pack(slides, c.perPage(), layout.A4Width, layout.A4Height)
	log.WithFields(logrus.Fields{"slides": len(slides), "sheets": len(pages)}).Info("packed slides")

	scratch, err := os.MkdirTemp("", "slidepress-sheets-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	sheetPaths := make([]string, 0, len(pages))
	for i, p := range pages {
		sp := filepath.Join(scratch, fmt.Sprintf("sheet_%04d.jpg", i+1))
		if err := imaging.Save(p, sp, imaging.JPEGQuality(c.quality())); err != nil {
			return fmt.Errorf("write sheet %d: %w", i+1, err)
		}
		sheetPaths = append(sheetPaths, sp)
	}

	out := filepath.Join(outDir, name+".pdf")
	if err := pdfout.ImportImagesA4(sheetPaths, out); err != nil {
		return err
	}
	log.WithField("output", out).Info("wrote packed document")
	return nil
}

// collectPDFs resolves in to an ordered list of input documents: the file
// itself, or the PDFs directly inside it when in is a directory.
func (c Config) collectPDFs(in string) ([]string, error) {
	fi, err := os.Stat(in)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", in, err)
	}
	if !fi.IsDir() {
		return []string{in}, nil
	}
	files, err := scanPDFs(in)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", in)
	}
	return files, nil
}

// Number copies in to out with a running page number stamped onto every
// page, starting at StartPage.
func (c Config) Number(in, out string) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := pdfout.StampPageNumbers(in, out, c.Anchor, c.startPage()); err != nil {
		return err
	}
	c.logger().WithFields(logrus.Fields{"output": out, "anchor": string(c.Anchor), "start": c.startPage()}).Info("numbered pages")
	return nil
}

// ImagesToPDF loads the images in dir (sorted, non-recursive), flattens each
// to opaque RGB, writes them as a one-image-per-page document and stamps
// page numbers onto it. The unnumbered intermediate is removed on success.
func (c Config) ImagesToPDF(dir, outDir, name string) error {
	log := c.logger()

	files, err := scanImages(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no image files found in %s", dir)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	scratch, err := os.MkdirTemp("", "slidepress-images-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	var flat []string
	for i, f := range files {
		img, err := imaging.Open(f)
		if err != nil {
			log.WithFields(logrus.Fields{"image": f, "error": err}).Warn("skipping image")
			continue
		}
		p := filepath.Join(scratch, fmt.Sprintf("img_%04d.jpg", i+1))
		if err := imaging.Save(layout.Flatten(img), p, imaging.JPEGQuality(c.quality())); err != nil {
			log.WithFields(logrus.Fields{"image": f, "error": err}).Warn("skipping image")
			continue
		}
		flat = append(flat, p)
	}
	if len(flat) == 0 {
		return fmt.Errorf("no images could be processed from %s", dir)
	}

	tmp := filepath.Join(outDir, "temp_no_numbers.pdf")
	if err := pdfout.ImportImages(flat, tmp, c.dpi()); err != nil {
		return err
	}
	if err := c.Number(tmp, filepath.Join(outDir, name+".pdf")); err != nil {
		return err
	}
	return os.Remove(tmp)
}

// FullWorkflow runs enhance, pack and number in sequence. Intermediate
// artifacts live under outDir (temp_enhanced_pdfs/ and temp_merged.pdf) and
// each is removed once the following stage has succeeded; a failure
// mid-pipeline leaves them in place for inspection.
func (c Config) FullWorkflow(dir, outDir, name string) error {
	log := c.logger()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	scratchDir := filepath.Join(outDir, "temp_enhanced_pdfs")
	stage := c
	stage.Combine = false
	log.Info("stage 1/3: enhancing documents")
	if err := stage.EnhanceDir(dir, scratchDir, name); err != nil {
		return err
	}

	log.Info("stage 2/3: packing slides")
	if err := c.PackInputs(scratchDir, outDir, "temp_merged"); err != nil {
		return err
	}
	if err := os.RemoveAll(scratchDir); err != nil {
		return err
	}

	log.Info("stage 3/3: numbering pages")
	merged := filepath.Join(outDir, "temp_merged.pdf")
	final := filepath.Join(outDir, name+".pdf")
	if err := c.Number(merged, final); err != nil {
		return err
	}
	if err := os.Remove(merged); err != nil {
		return err
	}

	log.WithField("output", final).Info("workflow complete")
	return nil
}
