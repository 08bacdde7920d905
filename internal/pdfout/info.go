package pdfout

import (
	"fmt"
	"os"

	rpdf "rsc.io/pdf"
)

// PageCount opens the document just far enough to count its pages. An error
// means the file is unreadable as a PDF; the orchestrator uses this as a
// cheap corrupt-document probe before committing to rasterization.
func PageCount(path string) (n int, err error) {
	// rsc.io/pdf panics on malformed input rather than returning an error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read %s: %v", path, r)
		}
	}()

	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	doc, err := rpdf.NewReader(f, fi.Size())
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	return doc.NumPage(), nil
}
