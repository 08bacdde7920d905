package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// scanDir lists the files directly inside dir whose lowercased name ends in
// one of the given extensions, sorted by filename. Subdirectories are not
// descended into; sorted order is the pipeline's page-ordering guarantee.
func scanDir(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				out = append(out, filepath.Join(dir, e.Name()))
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func scanPDFs(dir string) ([]string, error) {
	return scanDir(dir, ".pdf")
}

func scanImages(dir string) ([]string, error) {
	return scanDir(dir, ".png", ".jpg", ".jpeg")
}
