// Package enhance applies the fixed filter chain used to clean up scanned
// lecture slides: color inversion, contrast boost, sharpening.
package enhance

import (
	"image"

	"github.com/disintegration/imaging"
)

// unsharpRadius is the gaussian radius used by the sharpening step.
const unsharpRadius = 1.5

// Options control the filter chain.
type Options struct {
	// Contrast is a multiplicative factor, 1.0 leaves the image unchanged.
	Contrast float64
	// Sharpen is the unsharp strength in percent. Zero disables sharpening.
	Sharpen int
}

// DefaultOptions returns the tuned defaults for projector scans.
func DefaultOptions() Options {
	return Options{Contrast: 2.0, Sharpen: 200}
}

// Apply runs the chain on img and returns the filtered copy. The input is
// never modified.
func Apply(img image.Image, opts Options) *image.NRGBA {
	out := imaging.Invert(img)
	out = imaging.AdjustContrast(out, contrastPercentage(opts.Contrast))
	if opts.Sharpen > 0 {
		out = imaging.Sharpen(out, unsharpRadius)
	}
	return out
}

// contrastPercentage maps a multiplicative contrast factor onto the
// percentage scale imaging uses, clamped to [-100, 100]. A factor of 2.0
// saturates the scale.
func contrastPercentage(factor float64) float64 {
	p := (factor - 1) * 100
	if p > 100 {
		return 100
	}
	if p < -100 {
		return -100
	}
	return p
}
