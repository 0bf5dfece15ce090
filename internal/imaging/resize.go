package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// FitSize computes the dimensions of a srcW x srcH image scaled down to fit
// within maxW x maxH while keeping its aspect ratio.
//
// Images already inside the bounds keep their size; nothing is ever scaled
// up. Each side is rounded to the nearest pixel and is at least 1.
// Non-positive source or bound dimensions yield 0x0.
func FitSize(srcW, srcH, maxW, maxH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	if srcW <= maxW && srcH <= maxH {
		return srcW, srcH
	}

	// Compare srcW/srcH against maxW/maxH without floating point to pick the
	// limiting side.
	if int64(srcW)*int64(maxH) >= int64(srcH)*int64(maxW) {
		return maxW, scaleSide(srcH, maxW, srcW)
	}
	return scaleSide(srcW, maxH, srcH), maxH
}

// scaleSide returns side*num/den rounded to the nearest pixel, at least 1.
func scaleSide(side, num, den int) int {
	return max(1, int(math.Round(float64(side)*float64(num)/float64(den))))
}

// Fit scales img down to fit within maxW x maxH using the Lanczos filter.
//
// When img already fits, a clone is returned so the result never aliases the
// source pixels.
func Fit(img image.Image, maxW, maxH int) image.Image {
	bounds := img.Bounds()
	w, h := FitSize(bounds.Dx(), bounds.Dy(), maxW, maxH)

	if w == bounds.Dx() && h == bounds.Dy() {
		return imaging.Clone(img)
	}
	if w == 0 || h == 0 {
		return &image.NRGBA{}
	}

	return imaging.Resize(img, w, h, imaging.Lanczos)
}
