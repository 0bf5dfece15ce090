package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decode decodes raw image bytes into an in-memory image.
//
// Parameters:
//   - data: The complete encoded image. Supported formats are PNG, JPEG,
//     GIF, and WebP.
//
// Returns:
//   - image.Image: The decoded image. JPEG images carrying an EXIF
//     orientation tag are rotated upright.
//   - error: Non-nil if the data is empty, truncated, or not a recognised
//     image format.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("failed to decode image: empty data")
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// EncodePNG writes img to w as a PNG at the highest compression level.
//
// The PNG encoder is deterministic, so encoding the same image twice yields
// byte-identical output.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// ImageInfo contains basic metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// HasAlpha indicates whether the image type carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`
}

// Info returns the dimensions and alpha presence of img.
//
// Alpha presence is decided by the concrete image type, not by inspecting
// pixel values: *image.RGBA, *image.NRGBA and their 16-bit variants report
// true.
func Info(img image.Image) ImageInfo {
	bounds := img.Bounds()

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	return ImageInfo{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		HasAlpha: hasAlpha,
	}
}
