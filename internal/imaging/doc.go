// Package imaging provides the image codec used to build thumbnails.
//
// It decodes encoded image bytes into standard Go image.Image values, scales
// them down to fit a bounding box, and encodes the result as PNG. Decoding,
// resampling and encoding are delegated to github.com/disintegration/imaging;
// WebP support comes from golang.org/x/image/webp.
//
// # Supported Input Formats
//
//   - PNG
//   - JPEG (EXIF orientation is applied)
//   - GIF (first frame)
//   - WebP
//
// # Resizing
//
// FitSize is the pure size computation and Fit applies it with the Lanczos
// filter. Images are never scaled up. Output is deterministic: the same input
// always yields the same pixels and the same PNG bytes.
package imaging
