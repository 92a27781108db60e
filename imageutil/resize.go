package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	}
	return draw.CatmullRom
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	interp.scaler().Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// FitWidth shrinks img to width columns when it is wider than that.
// scaleFactor compensates for character cells being taller than wide:
// the new height is width / aspect / scaleFactor. Images already narrow
// enough, and non-positive widths, are returned unchanged.
func FitWidth(img *RGBAImage, width int, scaleFactor float64) *RGBAImage {
	if width <= 0 || img.Width() <= width || img.Height() == 0 {
		return img
	}
	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio / scaleFactor)
	if height < 1 {
		height = 1
	}
	return Resize(img, width, height, InterpolationArea)
}
