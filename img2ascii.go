// Package img2ascii turns raster images into ASCII art. Each source pixel
// becomes one character chosen by its brightness, so the output keeps the
// image's full resolution unless the caller downscales first.
package img2ascii

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/wbrown/img2ascii/imageutil"
)

// Image is the pixel grid the converter samples. Coordinates run from
// (0, 0) to (Width()-1, Height()-1).
type Image interface {
	Width() int
	Height() int
	RGBAt(x, y int) (r, g, b uint8)
}

// FromImage adapts a standard library image. Its bounds origin is moved
// to (0, 0) and translucent pixels read as if composited onto black.
func FromImage(img image.Image) Image {
	return stdImage{img: img, bounds: img.Bounds()}
}

type stdImage struct {
	img    image.Image
	bounds image.Rectangle
}

func (s stdImage) Width() int  { return s.bounds.Dx() }
func (s stdImage) Height() int { return s.bounds.Dy() }

func (s stdImage) RGBAt(x, y int) (r, g, b uint8) {
	c := imageutil.RGBFromColor(s.img.At(s.bounds.Min.X+x, s.bounds.Min.Y+y))
	return c.R, c.G, c.B
}

// Grayscale is the unweighted mean of the three channels, truncated.
func Grayscale(r, g, b uint8) int {
	return (int(r) + int(g) + int(b)) / 3
}

// Grid is ASCII art, one string per image row.
type Grid []string

// String joins the rows, terminating every row with a newline.
func (g Grid) String() string {
	n := 0
	for _, row := range g {
		n += len(row) + 1
	}
	var sb strings.Builder
	sb.Grow(n)
	for _, row := range g {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Height is the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width is the number of characters in the widest row.
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Convert maps every pixel of img to a glyph, row by row. A grid has
// exactly img.Height() rows of img.Width() characters; an image with no
// pixels yields an empty grid.
func (r GlyphRamp) Convert(img Image) Grid {
	width, height := img.Width(), img.Height()
	if width <= 0 || height <= 0 {
		return Grid{}
	}

	grid := make(Grid, height)
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Grow(width)
		for x := 0; x < width; x++ {
			cr, cg, cb := img.RGBAt(x, y)
			row.WriteRune(r.Glyph(Grayscale(cr, cg, cb)))
		}
		grid[y] = row.String()
		row.Reset()
	}
	return grid
}

// ConvertImageToASCII converts img with DefaultRamp.
func ConvertImageToASCII(img Image) Grid {
	return DefaultRamp.Convert(img)
}
