package img2ascii

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"github.com/wbrown/img2ascii/imageutil"
)

// FontOptions controls PNG rendering of a grid.
type FontOptions struct {
	// FontPath is a TrueType file. Empty uses the embedded Go Mono font.
	FontPath   string
	Size       float64 // points at 72 DPI
	Foreground color.Color
	Background color.Color
}

// DefaultFontOptions renders 12pt Go Mono, light on dark.
func DefaultFontOptions() FontOptions {
	return FontOptions{
		Size:       12,
		Foreground: color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff},
		Background: color.RGBA{R: 0x38, G: 0x38, B: 0x38, A: 0xff},
	}
}

// loadFont loads a TrueType font from file, or Go Mono when path is empty.
func loadFont(path string) (*truetype.Font, error) {
	fontBytes := gomono.TTF
	if path != "" {
		var err error
		fontBytes, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return freetype.ParseFont(fontBytes)
}

// RenderGrid draws g onto an image, one fixed-size cell per character.
// Cell width comes from the font's advance for 'M', so proportional
// fonts are forced onto a grid.
func RenderGrid(g Grid, opts FontOptions) (*image.RGBA, error) {
	ttf, err := loadFont(opts.FontPath)
	if err != nil {
		return nil, &ExportError{Op: "render", Path: opts.FontPath, Err: err}
	}
	if opts.Size <= 0 {
		opts.Size = DefaultFontOptions().Size
	}
	if opts.Foreground == nil {
		opts.Foreground = color.White
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = fixed.I(int(opts.Size))
	}
	cellW := advance.Ceil()
	cellH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	// An empty grid still yields a 1x1 background so it can be saved.
	w, h := max(g.Width()*cellW, 1), max(g.Height()*cellH, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	// Set up the freetype context
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.Size)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.NewUniform(opts.Foreground))
	ctx.SetHinting(font.HintingFull)

	for y, row := range g {
		x := 0
		for _, r := range row {
			if r != ' ' {
				pt := freetype.Pt(x*cellW, y*cellH+ascent)
				if _, err := ctx.DrawString(string(r), pt); err != nil {
					return nil, &ExportError{Op: "render", Path: opts.FontPath, Err: err}
				}
			}
			x++
		}
	}

	return img, nil
}

// SaveGridToPNG renders g and writes it to path.
func SaveGridToPNG(g Grid, path string, opts FontOptions) error {
	img, err := RenderGrid(g, opts)
	if err != nil {
		return err
	}
	if err := imageutil.SavePNG(img, path); err != nil {
		return &ExportError{Op: "write", Path: path, Err: err}
	}
	return nil
}

var errColorFormat = errors.New("color must be #rgb or #rrggbb")

// ParseColor parses "#rgb" or "#rrggbb".
func ParseColor(s string) (color.NRGBA, error) {
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' {
		return color.NRGBA{}, errColorFormat
	}

	i, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, errColorFormat
	}

	if len(s) == 7 {
		return color.NRGBA{R: uint8(i >> 16), G: uint8(i >> 8), B: uint8(i), A: 0xff}, nil
	}
	expand := func(x uint8) uint8 { return 0x11 * (0x0f & x) }
	return color.NRGBA{
		R: expand(uint8(i >> 8)),
		G: expand(uint8(i >> 4)),
		B: expand(uint8(i)),
		A: 0xff,
	}, nil
}
