package img2ascii

import (
	"image"
	"time"

	"github.com/wbrown/img2ascii/imageutil"
	"github.com/wbrown/img2ascii/logx"
)

// Converter runs the file-to-text pipeline: decode, optionally orient and
// downscale, then convert. It holds configuration only and is safe for
// concurrent use once built.
type Converter struct {
	// Configuration options
	Ramp        GlyphRamp
	TargetWidth int
	ScaleFactor float64
	AutoOrient  bool

	loader imageutil.Loader
	log    logx.Logger
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Default values: Ramp=DefaultRamp, TargetWidth=0 (one character per
// pixel), ScaleFactor=2.0, AutoOrient=false.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		Ramp:        DefaultRamp,
		TargetWidth: 0,
		ScaleFactor: 2.0,
		loader:      imageutil.LoadImageWithOptions,
		log:         logx.Discard,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithRamp sets the glyph ramp.
func WithRamp(ramp GlyphRamp) ConverterOption {
	return func(c *Converter) {
		c.Ramp = ramp
	}
}

// WithTargetWidth downscales images wider than width columns before
// conversion. 0 keeps full pixel density.
func WithTargetWidth(width int) ConverterOption {
	return func(c *Converter) {
		c.TargetWidth = width
	}
}

// WithScaleFactor sets the character cell aspect correction applied when
// downscaling.
func WithScaleFactor(factor float64) ConverterOption {
	return func(c *Converter) {
		c.ScaleFactor = factor
	}
}

// WithAutoOrient applies EXIF orientation when decoding files.
func WithAutoOrient(enabled bool) ConverterOption {
	return func(c *Converter) {
		c.AutoOrient = enabled
	}
}

// WithLoader replaces the file decoder.
func WithLoader(loader imageutil.Loader) ConverterOption {
	return func(c *Converter) {
		c.loader = loader
	}
}

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(log logx.Logger) ConverterOption {
	return func(c *Converter) {
		c.log = log
	}
}

// ConvertFile decodes the image at path and converts it. Decoding
// failures are returned as *imageutil.DecodeError; conversion itself
// cannot fail.
func (c *Converter) ConvertFile(path string) (Grid, error) {
	start := time.Now()
	img, err := c.loader(path, imageutil.LoadOptions{AutoOrient: c.AutoOrient})
	if err != nil {
		return nil, err
	}
	c.log.LogPrintf(logx.DEBUG, "decoded %s: %dx%d in %v",
		path, img.Width(), img.Height(), time.Since(start))
	return c.convert(img), nil
}

// ConvertImage converts an already decoded image.
func (c *Converter) ConvertImage(img image.Image) Grid {
	return c.convert(imageutil.RGBAImageFromImage(img))
}

func (c *Converter) convert(img *imageutil.RGBAImage) Grid {
	if c.TargetWidth > 0 && img.Width() > c.TargetWidth {
		w, h := img.Width(), img.Height()
		img = imageutil.FitWidth(img, c.TargetWidth, c.ScaleFactor)
		c.log.LogPrintf(logx.DEBUG, "downscaled %dx%d to %dx%d",
			w, h, img.Width(), img.Height())
	}

	start := time.Now()
	grid := c.Ramp.Convert(img)
	c.log.LogPrintf(logx.DEBUG, "converted to %d rows x %d columns in %v",
		grid.Height(), grid.Width(), time.Since(start))
	return grid
}
