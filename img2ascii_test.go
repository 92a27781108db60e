package img2ascii

import (
	"image"
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/wbrown/img2ascii/imageutil"
)

// pixels is an Image backed by a row-major slice.
type pixels struct {
	w, h int
	px   [][3]uint8
}

func (p *pixels) Width() int  { return p.w }
func (p *pixels) Height() int { return p.h }
func (p *pixels) RGBAt(x, y int) (r, g, b uint8) {
	c := p.px[y*p.w+x]
	return c[0], c[1], c[2]
}

func TestGrayscaleTruncates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 1, 1, 1},
		{2, 2, 1, 1},
		{255, 255, 255, 255},
		{255, 255, 254, 254},
	}
	for _, tt := range tests {
		if got := Grayscale(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("Grayscale(%d,%d,%d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}

	// 50 is the 'O' threshold; (50+50+49)/3 truncates to 49
	img := &pixels{w: 1, h: 1, px: [][3]uint8{{50, 50, 49}}}
	if got := ConvertImageToASCII(img).String(); got != "@\n" {
		t.Errorf("Truncated gray should stay below threshold, got %q", got)
	}
}

func TestConvertEndToEnd(t *testing.T) {
	t.Parallel()

	white, black := [3]uint8{255, 255, 255}, [3]uint8{0, 0, 0}
	img := &pixels{w: 2, h: 2, px: [][3]uint8{white, black, white, black}}

	grid := ConvertImageToASCII(img)
	if got, want := grid.String(), " @\n @\n"; got != want {
		t.Errorf("ConvertImageToASCII = %q, want %q", got, want)
	}
	if grid.Height() != 2 || grid.Width() != 2 {
		t.Errorf("Grid is %dx%d, want 2x2", grid.Width(), grid.Height())
	}
}

func TestConvertGridShape(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, size := range [][2]int{{1, 1}, {1, 7}, {7, 1}, {13, 5}, {64, 33}} {
		w, h := size[0], size[1]
		img := &pixels{w: w, h: h, px: make([][3]uint8, w*h)}
		for i := range img.px {
			img.px[i] = [3]uint8{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		}

		grid := ConvertImageToASCII(img)
		if len(grid) != h {
			t.Errorf("%dx%d: got %d rows", w, h, len(grid))
			continue
		}
		for y, row := range grid {
			if n := utf8.RuneCountInString(row); n != w {
				t.Errorf("%dx%d: row %d has %d characters", w, h, y, n)
			}
		}
		if s := grid.String(); strings.Count(s, "\n") != h || !strings.HasSuffix(s, "\n") {
			t.Errorf("%dx%d: String() should end every row with a newline", w, h)
		}
	}
}

func TestConvertRowMajor(t *testing.T) {
	t.Parallel()

	// gray values chosen to hit distinct glyphs
	img := &pixels{w: 3, h: 2, px: [][3]uint8{
		{0, 0, 0}, {60, 60, 60}, {80, 80, 80},
		{110, 110, 110}, {140, 140, 140}, {240, 240, 240},
	}}
	want := Grid{"@O%", "#+ "}
	got := ConvertImageToASCII(img)
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestConvertEmptyImage(t *testing.T) {
	t.Parallel()

	for _, img := range []Image{
		&pixels{w: 0, h: 0},
		&pixels{w: 0, h: 4},
		&pixels{w: 4, h: 0},
	} {
		grid := ConvertImageToASCII(img)
		if len(grid) != 0 || grid.String() != "" {
			t.Errorf("%dx%d image should give an empty grid, got %q",
				img.Width(), img.Height(), grid.String())
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateColorBarsImage(40, 10)
	before := img.Clone()

	first := ConvertImageToASCII(img).String()
	second := ConvertImageToASCII(img).String()
	if first != second {
		t.Error("Converting the same image twice should give identical output")
	}
	if imageutil.CalculateMSE(before, img) != 0 {
		t.Error("Conversion must not modify the source image")
	}
}

func TestConvertCustomRamp(t *testing.T) {
	t.Parallel()

	ramp, err := NewGlyphRamp('X', GlyphStep{128, '-'})
	if err != nil {
		t.Fatal(err)
	}
	img := imageutil.CreateCheckerboardImage(4, 2, 1)
	if got, want := ramp.Convert(img).String(), "-X-X\nX-X-\n"; got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestFromImage(t *testing.T) {
	t.Parallel()

	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	src.SetNRGBA(6, 5, color.NRGBA{R: 255, G: 255, B: 255, A: 0})

	img := FromImage(src)
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("FromImage size = %dx%d, want 2x1", img.Width(), img.Height())
	}
	// Transparent white reads as black
	if got, want := ConvertImageToASCII(img).String(), " @\n"; got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestFromImageMatchesRGBAImage(t *testing.T) {
	t.Parallel()

	img := imageutil.CreateGradientImage(256, 3)
	a := ConvertImageToASCII(img).String()
	b := ConvertImageToASCII(FromImage(img.RGBA)).String()
	if a != b {
		t.Error("FromImage and RGBAImage should convert identically")
	}
}
