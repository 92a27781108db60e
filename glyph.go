package img2ascii

import (
	"errors"
	"fmt"
)

// GlyphStep maps every gray value at or above Threshold (and below the
// previous step's threshold) to Glyph.
type GlyphStep struct {
	Threshold int
	Glyph     rune
}

// GlyphRamp quantizes a gray value into a character. Steps are sorted by
// descending threshold and the first step whose threshold the gray value
// reaches wins; values below every threshold map to the floor glyph.
// A GlyphRamp is immutable once built.
type GlyphRamp struct {
	steps []GlyphStep
	floor rune
}

// DefaultRamp renders the lightest pixels as blank space and the darkest
// as '@', so a silhouette appears when the text is shown in a monospace
// font.
var DefaultRamp = mustGlyphRamp('@',
	GlyphStep{230, ' '},
	GlyphStep{200, '.'},
	GlyphStep{180, ':'},
	GlyphStep{160, '*'},
	GlyphStep{130, '+'},
	GlyphStep{100, '#'},
	GlyphStep{70, '%'},
	GlyphStep{50, 'O'},
)

var errEmptyRamp = errors.New("glyph ramp needs at least one step")

// NewGlyphRamp builds a ramp from steps given lightest first. Thresholds
// must be strictly descending.
func NewGlyphRamp(floor rune, steps ...GlyphStep) (GlyphRamp, error) {
	if len(steps) == 0 {
		return GlyphRamp{}, errEmptyRamp
	}
	for i := 1; i < len(steps); i++ {
		if steps[i].Threshold >= steps[i-1].Threshold {
			return GlyphRamp{}, fmt.Errorf(
				"glyph ramp thresholds must descend: step %d (%d) follows %d",
				i, steps[i].Threshold, steps[i-1].Threshold)
		}
	}
	return GlyphRamp{
		steps: append([]GlyphStep(nil), steps...),
		floor: floor,
	}, nil
}

func mustGlyphRamp(floor rune, steps ...GlyphStep) GlyphRamp {
	r, err := NewGlyphRamp(floor, steps...)
	if err != nil {
		panic(err)
	}
	return r
}

// Glyph returns the character for gray. It is total: any int maps to
// exactly one glyph.
func (r GlyphRamp) Glyph(gray int) rune {
	for _, s := range r.steps {
		if gray >= s.Threshold {
			return s.Glyph
		}
	}
	return r.floor
}

// Level returns the ramp position for gray: 0 for the floor (darkest)
// glyph up to Len()-1 for the lightest. Higher gray never yields a lower
// level.
func (r GlyphRamp) Level(gray int) int {
	for i, s := range r.steps {
		if gray >= s.Threshold {
			return len(r.steps) - i
		}
	}
	return 0
}

// Len is the number of distinct glyphs, floor included.
func (r GlyphRamp) Len() int {
	if len(r.steps) == 0 {
		return 0
	}
	return len(r.steps) + 1
}

// Glyphs lists the ramp's characters from darkest to lightest.
func (r GlyphRamp) Glyphs() []rune {
	if len(r.steps) == 0 {
		return nil
	}
	out := make([]rune, 0, len(r.steps)+1)
	out = append(out, r.floor)
	for i := len(r.steps) - 1; i >= 0; i-- {
		out = append(out, r.steps[i].Glyph)
	}
	return out
}

// SampleToGlyph maps a gray value in [0, 255] to its DefaultRamp glyph.
func SampleToGlyph(gray int) rune {
	return DefaultRamp.Glyph(gray)
}
