package wildfire

import "image/color"

var wildfirePalette = buildWildfirePalette()

// Palette exposes the color palette used for rendering the display buffer.
// Index i is the color of State(i).
func (e *Engine) Palette() []color.RGBA {
	return wildfirePalette
}

func buildWildfirePalette() []color.RGBA {
	palette := make([]color.RGBA, StateNonFlammable+1)
	for i := range palette {
		palette[i] = toRGBA(StateColor(State(i)))
	}
	return palette
}

// StateColor returns the display color of a cell state.
func StateColor(s State) color.NRGBA {
	switch s {
	case StateFlammable:
		return color.NRGBA{R: 40, G: 120, B: 55, A: 255}
	case StateBurning:
		return color.NRGBA{R: 255, G: 110, B: 30, A: 255}
	case StateBurnedOut:
		return color.NRGBA{R: 70, G: 66, B: 62, A: 255}
	case StateNonFlammable:
		return color.NRGBA{R: 50, G: 110, B: 200, A: 255}
	default:
		return color.NRGBA{A: 255}
	}
}

// Glyph returns the single-letter code of a cell state.
func Glyph(s State) rune {
	switch s {
	case StateFlammable:
		return 'T'
	case StateBurning:
		return 'B'
	case StateBurnedOut:
		return 'D'
	case StateNonFlammable:
		return 'W'
	default:
		return '?'
	}
}

// String renders the snapshot as rows of glyphs separated by spaces.
func (s Snapshot) String() string {
	buf := make([]rune, 0, s.Rows*(2*s.Cols))
	for row := 0; row < s.Rows; row++ {
		for col := 0; col < s.Cols; col++ {
			if col > 0 {
				buf = append(buf, ' ')
			}
			buf = append(buf, Glyph(s.At(row, col)))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
