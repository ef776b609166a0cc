package hud

import (
	"image/color"

	"github.com/rhpo/tilequest/config"
)

type TextProps struct {
	Text string
	// X, Y is the top-left corner of the text box.
	X, Y  float64
	Size  float64
	Color color.Color
	// Opacity scales the colour's alpha from 0 (invisible) to 255
	// (unchanged). Nil means 255.
	Opacity *uint8
	// FromEnd measures X from the right edge of the screen.
	FromEnd bool
}

// Opacity returns a pointer for TextProps.Opacity.
func Opacity(a uint8) *uint8 {
	return &a
}

// Style resolves the size and colour props.Text is drawn with, defaulting
// to config.DefaultFontSize and white. ok is false when nothing would show.
func (p *TextProps) Style() (size float64, clr color.Color, ok bool) {
	if p == nil || p.Text == "" {
		return 0, nil, false
	}
	if p.Opacity != nil && *p.Opacity == 0 {
		return 0, nil, false
	}

	size = p.Size
	if size == 0 {
		size = config.DefaultFontSize
	}

	clr = color.White
	if p.Color != nil {
		clr = p.Color
	}
	if p.Opacity != nil {
		clr = WithAlpha(clr, *p.Opacity)
	}
	return size, clr, true
}

// WithAlpha scales c's alpha by alpha/255.
func WithAlpha(c color.Color, alpha uint8) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(uint16(n.A) * uint16(alpha) / 255)
	return n
}
