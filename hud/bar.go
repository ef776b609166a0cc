package hud

import (
	"image/color"
	"math"

	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/geom"
)

// Surface is anything the bar can be drawn on.
type Surface interface {
	StrokeRect(x, y, width, height, strokeWidth float64, c color.Color)
	FillRect(x, y, width, height float64, c color.Color)
}

const BorderWidth = 2

// PctBar is a bordered box filled from the left up to a fraction.
type PctBar struct {
	X, Y          float64
	Width, Height float64
	Margin        float64
	Color         color.Color
}

// Rects returns the border box and the fill box for fraction.
// Fractions are clamped to [0, 1]; the fill width is truncated to whole pixels.
func (b PctBar) Rects(fraction float64) (outer, inner geom.Rect) {
	fraction = math.Max(0, math.Min(fraction, 1))

	outer = geom.NewRect(b.X, b.Y, b.Width, b.Height)
	inner = geom.NewRect(
		b.X+b.Margin,
		b.Y+b.Margin,
		math.Trunc(fraction*(b.Width-2*b.Margin)),
		b.Height-2*b.Margin,
	)
	return outer, inner
}

func (b PctBar) Draw(s Surface, fraction float64) {
	outer, inner := b.Rects(fraction)
	s.StrokeRect(outer.Min.X, outer.Min.Y, outer.Width(), outer.Height(), BorderWidth, b.Color)
	s.FillRect(inner.Min.X, inner.Min.Y, inner.Width(), inner.Height(), b.Color)
}

// LoadingBar is the configured loading bar centred on the screen.
func LoadingBar(cfg *config.Config) PctBar {
	return PctBar{
		X:      (float64(cfg.Width) - cfg.LoadingBar.Width) / 2,
		Y:      (float64(cfg.Height) - cfg.LoadingBar.Height) / 2,
		Width:  cfg.LoadingBar.Width,
		Height: cfg.LoadingBar.Height,
		Margin: cfg.LoadingBar.Margin,
		Color:  cfg.LoadingBar.Color,
	}
}

// DrawLoadingBar draws the loading bar for a percentage in [0, 100].
func DrawLoadingBar(s Surface, cfg *config.Config, percent float64) {
	LoadingBar(cfg).Draw(s, percent/100)
}
