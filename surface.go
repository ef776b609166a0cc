package tilequest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface lets hud helpers draw on an ebiten image.
type ImageSurface struct {
	Image *ebiten.Image
}

func (s ImageSurface) StrokeRect(x, y, width, height, strokeWidth float64, c color.Color) {
	vector.StrokeRect(s.Image, float32(x), float32(y), float32(width), float32(height), float32(strokeWidth), c, false)
}

func (s ImageSurface) FillRect(x, y, width, height float64, c color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(width), float32(height), c, false)
}
