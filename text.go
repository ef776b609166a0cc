package tilequest

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/rhpo/tilequest/hud"
)

// DrawText draws props.Text with a face of props.Size from fonts. When
// the face cannot be built the basic 7x13 bitmap face is used instead.
func DrawText(screen *ebiten.Image, fonts *hud.FontCache, props *hud.TextProps) {
	size, clr, ok := props.Style()
	if !ok {
		return
	}

	var face font.Face = basicfont.Face7x13
	if fonts != nil {
		if f, err := fonts.Face(size); err == nil {
			face = f
		} else {
			logger.Debugf("falling back to basic font: %v", err)
		}
	}

	x := int(props.X)
	y := int(props.Y) + face.Metrics().Ascent.Ceil()

	if props.FromEnd {
		bounds, _ := font.BoundString(face, props.Text)
		x = screen.Bounds().Dx() - bounds.Max.X.Ceil() - int(props.X)
	}

	text.Draw(screen, props.Text, face, x, y, clr)
}
