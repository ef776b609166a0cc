package tilequest

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tinne26/etxt"

	"github.com/rhpo/tilequest/hud"
)

// Label draws text centred on a point, for captions such as the
// loading percentage or the end screen.
type Label struct {
	renderer *etxt.Renderer
}

func NewLabel(fonts *hud.FontCache, size float64, clr color.Color) *Label {
	renderer := etxt.NewRenderer()
	renderer.Utils().SetCache8MiB()
	renderer.SetFont(fonts.Source())
	renderer.SetSize(size)
	renderer.SetColor(clr)
	renderer.SetAlign(etxt.Center)
	return &Label{renderer: renderer}
}

func (l *Label) Draw(screen *ebiten.Image, text string, x, y int) {
	l.renderer.Draw(screen, text, x, y)
}
