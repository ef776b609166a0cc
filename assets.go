package tilequest

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rhpo/tilequest/hud"
)

func LoadImageFromFS(fsys fs.FS, path string) (*ebiten.Image, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// ScaleImage resizes img by factor. A factor of 0 or 1 returns img itself.
func ScaleImage(img *ebiten.Image, factor float64) *ebiten.Image {
	bounds := img.Bounds()
	w, h, same := hud.ScaledSize(bounds.Dx(), bounds.Dy(), factor)
	if same {
		return img
	}
	return ResizeImage(img, w, h)
}

// ResizeImage stretches img to width x height pixels into a new image.
// When img already has that size it is returned as is. Sides below one
// pixel are drawn one pixel wide.
func ResizeImage(img *ebiten.Image, width, height int) *ebiten.Image {
	bounds := img.Bounds()
	width, height, same := hud.ResizeTarget(bounds.Dx(), bounds.Dy(), width, height)
	if same {
		return img
	}

	dst := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(bounds.Dx()), float64(height)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
	return dst
}
