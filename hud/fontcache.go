// Package hud contains the drawing helpers shared by every screen: the
// font cache and the percentage bar.
package hud

import (
	"errors"
	"fmt"

	etxtfont "github.com/tinne26/etxt/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/rhpo/tilequest/internal/logs"
)

var ErrBadFontSize = errors.New("font size must be positive")

var logger = logs.Get("hud")

// FontCache hands out faces of a single font, one per point size.
// Building a face is slow, so faces are created on first use and kept
// for the lifetime of the cache. The zero value is not usable and the
// cache is not safe for concurrent use.
type FontCache struct {
	src   *sfnt.Font
	name  string
	faces map[float64]font.Face
}

func NewFontCache(src *sfnt.Font, name string) *FontCache {
	return &FontCache{
		src:   src,
		name:  name,
		faces: make(map[float64]font.Face),
	}
}

// LoadFontCache parses the .ttf or .otf file at path.
func LoadFontCache(path string) (*FontCache, error) {
	src, name, err := etxtfont.ParseFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load font %s: %w", path, err)
	}
	logger.Infof("loaded font %q from %s", name, path)
	return NewFontCache(src, name), nil
}

// DefaultFontCache uses the Go Regular font bundled with x/image.
func DefaultFontCache() (*FontCache, error) {
	src, name, err := etxtfont.ParseFromBytes(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse default font: %w", err)
	}
	return NewFontCache(src, name), nil
}

// Face returns the face for size, creating it on the first request.
func (c *FontCache) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadFontSize, size)
	}
	if face, ok := c.faces[size]; ok {
		return face, nil
	}

	face, err := opentype.NewFace(c.src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q size %v: %w", c.name, size, err)
	}
	logger.Debugf("new face %q size %v", c.name, size)
	c.faces[size] = face
	return face, nil
}

// Len is the number of cached faces.
func (c *FontCache) Len() int {
	return len(c.faces)
}

func (c *FontCache) Source() *sfnt.Font {
	return c.src
}

func (c *FontCache) Name() string {
	return c.name
}
