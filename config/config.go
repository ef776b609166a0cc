// Package config holds the game-wide settings: screen size, data
// locations, loading bar geometry and the colour palette.
package config

import (
	"image/color"
	"path/filepath"
)

const (
	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultTitle    = "Tile Quest"
	DefaultDataDir  = "data"
	DefaultFontSize = 14
)

type Palette struct {
	Background color.Color
	Default    color.Color
	Dialogue   color.Color
	LoadingBar color.Color
	Player     color.Color
	Quest      color.Color
	QuestDone  color.Color
	Exit       color.Color
}

type LoadingBarConfig struct {
	Width  float64
	Height float64
	Margin float64
	Color  color.Color
}

type Config struct {
	Width  int
	Height int
	Title  string
	Debug  bool

	// DataDir contains levels/<id>.csv and optional sprites.
	DataDir string
	// FontPath points to a .ttf/.otf file; empty means the bundled Go font.
	FontPath string

	LoadingBar LoadingBarConfig
	Colors     Palette
}

// New returns a copy of props with every zero field replaced by its default.
func New(props *Config) *Config {
	cfg := Config{}
	if props != nil {
		cfg = *props
	}

	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}

	def := DefaultPalette()
	if cfg.Colors.Background == nil {
		cfg.Colors.Background = def.Background
	}
	if cfg.Colors.Default == nil {
		cfg.Colors.Default = def.Default
	}
	if cfg.Colors.Dialogue == nil {
		cfg.Colors.Dialogue = def.Dialogue
	}
	if cfg.Colors.LoadingBar == nil {
		cfg.Colors.LoadingBar = def.LoadingBar
	}
	if cfg.Colors.Player == nil {
		cfg.Colors.Player = def.Player
	}
	if cfg.Colors.Quest == nil {
		cfg.Colors.Quest = def.Quest
	}
	if cfg.Colors.QuestDone == nil {
		cfg.Colors.QuestDone = def.QuestDone
	}
	if cfg.Colors.Exit == nil {
		cfg.Colors.Exit = def.Exit
	}

	if cfg.LoadingBar.Width == 0 {
		cfg.LoadingBar.Width = 400
	}
	if cfg.LoadingBar.Height == 0 {
		cfg.LoadingBar.Height = 40
	}
	if cfg.LoadingBar.Margin == 0 {
		cfg.LoadingBar.Margin = 10
	}
	if cfg.LoadingBar.Color == nil {
		cfg.LoadingBar.Color = cfg.Colors.LoadingBar
	}

	return &cfg
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{0x1d, 0x1f, 0x2b, 0xff},
		Default:    color.RGBA{0xff, 0xff, 0xff, 0xff},
		Dialogue:   color.RGBA{0xff, 0xe0, 0x8a, 0xff},
		LoadingBar: color.RGBA{0x6b, 0xcf, 0x6b, 0xff},
		Player:     color.RGBA{0x4e, 0xcd, 0xc4, 0xff},
		Quest:      color.RGBA{0xff, 0x6b, 0x6b, 0xff},
		QuestDone:  color.RGBA{0x6b, 0x8c, 0x42, 0xff},
		Exit:       color.RGBA{0xf7, 0xd0, 0x4a, 0xff},
	}
}

// LevelsDir is where the per-level CSV files live.
func (c *Config) LevelsDir() string {
	return filepath.Join(c.DataDir, "levels")
}
