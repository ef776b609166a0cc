package main

import (
	"flag"
	"os"

	"github.com/rhpo/tilequest"
	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/hud"
	"github.com/rhpo/tilequest/internal/logs"
	"github.com/rhpo/tilequest/levels"
	"github.com/rhpo/tilequest/story"
)

func main() {
	var (
		dataDir  = flag.String("data", config.DefaultDataDir, "directory holding levels/<id>.csv")
		fontPath = flag.String("font", "", "path to a .ttf or .otf font (default: Go Regular)")
		debug    = flag.Bool("debug", false, "enable debug logging and overlay")
		width    = flag.Int("width", config.DefaultWidth, "screen width")
		height   = flag.Int("height", config.DefaultHeight, "screen height")
	)
	flag.Parse()

	cfg := config.New(&config.Config{
		Width:    *width,
		Height:   *height,
		Debug:    *debug,
		DataDir:  *dataDir,
		FontPath: *fontPath,
	})
	logs.SetDebug(cfg.Debug)
	logger := logs.Get("main")

	ids, err := levels.Discover(cfg.LevelsDir())
	if err != nil {
		logger.Fatalf("%v", err)
	}

	var fonts *hud.FontCache
	if cfg.FontPath != "" {
		fonts, err = hud.LoadFontCache(cfg.FontPath)
	} else {
		fonts, err = hud.DefaultFontCache()
	}
	if err != nil {
		logger.Fatalf("%v", err)
	}

	registry := levels.NewRegistry(story.Handlers())
	logger.Debugf("levels with custom logic: %v", registry.IDs())

	sprite, err := tilequest.LoadImageFromFS(os.DirFS(cfg.DataDir), "player.png")
	if err != nil {
		logger.Debugf("no player sprite, drawing a box: %v", err)
	}

	game, err := tilequest.NewGame(&tilequest.GameProps{
		Config:       cfg,
		Registry:     registry,
		Levels:       ids,
		Fonts:        fonts,
		PlayerSprite: sprite,
	})
	if err != nil {
		logger.Fatalf("%v", err)
	}

	if err := game.Run(); err != nil {
		logger.Fatalf("%v", err)
	}
}
