package tilequest

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/hud"
	"github.com/rhpo/tilequest/internal/logs"
	"github.com/rhpo/tilequest/levels"
	"github.com/rhpo/tilequest/play"
)

var logger = logs.Get("game")

const (
	playerSpeed = 4.0
	labelSize   = 24
)

type GameProps struct {
	Config   *config.Config
	Registry *levels.Registry
	// Levels are the discovered level IDs, played in order.
	Levels       []levels.ID
	Fonts        *hud.FontCache
	PlayerSprite *ebiten.Image
}

type Game struct {
	cfg     *config.Config
	session *play.Session
	fonts   *hud.FontCache
	label   *Label
	sprite  *ebiten.Image

	frame      int64
	lastUpdate time.Time
}

func NewGame(props *GameProps) (*Game, error) {
	if props == nil {
		props = &GameProps{}
	}

	cfg := props.Config
	if cfg == nil {
		cfg = config.New(nil)
	}
	fonts := props.Fonts
	if fonts == nil {
		var err error
		fonts, err = hud.DefaultFontCache()
		if err != nil {
			return nil, err
		}
	}

	g := &Game{
		cfg:     cfg,
		session: play.NewSession(cfg, props.Registry, props.Levels),
		fonts:   fonts,
		label:   NewLabel(fonts, labelSize, cfg.Colors.Default),
	}
	if s := props.PlayerSprite; s != nil {
		w, h := s.Bounds().Dx(), s.Bounds().Dy()
		if w == h {
			g.sprite = ScaleImage(s, float64(play.PlayerSize)/float64(w))
		} else {
			g.sprite = ResizeImage(s, play.PlayerSize, play.PlayerSize)
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	delta := 1.0 / 60.0
	if !g.lastUpdate.IsZero() {
		delta = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now
	g.frame++

	var dx, dy float64
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= playerSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += playerSpeed
	}

	g.session.Step(levels.Tick{Frame: g.frame, Time: now, Delta: delta, Millis: Now()}, dx, dy)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Colors.Background)

	switch g.session.Phase() {
	case play.Loading:
		g.drawLoading(screen)
	case play.Playing:
		g.drawLevel(screen)
	case play.Finished:
		g.label.Draw(screen, g.session.Dialogue(), g.cfg.Width/2, g.cfg.Height/2)
		DrawText(screen, g.fonts, &hud.TextProps{
			Text:    "Press Esc to quit",
			X:       16,
			Y:       float64(g.cfg.Height) - 32,
			Color:   g.cfg.Colors.Default,
			Opacity: hud.Opacity(160),
		})
	}

	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  frame %d  faces %d", ebiten.ActualTPS(), g.frame, g.fonts.Len()), 4, g.cfg.Height-16)
	}
}

func (g *Game) drawLoading(screen *ebiten.Image) {
	loading := g.session.Loading()
	hud.DrawLoadingBar(ImageSurface{screen}, g.cfg, loading)

	bar := hud.LoadingBar(g.cfg)
	g.label.Draw(screen, fmt.Sprintf("Loading %d%%", int(loading)), g.cfg.Width/2, int(bar.Y)-24)
}

func (g *Game) drawLevel(screen *ebiten.Image) {
	surface := ImageSurface{screen}
	st := g.session.Stage()
	colors := g.cfg.Colors

	for _, q := range st.Quests() {
		c := colors.Quest
		if q.Done {
			c = colors.QuestDone
		}
		surface.FillRect(q.Zone.Min.X, q.Zone.Min.Y, q.Zone.Width(), q.Zone.Height(), c)
		DrawText(screen, g.fonts, &hud.TextProps{Text: q.Name, X: q.Zone.Min.X, Y: q.Zone.Max.Y + 4, Size: 12, Color: c})
	}

	exit := st.Exit()
	surface.FillRect(exit.Min.X, exit.Min.Y, exit.Width(), exit.Height(), colors.Exit)

	player := st.Player()
	if g.sprite != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(player.Min.X, player.Min.Y)
		screen.DrawImage(g.sprite, op)
	} else {
		surface.FillRect(player.Min.X, player.Min.Y, player.Width(), player.Height(), colors.Player)
	}

	DrawText(screen, g.fonts, &hud.TextProps{Text: fmt.Sprintf("Level %d", st.Level()), X: 16, Y: 16, Size: 20, Color: colors.Default})
	DrawText(screen, g.fonts, &hud.TextProps{
		Text:    fmt.Sprintf("%d / %d", g.session.Index()+1, g.session.Len()),
		X:       16,
		Y:       16,
		Color:   colors.Default,
		Opacity: hud.Opacity(160),
		FromEnd: true,
	})
	DrawText(screen, g.fonts, &hud.TextProps{Text: g.session.Dialogue(), X: 16, Y: float64(g.cfg.Height) - 48, Size: 18, Color: colors.Dialogue})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
