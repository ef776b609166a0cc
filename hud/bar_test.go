package hud

import (
	"image/color"
	"testing"

	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/geom"
)

type drawCall struct {
	op         string
	x, y, w, h float64
	stroke     float64
	c          color.Color
}

type recordingSurface struct {
	calls []drawCall
}

func (s *recordingSurface) StrokeRect(x, y, w, h, stroke float64, c color.Color) {
	s.calls = append(s.calls, drawCall{"stroke", x, y, w, h, stroke, c})
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.calls = append(s.calls, drawCall{"fill", x, y, w, h, 0, c})
}

func TestPctBarRects(t *testing.T) {
	bar := PctBar{X: 10, Y: 20, Width: 200, Height: 40, Margin: 10}

	tests := []struct {
		name      string
		fraction  float64
		fillWidth float64
	}{
		{"empty", 0, 0},
		{"half", 0.5, 90},
		{"full", 1, 180},
		{"over", 1.5, 180},
		{"negative", -0.5, 0},
		{"truncated", 0.333, 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outer, inner := bar.Rects(tt.fraction)
			if outer != geom.NewRect(10, 20, 200, 40) {
				t.Fatalf("unexpected outer box %v", outer)
			}
			if inner.Min != geom.V(20, 30) {
				t.Fatalf("inner box not inset by the margin: %v", inner.Min)
			}
			if inner.Width() != tt.fillWidth {
				t.Fatalf("expected fill width %v, got %v", tt.fillWidth, inner.Width())
			}
			if inner.Height() != 20 {
				t.Fatalf("expected fill height 20, got %v", inner.Height())
			}
		})
	}
}

func TestPctBarClampMatchesFull(t *testing.T) {
	bar := PctBar{Width: 120, Height: 30, Margin: 5}
	_, full := bar.Rects(1)
	_, over := bar.Rects(1.5)
	if full != over {
		t.Fatalf("1.5 should draw like 1.0: %v vs %v", over, full)
	}
}

func TestPctBarDraw(t *testing.T) {
	green := color.RGBA{0, 255, 0, 255}
	bar := PctBar{X: 0, Y: 0, Width: 100, Height: 20, Margin: 4, Color: green}
	s := &recordingSurface{}

	bar.Draw(s, 0.25)

	if len(s.calls) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(s.calls))
	}
	border, fill := s.calls[0], s.calls[1]
	if border.op != "stroke" || border.w != 100 || border.h != 20 || border.stroke != BorderWidth {
		t.Errorf("unexpected border %+v", border)
	}
	if fill.op != "fill" || fill.x != 4 || fill.y != 4 || fill.w != 23 || fill.h != 12 {
		t.Errorf("unexpected fill %+v", fill)
	}
	if border.c != green || fill.c != green {
		t.Error("bar colour not applied")
	}
}

func TestDrawLoadingBar(t *testing.T) {
	cfg := config.New(&config.Config{Width: 800, Height: 600})
	s := &recordingSurface{}

	DrawLoadingBar(s, cfg, 50)

	border, fill := s.calls[0], s.calls[1]
	if border.x != 200 || border.y != 280 || border.w != 400 || border.h != 40 {
		t.Errorf("loading bar not centred: %+v", border)
	}
	if fill.x != 210 || fill.y != 290 || fill.w != 190 || fill.h != 20 {
		t.Errorf("unexpected fill %+v", fill)
	}
}
