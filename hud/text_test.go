package hud

import (
	"image/color"
	"testing"

	"github.com/rhpo/tilequest/config"
)

func TestTextPropsStyle(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}

	tests := []struct {
		name  string
		props *TextProps
		ok    bool
		size  float64
		clr   color.NRGBA
	}{
		{"nil props", nil, false, 0, color.NRGBA{}},
		{"empty text", &TextProps{Size: 20}, false, 0, color.NRGBA{}},
		{"transparent", &TextProps{Text: "hi", Opacity: Opacity(0)}, false, 0, color.NRGBA{}},
		{"defaults", &TextProps{Text: "hi"}, true, config.DefaultFontSize, color.NRGBA{255, 255, 255, 255}},
		{"opaque colour", &TextProps{Text: "hi", Size: 20, Color: red, Opacity: Opacity(255)}, true, 20, red},
		{"half opacity", &TextProps{Text: "hi", Color: red, Opacity: Opacity(128)}, true, config.DefaultFontSize, color.NRGBA{R: 255, A: 128}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, clr, ok := tt.props.Style()
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if size != tt.size {
				t.Fatalf("expected size %v, got %v", tt.size, size)
			}
			if got := color.NRGBAModel.Convert(clr).(color.NRGBA); got != tt.clr {
				t.Fatalf("expected colour %v, got %v", tt.clr, got)
			}
		})
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		name  string
		in    color.Color
		alpha uint8
		want  uint8
	}{
		{"full", color.NRGBA{G: 200, A: 255}, 255, 255},
		{"none", color.NRGBA{G: 200, A: 255}, 0, 0},
		{"half", color.NRGBA{G: 200, A: 255}, 160, 160},
		{"already translucent", color.NRGBA{G: 200, A: 100}, 51, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithAlpha(tt.in, tt.alpha).(color.NRGBA)
			if got.A != tt.want {
				t.Fatalf("expected alpha %d, got %d", tt.want, got.A)
			}
			if got.G != 200 {
				t.Fatalf("colour channel changed: %v", got)
			}
		})
	}
}
