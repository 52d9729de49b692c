package etoalium

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	titleSize   = 24
	captionSize = 18
)

// fonts holds the faces used by the page chrome.
type fonts struct {
	title   *text.GoTextFace
	caption *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	return &fonts{
		title:   &text.GoTextFace{Source: bold, Size: titleSize},
		caption: &text.GoTextFace{Source: regular, Size: captionSize},
	}, nil
}

// drawText draws s with its top-left (or top-center when centered) at x, y.
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, col Color, centered bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.toRGBA())
	if centered {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, face, op)
}
