package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText draws s anchored at (x, y). h and v pick which part of the text
// box sits on the anchor.
func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, h, v text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = h
	op.SecondaryAlign = v
	text.Draw(screen, s, face, op)
}
