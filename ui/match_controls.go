package ui

import (
	"bytes"
	"fmt"

	"github.com/automoto/kickoff/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MatchControls is the on-screen Pause and Restart button row shown in the
// bottom right corner during a match.
type MatchControls struct {
	UI *ebitenui.UI

	OnPause   func()
	OnRestart func()

	face text.Face
}

func NewMatchControls(onPause, onRestart func()) (*MatchControls, error) {
	mc := &MatchControls{
		OnPause:   onPause,
		OnRestart: onRestart,
	}
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load button font: %w", err)
	}
	mc.face = &text.GoTextFace{Source: fontSource, Size: 14}
	mc.buildUI()
	return mc, nil
}

func (mc *MatchControls) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(config.Buttons.Padding)),
			widget.RowLayoutOpts.Spacing(config.Buttons.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	row.AddChild(mc.button("Pause", func() {
		if mc.OnPause != nil {
			mc.OnPause()
		}
	}))
	row.AddChild(mc.button("Restart", func() {
		if mc.OnRestart != nil {
			mc.OnRestart()
		}
	}))
	rootContainer.AddChild(row)

	mc.UI = &ebitenui.UI{Container: rootContainer}
}

func (mc *MatchControls) button(label string, onClick func()) *widget.Button {
	c := config.Buttons
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(c.Width, c.Height)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(c.IdleColor),
			Hover:   image.NewNineSliceColor(c.HoverColor),
			Pressed: image.NewNineSliceColor(c.PressedColor),
		}),
		widget.ButtonOpts.Text(label, &mc.face, &widget.ButtonTextColor{
			Idle:    c.TextColor,
			Hover:   c.TextColor,
			Pressed: c.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mc *MatchControls) Update() {
	mc.UI.Update()
}

func (mc *MatchControls) Draw(screen *ebiten.Image) {
	mc.UI.Draw(screen)
}
