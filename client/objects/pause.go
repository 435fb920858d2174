package objects

import (
	"image/color"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/cbodonnell/stardrift/client/ui"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseObject is the pause panel. It only takes input and draws while visible.
type PauseObject struct {
	*BaseObject

	visible func() bool
	ui      *ebitenui.UI
}

type NewPauseObjectOptions struct {
	// Visible reports whether the panel is shown.
	Visible  func() bool
	OnResume func()
	OnMenu   func()
	ZIndex   int
}

func NewPauseObject(id string, opts NewPauseObjectOptions) *PauseObject {
	root, column := ui.NewColumn(color.NRGBA{R: 0, G: 0, B: 0, A: 160})
	column.AddChild(ui.NewLabel("PAUSED", fonts.TTFLargeFont, ui.TextColor))
	column.AddChild(ui.NewButton("Resume", opts.OnResume))
	column.AddChild(ui.NewButton("Main Menu", opts.OnMenu))

	return &PauseObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		visible:    opts.Visible,
		ui:         ui.NewUI(root),
	}
}

func (o *PauseObject) Update() error {
	if !o.visible() {
		return nil
	}
	o.ui.Update()
	return nil
}

func (o *PauseObject) Draw(screen *ebiten.Image) {
	if !o.visible() {
		return
	}
	o.ui.Draw(screen)
}
