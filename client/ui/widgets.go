// Package ui builds the ebitenui widgets shared by the menus and the pause panel.
package ui

import (
	"image/color"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/image/font"
)

var (
	TextColor     = color.NRGBA{R: 254, G: 255, B: 255, A: 255}
	DisabledColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	AccentColor   = color.NRGBA{R: 255, G: 214, B: 90, A: 255}
)

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
}

// NewColumn returns a full screen root container and the vertical column
// centered in it that holds the widgets.
func NewColumn(background color.Color) (root *widget.Container, column *widget.Container) {
	opts := []widget.ContainerOpt{
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	}
	if background != nil {
		opts = append(opts, widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)))
	}
	root = widget.NewContainer(opts...)

	column = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(column)
	return root, column
}

func NewLabel(text string, face font.Face, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, clr),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func NewButton(text string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(text, fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     TextColor,
			Disabled: DisabledColor,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func NewUI(root *widget.Container) *ebitenui.UI {
	return &ebitenui.UI{
		Container: root,
	}
}
