package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextOverlayObject draws upper-cased text centered horizontally on the screen.
type TextOverlayObject struct {
	*BaseObject

	text    string
	face    font.Face
	clr     color.Color
	offsetY float64
}

type NewTextOverlayOptions struct {
	Text  string
	Face  font.Face
	Color color.Color
	// OffsetY moves the text down from the vertical center.
	OffsetY float64
	ZIndex  int
}

func NewTextOverlayObject(id string, opts NewTextOverlayOptions) *TextOverlayObject {
	face := opts.Face
	if face == nil {
		face = fonts.TTFLargeFont
	}
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		face:       face,
		clr:        clr,
		offsetY:    opts.OffsetY,
	}
}

func (o *TextOverlayObject) SetText(t string) {
	o.text = t
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	bounds, _ := font.BoundString(o.face, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-float64(bounds.Max.X>>6)/2, float64(screen.Bounds().Dy())/2-float64(bounds.Max.Y>>6)/2+o.offsetY)
	op.ColorScale.ScaleWithColor(o.clr)
	text.DrawWithOptions(screen, t, o.face, op)
}
