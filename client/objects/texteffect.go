package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is a short-lived text that drifts upward from where it was created
// and removes itself from its parent when its time to live runs out.
type TextEffect struct {
	*BaseObject

	text  string
	x     float64
	y     float64
	color color.Color
	ttl   int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the center of the text.
	X float64
	// Y is the y-coordinate of the baseline of the text.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in milliseconds.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:  opts.Text,
		x:     opts.X,
		y:     opts.Y,
		color: clr,
		ttl:   opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	factor := 60 / float64(ebiten.TPS())
	o.y -= 1 * factor
	o.ttl -= 1000 / ebiten.TPS()
	if o.ttl <= 0 {
		if err := o.BaseObject.RemoveFromParent(); err != nil {
			return fmt.Errorf("failed to remove text effect from parent: %w", err)
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.TTFSmallFont
	bounds, _ := font.BoundString(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.x-float64(bounds.Max.X>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, t, f, op)
}
