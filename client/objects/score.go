package objects

import (
	"fmt"

	"github.com/cbodonnell/stardrift/client/fonts"
	"github.com/cbodonnell/stardrift/client/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ScoreObject draws the displayed score in the top left corner.
type ScoreObject struct {
	*BaseObject

	value func() int
}

func NewScoreObject(id string, value func() int, zIndex int) *ScoreObject {
	return &ScoreObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		value:      value,
	}
}

func (o *ScoreObject) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(24, 40)
	op.ColorScale.ScaleWithColor(ui.AccentColor)
	text.DrawWithOptions(screen, fmt.Sprintf("SCORE: %d", o.value()), fonts.TTFNormalFont, op)
}
