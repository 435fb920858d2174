package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LevelObject draws the walls bounding the play field.
type LevelObject struct {
	*BaseObject

	w, h      float32
	thickness float32
	clr       color.Color
}

type NewLevelObjectOptions struct {
	// W is the width of the play field.
	W float32
	// H is the height of the play field.
	H float32
	// Thickness is the thickness of the walls.
	Thickness float32
	// Color is the color of the walls.
	Color color.Color
	// ZIndex is the z-index of the level object.
	ZIndex int
}

func NewLevelObject(id string, opts NewLevelObjectOptions) *LevelObject {
	return &LevelObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		w:         opts.W,
		h:         opts.H,
		thickness: opts.Thickness,
		clr:       opts.Color,
	}
}

func (o *LevelObject) Draw(screen *ebiten.Image) {
	t := o.thickness
	vector.DrawFilledRect(screen, 0, 0, o.w, t, o.clr, false)
	vector.DrawFilledRect(screen, 0, o.h-t, o.w, t, o.clr, false)
	vector.DrawFilledRect(screen, 0, t, t, o.h-2*t, o.clr, false)
	vector.DrawFilledRect(screen, o.w-t, t, t, o.h-2*t, o.clr, false)
}
