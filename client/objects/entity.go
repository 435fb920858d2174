package objects

import (
	"image/color"
	"math"

	"github.com/cbodonnell/stardrift/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	shipColor        = color.NRGBA{R: 120, G: 200, B: 255, A: 255}
	thrusterColor    = color.NRGBA{R: 255, G: 140, B: 40, A: 255}
	hazardColor      = color.NRGBA{R: 150, G: 120, B: 100, A: 255}
	hazardEdgeColor  = color.NRGBA{R: 90, G: 70, B: 60, A: 255}
	collectibleColor = color.NRGBA{R: 255, G: 214, B: 90, A: 255}
	laserColor       = color.NRGBA{R: 255, G: 60, B: 60, A: 255}
)

// EntityObject draws a world entity. It reads the entity on every draw, so it
// follows the simulation without copying state.
type EntityObject struct {
	*BaseObject

	entity *world.Entity
	frame  int
}

func NewEntityObject(id string, entity *world.Entity) *EntityObject {
	zIndex := 10
	switch entity.Kind {
	case world.KindShip:
		zIndex = 30
	case world.KindLaser:
		zIndex = 20
	}
	return &EntityObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		entity:     entity,
	}
}

func (o *EntityObject) Update() error {
	o.frame++
	return nil
}

func (o *EntityObject) Draw(screen *ebiten.Image) {
	e := o.entity
	x, y := float32(e.Position.X), float32(e.Position.Y)
	w, h := float32(e.Size.X), float32(e.Size.Y)
	switch e.Kind {
	case world.KindShip:
		vector.StrokeLine(screen, x, y, x+w, y+h/2, 2, shipColor, true)
		vector.StrokeLine(screen, x+w, y+h/2, x, y+h, 2, shipColor, true)
		vector.StrokeLine(screen, x, y+h, x, y, 2, shipColor, true)
		if e.Velocity.X > 0 || o.frame/4%2 == 0 {
			vector.DrawFilledRect(screen, x-6, y+h/2-3, 5, 6, thrusterColor, false)
		}
	case world.KindHazard:
		cx, cy, r := x+w/2, y+h/2, w/2
		vector.DrawFilledCircle(screen, cx, cy, r, hazardColor, true)
		angle := e.Rotation * math.Pi / 180
		dx, dy := float32(math.Cos(angle))*r, float32(math.Sin(angle))*r
		vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 3, hazardEdgeColor, true)
	case world.KindCollectible:
		cx, cy := x+w/2, y+h/2
		vector.StrokeLine(screen, x, cy, x+w, cy, 2, collectibleColor, true)
		vector.StrokeLine(screen, cx, y, cx, y+h, 2, collectibleColor, true)
		vector.DrawFilledCircle(screen, cx, cy, w/5, collectibleColor, true)
	case world.KindLaser:
		vector.DrawFilledRect(screen, x, y, w, h, laserColor, false)
	}
}
