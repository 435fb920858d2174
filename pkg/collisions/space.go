package collisions

import "github.com/solarlune/resolv"

const (
	CellSize = 16
	// WallThickness is the thickness of the walls bounding the play field.
	WallThickness = 16

	CollisionSpaceTagLevel = "level"
)

// NewCollisionSpace returns a space of the given size bounded by level walls on all four sides.
func NewCollisionSpace(width, height int) *resolv.Space {
	w, h, t := float64(width), float64(height), float64(WallThickness)
	space := resolv.NewSpace(width, height, CellSize, CellSize)
	space.Add(
		resolv.NewObject(0, 0, w, t, CollisionSpaceTagLevel),
		resolv.NewObject(0, h-t, w, t, CollisionSpaceTagLevel),
		resolv.NewObject(0, t, t, h-2*t, CollisionSpaceTagLevel),
		resolv.NewObject(w-t, t, t, h-2*t, CollisionSpaceTagLevel),
	)
	return space
}
