package world

import (
	"github.com/cbodonnell/stardrift/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Collision space tags.
const (
	CollisionSpaceTagShip        = "ship"
	CollisionSpaceTagHazard      = "hazard"
	CollisionSpaceTagCollectible = "collectible"
	CollisionSpaceTagLaser       = "laser"
)

type Kind int

const (
	KindShip Kind = iota
	KindHazard
	KindCollectible
	KindLaser
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "Ship"
	case KindHazard:
		return "Hazard"
	case KindCollectible:
		return "Collectible"
	case KindLaser:
		return "Laser"
	}
	return "Unknown"
}

func (k Kind) tag() string {
	switch k {
	case KindShip:
		return CollisionSpaceTagShip
	case KindHazard:
		return CollisionSpaceTagHazard
	case KindCollectible:
		return CollisionSpaceTagCollectible
	case KindLaser:
		return CollisionSpaceTagLaser
	}
	return ""
}

// Entity is a movable object of the world.
type Entity struct {
	ID       uuid.UUID
	Kind     Kind
	Position kinematic.Vector
	Velocity kinematic.Vector
	Size     kinematic.Vector
	// Rotation is in degrees.
	Rotation float64
	// Spin is the rotation speed in degrees per second.
	Spin float64
	// Age is the scaled time the entity has existed.
	Age float64
	// Lifetime is the age at which the entity removes itself. Zero means unlimited.
	Lifetime float64
	// Value is the score awarded by a collectible.
	Value int

	// contacted is set once the ship touched the entity, so a contact is reported once.
	contacted bool
	removed   bool
	object    *resolv.Object
}

func newEntity(id uuid.UUID, kind Kind, position kinematic.Vector, size kinematic.Vector) *Entity {
	e := &Entity{
		ID:       id,
		Kind:     kind,
		Position: position,
		Size:     size,
		object:   resolv.NewObject(position.X, position.Y, size.X, size.Y, kind.tag()),
	}
	e.object.Data = e
	return e
}

// Center returns the center point of the entity.
func (e *Entity) Center() kinematic.Vector {
	return kinematic.Vector{X: e.Position.X + e.Size.X/2, Y: e.Position.Y + e.Size.Y/2}
}

func (e *Entity) syncObject() {
	e.object.Position.X = e.Position.X
	e.object.Position.Y = e.Position.Y
	e.object.Update()
}

// overlaps reports whether the bounding boxes of the two entities intersect.
func (e *Entity) overlaps(other *Entity) bool {
	return e.Position.X < other.Position.X+other.Size.X &&
		other.Position.X < e.Position.X+e.Size.X &&
		e.Position.Y < other.Position.Y+other.Size.Y &&
		other.Position.Y < e.Position.Y+e.Size.Y
}
