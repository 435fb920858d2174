// Package world is the headless simulation of the play field: the ship,
// drifting hazards, collectibles and lasers. It consumes spawn requests from
// the session and reports ship contacts as session.ContactEvent values.
package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/cbodonnell/stardrift/pkg/collisions"
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/kinematic"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// Input is the player intent for one tick.
type Input struct {
	// MoveX and MoveY are in [-1, 1].
	MoveX float64
	MoveY float64
	Fire  bool
}

type World struct {
	space    *resolv.Space
	ship     *Entity
	entities []*Entity
	contacts queue.Queue
	rand     *rand.Rand
	// fireCooldown is the scaled time until the ship can fire again.
	fireCooldown float64
}

type NewWorldOptions struct {
	// Contacts receives the contact events found during Update.
	Contacts queue.Queue
	// Rand drives hazard velocities. A time-seeded source is used when nil.
	Rand *rand.Rand
}

func New(opts NewWorldOptions) *World {
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w := &World{
		contacts: opts.Contacts,
		rand:     r,
	}
	w.Reset()
	return w
}

// Reset removes every entity and places a new ship at its starting position.
func (w *World) Reset() {
	w.space = collisions.NewCollisionSpace(int(constants.ScreenWidth), int(constants.ScreenHeight))
	w.entities = nil
	w.fireCooldown = 0
	w.ship = newEntity(uuid.New(), KindShip,
		kinematic.Vector{X: constants.ShipStartingX, Y: constants.ShipStartingY},
		kinematic.Vector{X: constants.ShipWidth, Y: constants.ShipHeight},
	)
	w.space.Add(w.ship.object)
}

func (w *World) Ship() *Entity {
	return w.ship
}

// Entities returns the live non-ship entities in spawn order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.entities))
	copy(out, w.entities)
	return out
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind Kind) int {
	if kind == KindShip {
		return 1
	}
	n := 0
	for _, e := range w.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Spawn implements session.SpawnFactory.
func (w *World) Spawn(req session.SpawnRequest) {
	switch req.Kind {
	case session.EntityKindHazard:
		e := newEntity(req.ID, KindHazard, req.Position, kinematic.Vector{X: constants.HazardSize, Y: constants.HazardSize})
		direction := kinematic.Vector{
			X: -0.5 - w.rand.Float64()*0.5,
			Y: w.rand.Float64() - 0.5,
		}.Normalize()
		speed := constants.HazardMinSpeed + w.rand.Float64()*(constants.HazardMaxSpeed-constants.HazardMinSpeed)
		e.Velocity = direction.Scale(speed)
		e.Rotation = w.rand.Float64() * 360
		e.Spin = constants.HazardRotationSpeed
		w.add(e)
	case session.EntityKindCollectible:
		e := newEntity(req.ID, KindCollectible, req.Position, kinematic.Vector{X: constants.CollectibleSize, Y: constants.CollectibleSize})
		e.Value = constants.CollectibleValue
		w.add(e)
	default:
		log.Warn("Ignoring spawn request of unknown kind %v", req.Kind)
	}
}

// Despawn implements session.SpawnFactory. Unknown ids are ignored.
func (w *World) Despawn(id uuid.UUID) {
	for _, e := range w.entities {
		if e.ID == id {
			w.remove(e)
			break
		}
	}
	w.sweep()
}

func (w *World) add(e *Entity) {
	w.entities = append(w.entities, e)
	w.space.Add(e.object)
}

func (w *World) remove(e *Entity) {
	if e.removed {
		return
	}
	e.removed = true
	w.space.Remove(e.object)
}

func (w *World) sweep() {
	live := w.entities[:0]
	for _, e := range w.entities {
		if !e.removed {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(w.entities); i++ {
		w.entities[i] = nil
	}
	w.entities = live
}

// Update advances the world by the scaled delta time. A non-positive delta
// freezes the world entirely: nothing moves, fires, or collides.
func (w *World) Update(deltaTime float64, input Input) {
	if deltaTime <= 0 {
		return
	}

	w.updateShip(deltaTime, input)

	for _, e := range w.entities {
		if e.removed {
			continue
		}
		e.Position = kinematic.Move(e.Position, e.Velocity, deltaTime)
		e.Rotation = math.Mod(e.Rotation+e.Spin*deltaTime, 360)
		e.Age += deltaTime
		e.syncObject()

		if e.Lifetime > 0 && e.Age >= e.Lifetime {
			w.remove(e)
			continue
		}
		if w.outOfBounds(e) {
			w.remove(e)
		}
	}

	w.resolveLaserHits()
	w.reportShipContacts()
	w.sweep()
}

// updateShip moves the ship against the level walls. Walls are only detected at
// the destination, so a single step must stay under the wall thickness.
func (w *World) updateShip(deltaTime float64, input Input) {
	ship := w.ship
	move := kinematic.Vector{X: clampUnit(input.MoveX), Y: clampUnit(input.MoveY)}
	ship.Velocity = move.Scale(constants.ShipSpeed)

	dx := ship.Velocity.X * deltaTime
	if collision := ship.object.Check(dx, 0, collisions.CollisionSpaceTagLevel); collision != nil {
		dx = collision.ContactWithObject(collision.Objects[0]).X
	}
	dy := ship.Velocity.Y * deltaTime
	if collision := ship.object.Check(0, dy, collisions.CollisionSpaceTagLevel); collision != nil {
		dy = collision.ContactWithObject(collision.Objects[0]).Y
	}
	ship.Position.X += dx
	ship.Position.Y += dy
	ship.syncObject()

	w.fireCooldown -= deltaTime
	if input.Fire && w.fireCooldown <= 0 {
		w.fireLaser()
		w.fireCooldown = constants.ShipFireRate
	}
}

func (w *World) fireLaser() {
	origin := kinematic.Vector{
		X: w.ship.Position.X + w.ship.Size.X,
		Y: w.ship.Position.Y + (w.ship.Size.Y-constants.LaserHeight)/2,
	}
	laser := newEntity(uuid.New(), KindLaser, origin, kinematic.Vector{X: constants.LaserWidth, Y: constants.LaserHeight})
	laser.Velocity = kinematic.Vector{X: constants.LaserSpeed}
	laser.Lifetime = constants.LaserLifetime
	w.add(laser)
}

func (w *World) outOfBounds(e *Entity) bool {
	switch e.Kind {
	case KindHazard:
		return e.Position.X < constants.HazardDespawnX
	case KindLaser:
		return e.Position.X > constants.ScreenWidth
	}
	return false
}

// resolveLaserHits removes every hazard touched by a laser along with the laser.
func (w *World) resolveLaserHits() {
	for _, laser := range w.entities {
		if laser.removed || laser.Kind != KindLaser {
			continue
		}
		collision := laser.object.Check(0, 0, CollisionSpaceTagHazard)
		if collision == nil {
			continue
		}
		for _, obj := range collision.Objects {
			hazard, ok := obj.Data.(*Entity)
			if !ok || hazard.removed || !laser.overlaps(hazard) {
				continue
			}
			w.remove(hazard)
			w.remove(laser)
			break
		}
	}
}

// reportShipContacts enqueues one contact event per entity the ship touches.
func (w *World) reportShipContacts() {
	collision := w.ship.object.Check(0, 0, CollisionSpaceTagHazard, CollisionSpaceTagCollectible)
	if collision == nil {
		return
	}
	touched := make(map[*Entity]struct{})
	for _, obj := range collision.Objects {
		e, ok := obj.Data.(*Entity)
		if !ok || e.removed || e.contacted || !w.ship.overlaps(e) {
			continue
		}
		touched[e] = struct{}{}
	}
	// Report in spawn order so results do not depend on the spatial hash.
	for _, e := range w.entities {
		if _, ok := touched[e]; !ok {
			continue
		}
		e.contacted = true
		event := session.ContactEvent{EntityID: e.ID, Value: e.Value}
		switch e.Kind {
		case KindHazard:
			event.Kind = session.EntityKindHazard
		case KindCollectible:
			event.Kind = session.EntityKindCollectible
		}
		w.report(event)
	}
}

func (w *World) report(event session.ContactEvent) {
	if w.contacts == nil {
		log.Warn("No contact queue, dropping %v contact", event.Kind)
		return
	}
	if err := w.contacts.Enqueue(event); err != nil {
		log.Error("Failed to enqueue %v contact: %v", event.Kind, err)
	}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}
