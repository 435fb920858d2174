package world

import (
	"math/rand"
	"testing"

	"github.com/cbodonnell/stardrift/pkg/collisions"
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/kinematic"
	"github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tick = 1.0 / 60

func newTestWorld(t *testing.T) (*World, queue.Queue) {
	t.Helper()
	q := queue.NewInMemoryQueue(16)
	w := New(NewWorldOptions{
		Contacts: q,
		Rand:     rand.New(rand.NewSource(1)),
	})
	return w, q
}

func readContacts(t *testing.T, q queue.Queue) []session.ContactEvent {
	t.Helper()
	items, err := q.ReadAllMessages()
	require.NoError(t, err)
	events := make([]session.ContactEvent, 0, len(items))
	for _, item := range items {
		event, ok := item.(session.ContactEvent)
		require.True(t, ok, "unexpected item %T", item)
		events = append(events, event)
	}
	return events
}

func TestWorld_hazardContact(t *testing.T) {
	w, q := newTestWorld(t)
	id := uuid.New()
	w.Spawn(session.SpawnRequest{ID: id, Kind: session.EntityKindHazard, Position: w.Ship().Position})

	w.Update(0.001, Input{})
	events := readContacts(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, session.EntityKindHazard, events[0].Kind)
	assert.Equal(t, id, events[0].EntityID)

	// still overlapping, but already reported
	w.Update(0.001, Input{})
	assert.Empty(t, readContacts(t, q))
}

func TestWorld_collectibleContact(t *testing.T) {
	w, q := newTestWorld(t)
	id := uuid.New()
	w.Spawn(session.SpawnRequest{ID: id, Kind: session.EntityKindCollectible, Position: w.Ship().Position})
	assert.Equal(t, 1, w.Count(KindCollectible))

	w.Update(tick, Input{})
	events := readContacts(t, q)
	require.Len(t, events, 1)
	assert.Equal(t, session.ContactEvent{Kind: session.EntityKindCollectible, EntityID: id, Value: constants.CollectibleValue}, events[0])

	w.Despawn(id)
	assert.Equal(t, 0, w.Count(KindCollectible))
	w.Despawn(id)
}

func TestWorld_laserDestroysHazard(t *testing.T) {
	w, q := newTestWorld(t)
	ship := w.Ship()
	w.Spawn(session.SpawnRequest{
		ID:       uuid.New(),
		Kind:     session.EntityKindHazard,
		Position: kinematic.Vector{X: ship.Position.X + 200, Y: ship.Position.Y - 4},
	})
	hazard := w.Entities()[0]
	hazard.Velocity = kinematic.Vector{}

	w.Update(tick, Input{Fire: true})
	assert.Equal(t, 1, w.Count(KindLaser))
	for i := 0; i < 60; i++ {
		w.Update(tick, Input{})
	}

	assert.Equal(t, 0, w.Count(KindHazard))
	assert.Equal(t, 0, w.Count(KindLaser))
	assert.Empty(t, readContacts(t, q))
}

func TestWorld_frozen(t *testing.T) {
	w, q := newTestWorld(t)
	start := w.Ship().Position
	w.Spawn(session.SpawnRequest{ID: uuid.New(), Kind: session.EntityKindHazard, Position: start})
	hazardStart := w.Entities()[0].Position

	w.Update(0, Input{MoveX: 1, Fire: true})
	w.Update(-1, Input{MoveY: 1})

	assert.Equal(t, start, w.Ship().Position)
	assert.Equal(t, hazardStart, w.Entities()[0].Position)
	assert.Equal(t, 0, w.Count(KindLaser))
	assert.Empty(t, readContacts(t, q))
}

func TestWorld_hazardLeavesField(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Spawn(session.SpawnRequest{
		ID:       uuid.New(),
		Kind:     session.EntityKindHazard,
		Position: kinematic.Vector{X: constants.HazardDespawnX + 1, Y: 16},
	})
	w.Update(0.1, Input{})
	assert.Equal(t, 0, w.Count(KindHazard))
}

func TestWorld_shipStopsAtWalls(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		check func(t *testing.T, position kinematic.Vector)
	}{
		{
			name:  "left",
			input: Input{MoveX: -1},
			check: func(t *testing.T, p kinematic.Vector) {
				assert.InDelta(t, collisions.WallThickness, p.X, 0.001)
			},
		},
		{
			name:  "right",
			input: Input{MoveX: 1},
			check: func(t *testing.T, p kinematic.Vector) {
				assert.InDelta(t, constants.ScreenWidth-collisions.WallThickness-constants.ShipWidth, p.X, 0.001)
			},
		},
		{
			name:  "up",
			input: Input{MoveY: -5},
			check: func(t *testing.T, p kinematic.Vector) {
				assert.InDelta(t, collisions.WallThickness, p.Y, 0.001)
			},
		},
		{
			name:  "down",
			input: Input{MoveY: 1},
			check: func(t *testing.T, p kinematic.Vector) {
				assert.InDelta(t, constants.ScreenHeight-collisions.WallThickness-constants.ShipHeight, p.Y, 0.001)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			for i := 0; i < 300; i++ {
				w.Update(tick, tt.input)
			}
			tt.check(t, w.Ship().Position)
		})
	}
}

func TestWorld_fireRate(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Update(0.1, Input{Fire: true})
	w.Update(0.1, Input{Fire: true})
	assert.Equal(t, 1, w.Count(KindLaser))

	w.Update(constants.ShipFireRate, Input{Fire: true})
	assert.Equal(t, 2, w.Count(KindLaser))
}

func TestWorld_laserExpires(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Update(tick, Input{Fire: true})
	require.Equal(t, 1, w.Count(KindLaser))
	w.Update(constants.LaserLifetime, Input{})
	assert.Equal(t, 0, w.Count(KindLaser))
}

func TestWorld_Reset(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Spawn(session.SpawnRequest{ID: uuid.New(), Kind: session.EntityKindCollectible, Position: kinematic.Vector{X: 300, Y: 200}})
	w.Spawn(session.SpawnRequest{ID: uuid.New(), Kind: session.EntityKindUnknown})
	w.Update(1, Input{MoveX: 1})
	assert.Len(t, w.Entities(), 1)

	w.Reset()
	assert.Empty(t, w.Entities())
	assert.Equal(t, kinematic.Vector{X: constants.ShipStartingX, Y: constants.ShipStartingY}, w.Ship().Position)
}
