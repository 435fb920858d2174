package session

import (
	"github.com/cbodonnell/stardrift/pkg/kinematic"
	"github.com/google/uuid"
)

// State is the state of a session.
type State int

const (
	// StateUninitialized is the state before any gameplay scene has loaded.
	StateUninitialized State = iota
	// StatePlaying means the simulation is running and spawners are active.
	StatePlaying
	// StatePaused means the simulation is frozen and spawners are suspended.
	StatePaused
	// StateEnded is terminal for the current run.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateEnded:
		return "Ended"
	}
	return "Unknown"
}

// Scene names a scene the presentation layer can load.
type Scene int

const (
	SceneMenu Scene = iota
	SceneGameplay
	SceneEndGame
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "Menu"
	case SceneGameplay:
		return "Gameplay"
	case SceneEndGame:
		return "EndGame"
	}
	return "Unknown"
}

// EntityKind identifies the category of a spawned or contacted entity.
type EntityKind int

const (
	EntityKindUnknown EntityKind = iota
	EntityKindHazard
	EntityKindCollectible
)

func (k EntityKind) String() string {
	switch k {
	case EntityKindHazard:
		return "Hazard"
	case EntityKindCollectible:
		return "Collectible"
	}
	return "Unknown"
}

// SpawnRequest asks the spawn factory to instantiate an entity.
type SpawnRequest struct {
	ID       uuid.UUID
	Kind     EntityKind
	Position kinematic.Vector
}

// ContactEvent is reported when the ship overlaps another entity.
type ContactEvent struct {
	Kind     EntityKind
	EntityID uuid.UUID
	// Value is the score carried by a collectible.
	Value int
}

// Presentation is the part of the presentation layer driven by the session.
type Presentation interface {
	ShowPause()
	HidePause()
	SetScoreDisplay(value int)
	LoadScene(scene Scene)
}

// PersistenceStore holds the last score across scene changes.
type PersistenceStore interface {
	SetLastScore(value int)
	GetLastScore(defaultValue int) int
}

// RunRecorder is implemented by stores that keep the id of the run that
// produced the score.
type RunRecorder interface {
	RecordRun(runID uuid.UUID)
}

// SpawnFactory instantiates and removes entities on behalf of the session.
type SpawnFactory interface {
	Spawn(req SpawnRequest)
	Despawn(id uuid.UUID)
}
