package session

import (
	"math/rand"

	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/kinematic"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/google/uuid"
)

// SpawnArea describes where entities appear.
type SpawnArea struct {
	// HazardX is the fixed edge coordinate hazards spawn at.
	HazardX float64
	// HazardMinY and HazardMaxY bound the randomized perpendicular offset.
	HazardMinY float64
	HazardMaxY float64
	// CollectibleMin and CollectibleMax bound the collectible rectangle.
	CollectibleMin kinematic.Vector
	CollectibleMax kinematic.Vector
}

func DefaultSpawnArea() SpawnArea {
	return SpawnArea{
		HazardX:        constants.HazardSpawnX,
		HazardMinY:     constants.HazardMinY,
		HazardMaxY:     constants.HazardMaxY,
		CollectibleMin: kinematic.Vector{X: constants.CollectibleMinX, Y: constants.CollectibleMinY},
		CollectibleMax: kinematic.Vector{X: constants.CollectibleMaxX, Y: constants.CollectibleMaxY},
	}
}

// SpawnScheduler issues hazard and collectible spawn requests on two
// independent timers.
type SpawnScheduler struct {
	hazardTimer      *Timer
	collectibleTimer *Timer
	area             SpawnArea
	rng              *rand.Rand
	factory          SpawnFactory

	hazardCount      int
	collectibleCount int
}

type NewSpawnSchedulerOptions struct {
	HazardInitialDelay      float64
	HazardInterval          float64
	CollectibleInitialDelay float64
	CollectibleInterval     float64
	Area                    SpawnArea
	// Rand is the source of spawn positions. A time seeded source is used when nil.
	Rand    *rand.Rand
	Factory SpawnFactory
}

func NewSpawnScheduler(opts NewSpawnSchedulerOptions) *SpawnScheduler {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &SpawnScheduler{
		area:    opts.Area,
		rng:     rng,
		factory: opts.Factory,
	}
	s.hazardTimer = NewTimer(opts.HazardInitialDelay, opts.HazardInterval, s.spawnHazard)
	s.collectibleTimer = NewTimer(opts.CollectibleInitialDelay, opts.CollectibleInterval, s.spawnCollectible)
	return s
}

// Start arms both timers from zero elapsed time.
func (s *SpawnScheduler) Start() {
	s.hazardTimer.Start()
	s.collectibleTimer.Start()
}

// Stop cancels both timers and discards their progress.
func (s *SpawnScheduler) Stop() {
	s.hazardTimer.Stop()
	s.collectibleTimer.Stop()
}

func (s *SpawnScheduler) Running() bool {
	return s.hazardTimer.Armed() || s.collectibleTimer.Armed()
}

// Advance moves both timers forward by the scaled time dt.
func (s *SpawnScheduler) Advance(dt float64) {
	s.hazardTimer.Advance(dt)
	s.collectibleTimer.Advance(dt)
}

// SpawnCount returns the number of requests issued since creation.
func (s *SpawnScheduler) SpawnCount() (hazards int, collectibles int) {
	return s.hazardCount, s.collectibleCount
}

func (s *SpawnScheduler) spawnHazard() {
	s.hazardCount++
	s.emit(SpawnRequest{
		ID:   uuid.New(),
		Kind: EntityKindHazard,
		Position: kinematic.Vector{
			X: s.area.HazardX,
			Y: s.randomBetween(s.area.HazardMinY, s.area.HazardMaxY),
		},
	})
}

func (s *SpawnScheduler) spawnCollectible() {
	s.collectibleCount++
	s.emit(SpawnRequest{
		ID:   uuid.New(),
		Kind: EntityKindCollectible,
		Position: kinematic.Vector{
			X: s.randomBetween(s.area.CollectibleMin.X, s.area.CollectibleMax.X),
			Y: s.randomBetween(s.area.CollectibleMin.Y, s.area.CollectibleMax.Y),
		},
	})
}

func (s *SpawnScheduler) emit(req SpawnRequest) {
	if s.factory == nil {
		log.Warn("No spawn factory bound, dropping %s spawn request", req.Kind)
		return
	}
	log.Trace("Spawning %s %s at (%0.1f, %0.1f)", req.Kind, req.ID, req.Position.X, req.Position.Y)
	s.factory.Spawn(req)
}

func (s *SpawnScheduler) randomBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}
