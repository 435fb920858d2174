package session_test

import (
	"math/rand"
	"testing"

	mocks "github.com/cbodonnell/stardrift/mocks/github.com/cbodonnell/stardrift/pkg/session"
	queuemocks "github.com/cbodonnell/stardrift/mocks/github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/cbodonnell/stardrift/pkg/clock"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/cbodonnell/stardrift/pkg/state"
	"github.com/cbodonnell/stardrift/pkg/workers"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tickSeconds = 1.0 / 60.0

// recordingFactory records spawn and despawn requests.
type recordingFactory struct {
	spawned   []session.SpawnRequest
	despawned []uuid.UUID
}

func (f *recordingFactory) Spawn(req session.SpawnRequest) {
	f.spawned = append(f.spawned, req)
}

func (f *recordingFactory) Despawn(id uuid.UUID) {
	f.despawned = append(f.despawned, id)
}

// newLenientPresentation accepts any presentation call so tests can assert on
// the calls they care about.
func newLenientPresentation(t *testing.T) *mocks.Presentation {
	p := mocks.NewPresentation(t)
	p.EXPECT().ShowPause().Maybe()
	p.EXPECT().HidePause().Maybe()
	p.EXPECT().SetScoreDisplay(mock.Anything).Maybe()
	p.EXPECT().LoadScene(mock.Anything).Maybe()
	return p
}

type fixture struct {
	registry     *session.Registry
	controller   *session.Controller
	clock        *clock.Clock
	presentation *mocks.Presentation
	store        session.PersistenceStore
	factory      *recordingFactory
}

func newFixture(t *testing.T, config session.Config, store session.PersistenceStore) *fixture {
	f := &fixture{
		registry:     session.NewRegistry(),
		clock:        clock.New(),
		presentation: newLenientPresentation(t),
		store:        store,
		factory:      &recordingFactory{},
	}
	f.controller = f.registry.NewController(session.NewControllerOptions{
		Config:       config,
		SpawnArea:    session.DefaultSpawnArea(),
		Clock:        f.clock,
		Presentation: f.presentation,
		Store:        store,
		Factory:      f.factory,
		Rand:         rand.New(rand.NewSource(1)),
	})
	return f
}

// tick runs n frames of the game loop.
func (f *fixture) tick(n int) {
	for i := 0; i < n; i++ {
		f.controller.Update(f.clock.Tick(tickSeconds))
	}
}

func TestController_OnGameplaySceneLoaded_resetsScore(t *testing.T) {
	tests := []struct {
		name         string
		initialScore int
		loads        int
	}{
		{name: "zero initial score", initialScore: 0, loads: 3},
		{name: "non-zero initial score", initialScore: 25, loads: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := session.DefaultConfig()
			config.InitialScore = tt.initialScore
			f := newFixture(t, config, state.NewInMemoryScoreStore(nil))

			for i := 0; i < tt.loads; i++ {
				f.controller.OnGameplaySceneLoaded()
				assert.Equal(t, tt.initialScore, f.controller.Score())
				assert.Equal(t, session.StatePlaying, f.controller.State())
				assert.Equal(t, 1.0, f.clock.TimeScale())
				f.controller.RegisterCollectibleContact(10, uuid.Nil)
			}
			f.presentation.AssertCalled(t, "SetScoreDisplay", tt.initialScore)
			f.presentation.AssertNumberOfCalls(t, "HidePause", tt.loads)
		})
	}
}

func TestController_OnGameplaySceneLoaded_newRunID(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.OnGameplaySceneLoaded()
	first := f.controller.RunID()
	f.controller.OnGameplaySceneLoaded()
	assert.NotEqual(t, uuid.Nil, first)
	assert.NotEqual(t, first, f.controller.RunID())
}

func TestController_TogglePause(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterCollectibleContact(10, uuid.Nil)

	f.controller.TogglePause()
	assert.Equal(t, session.StatePaused, f.controller.State())
	assert.Equal(t, 0.0, f.clock.TimeScale())
	f.presentation.AssertNumberOfCalls(t, "ShowPause", 1)

	f.controller.TogglePause()
	assert.Equal(t, session.StatePlaying, f.controller.State())
	assert.Equal(t, 1.0, f.clock.TimeScale())
	assert.Equal(t, 10, f.controller.Score())
	// once on load, once on resume
	f.presentation.AssertNumberOfCalls(t, "HidePause", 2)
}

func TestController_TogglePause_ignored(t *testing.T) {
	store := mocks.NewPersistenceStore(t)
	store.EXPECT().SetLastScore(0).Once()
	f := newFixture(t, session.DefaultConfig(), store)

	f.controller.TogglePause()
	assert.Equal(t, session.StateUninitialized, f.controller.State())

	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterHazardContact()
	f.controller.TogglePause()
	assert.Equal(t, session.StateEnded, f.controller.State())
	assert.Equal(t, 0.0, f.clock.TimeScale())
	f.presentation.AssertNotCalled(t, "ShowPause")
}

func TestController_noSpawnWhilePaused(t *testing.T) {
	config := session.DefaultConfig()
	config.HazardInitialDelay = 0.5
	config.HazardSpawnInterval = 1
	config.CollectibleInitialDelay = 0.5
	config.CollectibleSpawnInterval = 1
	f := newFixture(t, config, nil)
	f.controller.OnGameplaySceneLoaded()

	// 0.25s into the first interval
	f.tick(15)
	require.Empty(t, f.factory.spawned)

	f.controller.TogglePause()
	for i := 0; i < 600; i++ {
		before := len(f.factory.spawned)
		frame := f.clock.Tick(tickSeconds)
		assert.Equal(t, 0.0, frame.Scaled)
		f.controller.Update(frame)
		assert.Equal(t, before, len(f.factory.spawned))
	}
	assert.Empty(t, f.factory.spawned)

	// progress made before the pause is kept: 0.25s remain
	f.controller.TogglePause()
	f.tick(14)
	assert.Empty(t, f.factory.spawned)
	f.tick(2)
	assert.Len(t, f.factory.spawned, 2)
}

func TestController_spawning(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.OnGameplaySceneLoaded()

	// 6 seconds: hazards at 1, 3, 5 and collectibles at 3
	f.tick(361)

	hazards, collectibles := f.controller.Spawner().SpawnCount()
	assert.Equal(t, 3, hazards)
	assert.Equal(t, 1, collectibles)

	area := session.DefaultSpawnArea()
	for _, req := range f.factory.spawned {
		switch req.Kind {
		case session.EntityKindHazard:
			assert.Equal(t, area.HazardX, req.Position.X)
			assert.GreaterOrEqual(t, req.Position.Y, area.HazardMinY)
			assert.LessOrEqual(t, req.Position.Y, area.HazardMaxY)
		case session.EntityKindCollectible:
			assert.GreaterOrEqual(t, req.Position.X, area.CollectibleMin.X)
			assert.LessOrEqual(t, req.Position.X, area.CollectibleMax.X)
			assert.GreaterOrEqual(t, req.Position.Y, area.CollectibleMin.Y)
			assert.LessOrEqual(t, req.Position.Y, area.CollectibleMax.Y)
		default:
			t.Fatalf("unexpected spawn kind %s", req.Kind)
		}
		assert.NotEqual(t, uuid.Nil, req.ID)
	}
}

func TestController_stopsSpawningOutsidePlaying(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), state.NewInMemoryScoreStore(nil))
	f.controller.OnGameplaySceneLoaded()
	f.tick(30)
	f.controller.OnNonGameplaySceneLoaded()
	assert.False(t, f.controller.Spawner().Running())
	f.tick(600)
	assert.Empty(t, f.factory.spawned)

	// a new session restarts the timers from zero
	f.controller.OnGameplaySceneLoaded()
	f.tick(59)
	assert.Empty(t, f.factory.spawned)
	f.tick(2)
	assert.Len(t, f.factory.spawned, 1)

	f.controller.RegisterHazardContact()
	assert.False(t, f.controller.Spawner().Running())
	f.tick(600)
	assert.Len(t, f.factory.spawned, 1)
}

func TestController_RegisterHazardContact_onlyWhilePlaying(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *session.Controller)
		want  session.State
	}{
		{
			name:  "uninitialized",
			setup: func(c *session.Controller) {},
			want:  session.StateUninitialized,
		},
		{
			name: "paused",
			setup: func(c *session.Controller) {
				c.OnGameplaySceneLoaded()
				c.TogglePause()
			},
			want: session.StatePaused,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewPersistenceStore(t)
			f := newFixture(t, session.DefaultConfig(), store)
			tt.setup(f.controller)

			f.controller.RegisterHazardContact()

			assert.Equal(t, tt.want, f.controller.State())
			store.AssertNotCalled(t, "SetLastScore", mock.Anything)
			f.presentation.AssertNotCalled(t, "LoadScene", session.SceneEndGame)
		})
	}
}

func TestController_RegisterHazardContact_ended(t *testing.T) {
	store := mocks.NewPersistenceStore(t)
	store.EXPECT().SetLastScore(20).Once()
	f := newFixture(t, session.DefaultConfig(), store)
	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterCollectibleContact(20, uuid.Nil)

	f.controller.RegisterHazardContact()
	f.controller.RegisterHazardContact()

	assert.Equal(t, session.StateEnded, f.controller.State())
	f.presentation.AssertNumberOfCalls(t, "LoadScene", 1)
	f.presentation.AssertCalled(t, "LoadScene", session.SceneEndGame)
}

func TestController_persistenceRoundTrip(t *testing.T) {
	store := state.NewInMemoryScoreStore(nil)
	f := newFixture(t, session.DefaultConfig(), store)
	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterCollectibleContact(42, uuid.Nil)
	f.controller.RegisterHazardContact()

	assert.Equal(t, 42, store.GetLastScore(0))
}

func TestController_persistsRunID(t *testing.T) {
	saveScoreChan := make(chan workers.SaveScoreRequest, 1)
	f := newFixture(t, session.DefaultConfig(), state.NewInMemoryScoreStore(saveScoreChan))
	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterHazardContact()

	require.Len(t, saveScoreChan, 1)
	saveRequest := <-saveScoreChan
	assert.Equal(t, f.controller.RunID(), saveRequest.RunID)
	assert.Equal(t, 0, saveRequest.Score)
}

func TestController_scenario(t *testing.T) {
	store := state.NewInMemoryScoreStore(nil)
	f := newFixture(t, session.DefaultConfig(), store)
	require.Equal(t, session.StateUninitialized, f.controller.State())

	f.controller.OnGameplaySceneLoaded()
	assert.Equal(t, session.StatePlaying, f.controller.State())
	assert.Equal(t, 0, f.controller.Score())

	stars := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range stars {
		f.controller.RegisterCollectibleContact(10, id)
	}
	assert.Equal(t, 30, f.controller.Score())
	assert.Equal(t, stars, f.factory.despawned)

	f.controller.RegisterHazardContact()
	assert.Equal(t, session.StateEnded, f.controller.State())
	assert.Equal(t, 30, store.GetLastScore(0))
	assert.Equal(t, 0.0, f.clock.TimeScale())

	// the end game scene load hands time back to the menus
	f.controller.OnNonGameplaySceneLoaded()
	assert.Equal(t, session.StateUninitialized, f.controller.State())
	assert.Equal(t, 1.0, f.clock.TimeScale())
	assert.Equal(t, 30, store.GetLastScore(0))
}

func TestController_RegisterCollectibleContact_ignored(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.RegisterCollectibleContact(10, uuid.New())
	assert.Equal(t, 0, f.controller.Score())

	f.controller.OnGameplaySceneLoaded()
	f.controller.TogglePause()
	f.controller.RegisterCollectibleContact(10, uuid.New())
	assert.Equal(t, 0, f.controller.Score())
	assert.Empty(t, f.factory.despawned)
}

func TestController_ReturnToMenu(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.OnGameplaySceneLoaded()

	f.controller.ReturnToMenu()
	assert.Equal(t, session.StatePlaying, f.controller.State(), "only valid while paused")

	f.controller.TogglePause()
	f.controller.ReturnToMenu()
	assert.Equal(t, session.StateUninitialized, f.controller.State())
	assert.Equal(t, 1.0, f.clock.TimeScale())
	assert.False(t, f.controller.Spawner().Running())
	f.presentation.AssertCalled(t, "LoadScene", session.SceneMenu)
	// once on load, once on return
	f.presentation.AssertNumberOfCalls(t, "HidePause", 2)
}

func TestController_missingCollaborators(t *testing.T) {
	registry := session.NewRegistry()
	c := registry.NewController(session.NewControllerOptions{
		Config:    session.DefaultConfig(),
		SpawnArea: session.DefaultSpawnArea(),
	})

	assert.NotPanics(t, func() {
		c.OnGameplaySceneLoaded()
		c.Update(clock.Frame{Unscaled: 5, Scaled: 5})
		c.RegisterCollectibleContact(10, uuid.New())
		c.TogglePause()
		c.TogglePause()
		c.RegisterHazardContact()
	})
	assert.Equal(t, session.StateEnded, c.State())
	assert.Equal(t, 10, c.Score())
}

func TestController_ProcessContacts(t *testing.T) {
	store := state.NewInMemoryScoreStore(nil)
	f := newFixture(t, session.DefaultConfig(), store)
	f.controller.OnGameplaySceneLoaded()

	star := uuid.New()
	q := queuemocks.NewQueue(t)
	q.EXPECT().ReadAllMessages().Return([]interface{}{
		session.ContactEvent{Kind: session.EntityKindCollectible, EntityID: star, Value: 10},
		&session.ContactEvent{Kind: session.EntityKindCollectible, Value: 5},
		"not an event",
		session.ContactEvent{Kind: session.EntityKindHazard, EntityID: uuid.New()},
		session.ContactEvent{Kind: session.EntityKindCollectible, EntityID: uuid.New(), Value: 10},
	}, nil).Once()

	f.controller.ProcessContacts(q)

	assert.Equal(t, session.StateEnded, f.controller.State())
	assert.Equal(t, 15, f.controller.Score())
	assert.Equal(t, 15, store.GetLastScore(0))
	assert.Equal(t, []uuid.UUID{star}, f.factory.despawned)
}

func TestRegistry_duplicateController(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), state.NewInMemoryScoreStore(nil))
	first := f.registry.Active()
	require.Same(t, f.controller, first)
	f.controller.OnGameplaySceneLoaded()
	f.controller.RegisterCollectibleContact(10, uuid.Nil)

	dupPresentation := mocks.NewPresentation(t)
	dupStore := mocks.NewPersistenceStore(t)
	dupClock := clock.New()
	duplicate := f.registry.NewController(session.NewControllerOptions{
		Config:       session.DefaultConfig(),
		Clock:        dupClock,
		Presentation: dupPresentation,
		Store:        dupStore,
	})

	assert.Same(t, first, f.registry.Active())
	assert.True(t, duplicate.Disabled())

	duplicate.OnGameplaySceneLoaded()
	duplicate.RegisterCollectibleContact(10, uuid.New())
	duplicate.TogglePause()
	duplicate.RegisterHazardContact()
	duplicate.ReturnToMenu()
	duplicate.OnNonGameplaySceneLoaded()
	duplicate.Update(clock.Frame{Unscaled: 10, Scaled: 10})

	assert.Equal(t, session.StateUninitialized, duplicate.State())
	assert.Equal(t, 0, duplicate.Score())
	assert.Equal(t, 1.0, dupClock.TimeScale())
	// the mocks fail the test on any call

	assert.Equal(t, session.StatePlaying, first.State())
	assert.Equal(t, 10, first.Score())
	assert.Equal(t, 1.0, f.clock.TimeScale())
}

func TestRegistry_Release(t *testing.T) {
	f := newFixture(t, session.DefaultConfig(), nil)
	f.controller.OnGameplaySceneLoaded()

	f.registry.Release()
	assert.Nil(t, f.registry.Active())
	assert.True(t, f.controller.Disabled())
	assert.False(t, f.controller.Spawner().Running())

	next := f.registry.NewController(session.NewControllerOptions{Config: session.DefaultConfig()})
	assert.False(t, next.Disabled())
	assert.Same(t, next, f.registry.Active())
}
