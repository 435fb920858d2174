// Package session implements the session controller: the state machine that
// owns a play-through, drives spawning, tracks and persists the score, and
// gates simulation time for pause and game over.
package session

import (
	"math/rand"

	"github.com/cbodonnell/stardrift/pkg/clock"
	"github.com/cbodonnell/stardrift/pkg/constants"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/google/uuid"
)

// Config holds the tunable options of a session.
type Config struct {
	HazardSpawnInterval      float64
	HazardInitialDelay       float64
	CollectibleSpawnInterval float64
	CollectibleInitialDelay  float64
	InitialScore             int
}

func DefaultConfig() Config {
	return Config{
		HazardSpawnInterval:      constants.HazardSpawnInterval,
		HazardInitialDelay:       constants.HazardInitialDelay,
		CollectibleSpawnInterval: constants.CollectibleSpawnInterval,
		CollectibleInitialDelay:  constants.CollectibleInitialDelay,
		InitialScore:             constants.InitialScore,
	}
}

// Controller is the session state machine. It is not safe for concurrent use:
// every method is called from the game loop.
type Controller struct {
	// disabled marks a duplicate controller. Every method on it is a no-op.
	disabled bool

	state   State
	runID   uuid.UUID
	config  Config
	score   *ScoreTracker
	spawner *SpawnScheduler

	clock        clock.TimeScaler
	presentation Presentation
	store        PersistenceStore
	factory      SpawnFactory
}

// NewControllerOptions contains options for creating a new Controller.
type NewControllerOptions struct {
	Config    Config
	SpawnArea SpawnArea
	// Clock receives the time-scale changes.
	Clock clock.TimeScaler
	// Presentation renders the pause overlay and score and loads scenes.
	Presentation Presentation
	// Store persists the score at the end of a session.
	Store PersistenceStore
	// Factory consumes spawn requests and removes collected entities.
	Factory SpawnFactory
	// Rand is the source of spawn positions.
	Rand *rand.Rand
}

func newController(opts NewControllerOptions) *Controller {
	return &Controller{
		state:  StateUninitialized,
		config: opts.Config,
		score:  NewScoreTracker(opts.Config.InitialScore),
		spawner: NewSpawnScheduler(NewSpawnSchedulerOptions{
			HazardInitialDelay:      opts.Config.HazardInitialDelay,
			HazardInterval:          opts.Config.HazardSpawnInterval,
			CollectibleInitialDelay: opts.Config.CollectibleInitialDelay,
			CollectibleInterval:     opts.Config.CollectibleSpawnInterval,
			Area:                    opts.SpawnArea,
			Rand:                    opts.Rand,
			Factory:                 opts.Factory,
		}),
		clock:        opts.Clock,
		presentation: opts.Presentation,
		store:        opts.Store,
		factory:      opts.Factory,
	}
}

func (c *Controller) Disabled() bool {
	return c.disabled
}

func (c *Controller) State() State {
	return c.state
}

// Score returns the current score.
func (c *Controller) Score() int {
	if c.disabled {
		return 0
	}
	return c.score.Snapshot()
}

// RunID identifies the current play-through. It changes on every gameplay scene load.
func (c *Controller) RunID() uuid.UUID {
	return c.runID
}

// Spawner exposes the scheduler for diagnostics.
func (c *Controller) Spawner() *SpawnScheduler {
	return c.spawner
}

// OnGameplaySceneLoaded starts a new session. It is valid from any state.
func (c *Controller) OnGameplaySceneLoaded() {
	if c.disabled {
		return
	}
	log.Debug("Gameplay scene loaded in state %s", c.state)
	c.spawner.Stop()
	c.runID = uuid.New()
	c.score.Reset(c.config.InitialScore)
	c.updateScoreDisplay()
	c.spawner.Start()
	c.setTimeScale(1)
	c.hidePause()
	c.setState(StatePlaying)
}

// OnNonGameplaySceneLoaded leaves the session so menus stay interactive.
func (c *Controller) OnNonGameplaySceneLoaded() {
	if c.disabled {
		return
	}
	log.Debug("Non-gameplay scene loaded in state %s", c.state)
	c.spawner.Stop()
	c.setTimeScale(1)
	c.setState(StateUninitialized)
}

// TogglePause switches between Playing and Paused.
func (c *Controller) TogglePause() {
	if c.disabled {
		return
	}
	switch c.state {
	case StatePlaying:
		c.setTimeScale(0)
		c.showPause()
		c.setState(StatePaused)
	case StatePaused:
		c.setTimeScale(1)
		c.hidePause()
		c.setState(StatePlaying)
	default:
		c.ignore("TogglePause")
	}
}

// RegisterHazardContact ends the session, persists the score and requests
// the end game scene.
func (c *Controller) RegisterHazardContact() {
	if c.disabled {
		return
	}
	if c.state != StatePlaying {
		c.ignore("RegisterHazardContact")
		return
	}
	c.setState(StateEnded)
	c.spawner.Stop()
	score := c.score.Snapshot()
	if c.store != nil {
		if recorder, ok := c.store.(RunRecorder); ok {
			recorder.RecordRun(c.runID)
		}
		c.store.SetLastScore(score)
		log.Info("Session %s ended with score %d", c.runID, score)
	} else {
		log.Warn("No persistence store bound, score %d of session %s not saved", score, c.runID)
	}
	c.setTimeScale(0)
	c.loadScene(SceneEndGame)
}

// RegisterCollectibleContact adds value to the score and requests removal of
// the collected entity. A nil entityID skips the removal.
func (c *Controller) RegisterCollectibleContact(value int, entityID uuid.UUID) {
	if c.disabled {
		return
	}
	if c.state != StatePlaying {
		c.ignore("RegisterCollectibleContact")
		return
	}
	c.score.Add(value)
	c.updateScoreDisplay()
	if entityID == uuid.Nil {
		return
	}
	if c.factory == nil {
		log.Warn("No spawn factory bound, cannot remove collectible %s", entityID)
		return
	}
	c.factory.Despawn(entityID)
}

// ReturnToMenu abandons a paused session and requests the menu scene.
func (c *Controller) ReturnToMenu() {
	if c.disabled {
		return
	}
	if c.state != StatePaused {
		c.ignore("ReturnToMenu")
		return
	}
	c.setTimeScale(1)
	c.hidePause()
	c.spawner.Stop()
	c.setState(StateUninitialized)
	c.loadScene(SceneMenu)
}

// Update advances the spawn timers by the scaled time of the frame.
func (c *Controller) Update(frame clock.Frame) {
	if c.disabled {
		return
	}
	if c.state != StatePlaying {
		return
	}
	c.spawner.Advance(frame.Scaled)
}

// HandleContact dispatches a single contact event.
func (c *Controller) HandleContact(event ContactEvent) {
	if c.disabled {
		return
	}
	switch event.Kind {
	case EntityKindHazard:
		c.RegisterHazardContact()
	case EntityKindCollectible:
		c.RegisterCollectibleContact(event.Value, event.EntityID)
	default:
		log.Error("Unhandled contact kind: %s", event.Kind)
	}
}

// ProcessContacts processes all pending contact events in the queue in order.
func (c *Controller) ProcessContacts(q queue.Queue) {
	if c.disabled {
		return
	}
	pending, err := q.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read contact events: %v", err)
		return
	}
	for _, item := range pending {
		switch event := item.(type) {
		case ContactEvent:
			c.HandleContact(event)
		case *ContactEvent:
			c.HandleContact(*event)
		default:
			log.Error("Unhandled contact event type: %T", event)
		}
	}
}

// shutdown stops the scheduler and disables the controller.
func (c *Controller) shutdown() {
	if c.disabled {
		return
	}
	c.spawner.Stop()
	c.disabled = true
}

func (c *Controller) setState(state State) {
	if c.state == state {
		return
	}
	log.Debug("Session state %s -> %s", c.state, state)
	c.state = state
}

func (c *Controller) ignore(operation string) {
	log.Debug("Ignoring %s in state %s", operation, c.state)
}

func (c *Controller) setTimeScale(scale float64) {
	if c.clock == nil {
		log.Warn("No clock bound, cannot set time scale to %v", scale)
		return
	}
	c.clock.SetTimeScale(scale)
}

func (c *Controller) updateScoreDisplay() {
	if c.presentation == nil {
		log.Warn("No presentation bound, cannot display score %d", c.score.Snapshot())
		return
	}
	c.presentation.SetScoreDisplay(c.score.Snapshot())
}

func (c *Controller) showPause() {
	if c.presentation == nil {
		log.Warn("No presentation bound, cannot show pause overlay")
		return
	}
	c.presentation.ShowPause()
}

func (c *Controller) hidePause() {
	if c.presentation == nil {
		log.Warn("No presentation bound, cannot hide pause overlay")
		return
	}
	c.presentation.HidePause()
}

func (c *Controller) loadScene(scene Scene) {
	if c.presentation == nil {
		log.Warn("No presentation bound, cannot load scene %s", scene)
		return
	}
	c.presentation.LoadScene(scene)
}
