// Package flow runs one tick of a play session in a fixed order: pending
// scene load, unscaled input, clock, spawning, world simulation, contacts.
package flow

import (
	"fmt"

	"github.com/cbodonnell/stardrift/pkg/clock"
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/queue"
	"github.com/cbodonnell/stardrift/pkg/session"
	"github.com/cbodonnell/stardrift/pkg/world"
)

// Input is the polled player input of a tick.
type Input struct {
	// TogglePause is set on the tick the pause key went down.
	TogglePause bool
	World       world.Input
}

// SceneLoader builds and shows the scene. It is called before the controller
// is notified of the load.
type SceneLoader func(scene session.Scene) error

type Flow struct {
	router     *Router
	controller *session.Controller
	clock      *clock.Clock
	world      *world.World
	contacts   queue.Queue
	loadScene  SceneLoader
}

type NewFlowOptions struct {
	Router     *Router
	Controller *session.Controller
	Clock      *clock.Clock
	World      *world.World
	Contacts   queue.Queue
	LoadScene  SceneLoader
}

func New(opts NewFlowOptions) *Flow {
	loadScene := opts.LoadScene
	if loadScene == nil {
		loadScene = func(session.Scene) error { return nil }
	}
	return &Flow{
		router:     opts.Router,
		controller: opts.Controller,
		clock:      opts.Clock,
		world:      opts.World,
		contacts:   opts.Contacts,
		loadScene:  loadScene,
	}
}

// LoadPending performs the scene load requested during the previous tick, if any.
func (f *Flow) LoadPending() error {
	scene, ok := f.router.takePending()
	if !ok {
		return nil
	}

	if scene == session.SceneGameplay {
		f.world.Reset()
		f.contacts.ClearQueue()
	}

	if err := f.loadScene(scene); err != nil {
		return fmt.Errorf("failed to load %s scene: %v", scene, err)
	}
	f.router.setCurrent(scene)
	log.Debug("Loaded %s scene", scene)

	if scene == session.SceneGameplay {
		f.controller.OnGameplaySceneLoaded()
	} else {
		f.controller.OnNonGameplaySceneLoaded()
	}
	return nil
}

// Step runs the rest of the tick with the given unscaled delta time.
func (f *Flow) Step(unscaled float64, in Input) {
	if in.TogglePause {
		f.controller.TogglePause()
	}

	frame := f.clock.Tick(unscaled)
	f.controller.Update(frame)

	if scene, ok := f.router.Current(); ok && scene == session.SceneGameplay {
		f.world.Update(frame.Scaled, in.World)
	}

	f.controller.ProcessContacts(f.contacts)
}
