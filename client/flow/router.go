package flow

import (
	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/session"
)

// Router is the session.Presentation of the client. It records what the
// session wants shown, and defers scene loads to the start of the next tick.
type Router struct {
	current      session.Scene
	loaded       bool
	pending      *session.Scene
	pauseVisible bool
	scoreDisplay int
}

var _ session.Presentation = &Router{}

func NewRouter() *Router {
	return &Router{}
}

func (r *Router) ShowPause() {
	r.pauseVisible = true
}

func (r *Router) HidePause() {
	r.pauseVisible = false
}

func (r *Router) SetScoreDisplay(score int) {
	r.scoreDisplay = score
}

// LoadScene requests a scene load. The latest request of a tick wins.
func (r *Router) LoadScene(scene session.Scene) {
	if r.pending != nil && *r.pending != scene {
		log.Debug("Scene load %s replaces pending %s", scene, *r.pending)
	}
	r.pending = &scene
}

func (r *Router) PauseVisible() bool {
	return r.pauseVisible
}

func (r *Router) ScoreDisplay() int {
	return r.scoreDisplay
}

// Current returns the loaded scene. ok is false before the first load.
func (r *Router) Current() (scene session.Scene, ok bool) {
	return r.current, r.loaded
}

// takePending returns and clears the pending scene load.
func (r *Router) takePending() (session.Scene, bool) {
	if r.pending == nil {
		return 0, false
	}
	scene := *r.pending
	r.pending = nil
	return scene, true
}

func (r *Router) setCurrent(scene session.Scene) {
	r.current = scene
	r.loaded = true
}
