package session

import "github.com/cbodonnell/stardrift/pkg/log"

// Registry is owned by the host application and keeps the single active
// Controller alive across scene changes.
type Registry struct {
	active *Controller
}

func NewRegistry() *Registry {
	return &Registry{}
}

// NewController creates the active controller. If one already exists the
// returned controller is disabled and the active one is left untouched.
func (r *Registry) NewController(opts NewControllerOptions) *Controller {
	if r.active != nil {
		log.Warn("Session controller already exists, discarding duplicate")
		return &Controller{disabled: true}
	}
	r.active = newController(opts)
	return r.active
}

// Active returns the active controller, or nil.
func (r *Registry) Active() *Controller {
	return r.active
}

// Release shuts down the active controller so a new one can be created.
func (r *Registry) Release() {
	if r.active == nil {
		return
	}
	r.active.shutdown()
	r.active = nil
}
