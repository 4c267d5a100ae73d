package platforms

import (
	"fmt"

	"github.com/getmentor/mentor-aggregator/internal/models"
	apperrors "github.com/getmentor/mentor-aggregator/pkg/errors"
)

// Registry holds one adapter per platform, in registration order
type Registry struct {
	adapters map[models.Platform]Adapter
	order    []models.Platform
}

// NewRegistry registers adapters. Registering a platform twice panics since
// it can only come from wiring code.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[models.Platform]Adapter, len(adapters))}
	for _, a := range adapters {
		p := a.Platform()
		if _, exists := r.adapters[p]; exists {
			panic(fmt.Sprintf("platform %s registered twice", p))
		}
		r.adapters[p] = a
		r.order = append(r.order, p)
	}
	return r
}

// Get returns the adapter of platform p
func (r *Registry) Get(p models.Platform) (Adapter, bool) {
	a, ok := r.adapters[p]
	return a, ok
}

// Adapters returns all adapters in registration order
func (r *Registry) Adapters() []Adapter {
	out := make([]Adapter, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.adapters[p])
	}
	return out
}

// Scheduler returns the booking capability of platform p
func (r *Registry) Scheduler(p models.Platform) (Scheduler, error) {
	if s, ok := r.adapters[p].(Scheduler); ok {
		return s, nil
	}
	return nil, apperrors.UnsupportedOperationError(string(p), "schedule_meeting")
}

// Messenger returns the messaging capability of platform p
func (r *Registry) Messenger(p models.Platform) (Messenger, error) {
	if m, ok := r.adapters[p].(Messenger); ok {
		return m, nil
	}
	return nil, apperrors.UnsupportedOperationError(string(p), "send_message")
}
