// Package levels maps level IDs to the story logic that runs while the
// level is played, and finds which levels exist on disk.
package levels

import "sort"

// ID identifies one level and its data file.
type ID int

// Handler evaluates level-specific story conditions once per tick.
type Handler interface {
	HandleEvent(s State)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(s State)

func (f HandlerFunc) HandleEvent(s State) {
	f(s)
}

// Registry is a read-only table of handlers built at startup.
type Registry struct {
	handlers map[ID]Handler
}

// NewRegistry copies entries into a new registry. Nil handlers are dropped.
func NewRegistry(entries map[ID]Handler) *Registry {
	r := &Registry{handlers: make(map[ID]Handler, len(entries))}
	for id, h := range entries {
		if h == nil {
			continue
		}
		r.handlers[id] = h
	}
	return r
}

// Handler returns the handler registered for id, or false when the level
// has no custom logic.
func (r *Registry) Handler(id ID) (Handler, bool) {
	if r == nil {
		return nil, false
	}
	h, ok := r.handlers[id]
	return h, ok
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.handlers)
}

// IDs returns the registered level IDs in ascending order.
func (r *Registry) IDs() []ID {
	if r == nil {
		return nil
	}
	ids := make([]ID, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
