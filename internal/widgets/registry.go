package widgets

import "github.com/cockroachdb/errors"

// Registry is the read-only set of widgets a server exposes. It is built
// once at startup; accessors return copies.
type Registry struct {
	byID  map[string]Descriptor
	order []string
}

// NewRegistry indexes descriptors by widget id. Duplicate ids or endpoints are rejected.
func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byID: make(map[string]Descriptor, len(descriptors))}
	endpoints := make(map[string]string, len(descriptors))

	for _, d := range descriptors {
		if d.WidgetID == "" {
			return nil, errors.Newf("widget for endpoint %q has no id", d.Endpoint)
		}
		if _, dup := r.byID[d.WidgetID]; dup {
			return nil, errors.Newf("duplicate widget id %q", d.WidgetID)
		}
		if other, dup := endpoints[d.Endpoint]; dup {
			return nil, errors.Newf("widgets %q and %q share endpoint %q", other, d.WidgetID, d.Endpoint)
		}
		endpoints[d.Endpoint] = d.WidgetID
		r.byID[d.WidgetID] = d.clone()
		r.order = append(r.order, d.WidgetID)
	}
	return r, nil
}

// All returns every descriptor keyed by widget id, the widgets.json document.
func (r *Registry) All() map[string]Descriptor {
	out := make(map[string]Descriptor, len(r.byID))
	for id, d := range r.byID {
		out[id] = d.clone()
	}
	return out
}

// Get returns the descriptor for id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return d.clone(), true
}

// IDs returns widget ids in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.order)
}
