// Package render provides the renderer collaborator registry: terminal
// renderers keyed by component kind, with a generic fallback for unknown
// kinds.
//
// The registry is an explicit value passed into whatever draws a layout;
// there is no ambient global renderer table. The engine never inspects a
// component's config bag — it hands it to the renderer untouched.
package render

import "github.com/gridboard/gridboard/pkg/component"

// Renderer draws one component into a cell box of the given dimensions.
type Renderer interface {
	Render(c component.Component, width, height int) string
}

// Registry maps component kinds to renderers.
type Registry struct {
	renderers map[string]Renderer
	fallback  Renderer
}

// NewRegistry creates a registry with the given fallback renderer, used
// for any kind without a registered renderer. A nil fallback defaults to
// the generic box renderer.
func NewRegistry(fallback Renderer) *Registry {
	if fallback == nil {
		fallback = boxRenderer{}
	}
	return &Registry{
		renderers: make(map[string]Renderer),
		fallback:  fallback,
	}
}

// Register binds a renderer to a component kind.
func (r *Registry) Register(kind string, renderer Renderer) {
	r.renderers[kind] = renderer
}

// Render draws a component with the renderer registered for its kind,
// falling back to the generic renderer for unknown kinds.
func (r *Registry) Render(c component.Component, width, height int) string {
	if renderer, ok := r.renderers[c.Kind]; ok {
		return renderer.Render(c, width, height)
	}
	return r.fallback.Render(c, width, height)
}

// Builtin returns a registry with the standard terminal renderers for the
// widget, chart, and table kinds, and the generic box as fallback (which
// also serves the custom kind).
func Builtin() *Registry {
	r := NewRegistry(boxRenderer{})
	r.Register(component.KindWidget, widgetRenderer{})
	r.Register(component.KindChart, chartRenderer{})
	r.Register(component.KindTable, tableRenderer{})
	return r
}
