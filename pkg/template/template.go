// Package template provides the layout template library: named generators
// that produce canonical starter layouts, plus component duplication.
//
// Registries are explicit values constructed at session start and passed
// into whatever needs them. There is no ambient global registry, so tests
// stay isolated and multiple layout sessions can carry different template
// sets.
package template

import (
	"sort"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/errors"
)

// CopyOffset is the fixed pixel delta applied to both axes when a
// component is duplicated, so the copy is visibly distinct without needing
// a collision pass to be useful.
const CopyOffset = 20

// Generator produces a fresh component list for a named template. The
// returned components need not carry ids; Instantiate assigns them.
type Generator func() []component.Component

// Registry maps template names to generators.
type Registry struct {
	gens map[string]Generator
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{gens: make(map[string]Generator)}
}

// Register adds a named generator. Registering the same name twice
// replaces the earlier generator; callers register once at startup.
func (r *Registry) Register(name string, gen Generator) {
	r.gens[name] = gen
}

// Names returns the registered template names, sorted for stable listings.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.gens))
	for name := range r.gens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instantiate produces a fresh, independent layout from the named
// template. Every component receives a newly minted id, so instantiating
// the same template twice never yields colliding ids. Unregistered names
// fail with [errors.ErrCodeTemplateNotFound].
func (r *Registry) Instantiate(name string) ([]component.Component, error) {
	gen, ok := r.gens[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeTemplateNotFound, "template %q is not registered", name)
	}
	out := component.CloneAll(gen())
	for i := range out {
		out[i].ID = component.NewID()
	}
	return out, nil
}

// Duplicate copies a component, assigns a fresh id, marks the title as a
// copy, and offsets the position by [CopyOffset] on both axes. The offset
// is the same fixed delta regardless of where the original sits.
func Duplicate(c component.Component) component.Component {
	out := c.Clone()
	out.ID = component.NewID()
	out.Title = c.DisplayTitle() + " (Copy)"
	out.Position.X += CopyOffset
	out.Position.Y += CopyOffset
	return out
}
