// Package component defines the layout component data model shared by the
// grid engine, the template library, and the customization controller.
//
// A Component is a placed visual unit: an opaque id, a renderer kind, a
// pixel position and size, interaction flags, and an opaque config bag that
// is passed through to renderers untouched.
package component

import (
	"strings"

	"github.com/google/uuid"
)

// Component kinds. The kind selects which renderer is invoked; the engine
// itself never interprets it beyond registry lookup.
const (
	KindWidget = "widget"
	KindChart  = "chart"
	KindTable  = "table"
	KindCustom = "custom"
)

// Position is a top-left pixel coordinate relative to the container.
type Position struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// Size holds pixel dimensions plus optional constraints.
// A zero constraint means unconstrained.
type Size struct {
	Width     int `json:"width" bson:"width"`
	Height    int `json:"height" bson:"height"`
	MinWidth  int `json:"min_width,omitempty" bson:"min_width,omitempty"`
	MinHeight int `json:"min_height,omitempty" bson:"min_height,omitempty"`
	MaxWidth  int `json:"max_width,omitempty" bson:"max_width,omitempty"`
	MaxHeight int `json:"max_height,omitempty" bson:"max_height,omitempty"`
}

// Component is a placed visual unit in a grid layout.
type Component struct {
	ID        string         `json:"id" bson:"id"`
	Kind      string         `json:"kind" bson:"kind"`
	Title     string         `json:"title,omitempty" bson:"title,omitempty"`
	Position  Position       `json:"position" bson:"position"`
	Size      Size           `json:"size" bson:"size"`
	Draggable bool           `json:"draggable" bson:"draggable"`
	Resizable bool           `json:"resizable" bson:"resizable"`
	Visible   bool           `json:"visible" bson:"visible"`
	Config    map[string]any `json:"config,omitempty" bson:"config,omitempty"`
}

// NewID returns a fresh opaque component identifier. Identifiers are never
// reused; duplication and import always mint new ones.
func NewID() string {
	return uuid.NewString()
}

// DisplayTitle returns the title if set, otherwise a label derived from the
// component kind ("chart" → "Chart").
func (c *Component) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Kind == "" {
		return "Component"
	}
	return strings.ToUpper(c.Kind[:1]) + c.Kind[1:]
}

// Rect is an axis-aligned rectangle derived from position and size.
type Rect struct {
	X, Y, W, H int
}

// Rect returns the component's bounding rectangle.
func (c *Component) Rect() Rect {
	return Rect{X: c.Position.X, Y: c.Position.Y, W: c.Size.Width, H: c.Size.Height}
}

// Overlaps reports whether two rectangles strictly intersect. Rectangles
// that merely touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Clone returns a deep copy of the component. The config bag is copied
// shallowly per key, which is sufficient because config values are treated
// as immutable by the engine.
func (c Component) Clone() Component {
	out := c
	if c.Config != nil {
		out.Config = make(map[string]any, len(c.Config))
		for k, v := range c.Config {
			out.Config[k] = v
		}
	}
	return out
}

// CloneAll deep-copies a component slice.
func CloneAll(cs []Component) []Component {
	out := make([]Component, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}
