// Package prefs implements the layout preferences collaborator: durable
// storage for layout documents, keyed by session.
//
// The engine treats a [Store] as the sole durable home of a layout; during
// an active customization session the controller holds a working,
// possibly-dirty in-memory copy and writes it back through Update.
//
// Backends:
//   - memory: in-process storage for development and tests
//   - file: JSON files under a config directory, for CLI use
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage for the hosted platform
package prefs

import (
	"context"
	"errors"
	"time"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/grid"
)

// ErrNotFound is returned by Get when no document exists for a key.
var ErrNotFound = errors.New("layout not found")

// LayoutDocument is the durable layout preferences document: the ordered
// component list plus the display settings that travel with it.
type LayoutDocument struct {
	Key         string                `json:"key" bson:"key"`
	Components  []component.Component `json:"components" bson:"components"`
	Breakpoints []grid.Breakpoint     `json:"breakpoints,omitempty" bson:"breakpoints,omitempty"`
	Theme       string                `json:"theme,omitempty" bson:"theme,omitempty"`
	Animations  bool                  `json:"animations" bson:"animations"`
	UpdatedAt   time.Time             `json:"updated_at" bson:"updated_at"`
}

// Patch describes a partial update to a layout document. Nil fields are
// left untouched; set fields replace the stored value wholesale.
type Patch struct {
	Components  *[]component.Component `json:"components,omitempty"`
	Breakpoints *[]grid.Breakpoint     `json:"breakpoints,omitempty"`
	Theme       *string                `json:"theme,omitempty"`
	Animations  *bool                  `json:"animations,omitempty"`
}

// Apply merges the patch into a document and stamps UpdatedAt.
func (p Patch) Apply(doc *LayoutDocument, now time.Time) {
	if p.Components != nil {
		doc.Components = component.CloneAll(*p.Components)
	}
	if p.Breakpoints != nil {
		doc.Breakpoints = append([]grid.Breakpoint(nil), (*p.Breakpoints)...)
	}
	if p.Theme != nil {
		doc.Theme = *p.Theme
	}
	if p.Animations != nil {
		doc.Animations = *p.Animations
	}
	doc.UpdatedAt = now
}

// Store is the interface for layout preference backends.
type Store interface {
	// Get retrieves the layout document for a session key.
	// Returns ErrNotFound if no document exists.
	Get(ctx context.Context, key string) (*LayoutDocument, error)

	// Update applies a patch to the stored document, creating it first if
	// absent, and returns the updated document.
	Update(ctx context.Context, key string, patch Patch) (*LayoutDocument, error)

	// Delete removes the document for a key. Deleting a missing key is not
	// an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
