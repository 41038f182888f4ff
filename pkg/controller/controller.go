package controller

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/observability"
	"github.com/gridboard/gridboard/pkg/prefs"
	"github.com/gridboard/gridboard/pkg/template"
)

// State is the customization session state.
type State int

const (
	// StateViewing is the passive state: the layout renders but gestures
	// are not being captured.
	StateViewing State = iota
	// StateCustomizing captures gestures and tracks unsaved mutations.
	StateCustomizing
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateCustomizing:
		return "customizing"
	default:
		return "unknown"
	}
}

// DefaultAutosaveDelay is the debounce window for autosave: the save fires
// this long after the most recent mutation.
const DefaultAutosaveDelay = time.Second

// Options configures a Controller.
type Options struct {
	// Grid is the layout engine configuration. Zero value uses defaults.
	Grid grid.Config

	// ContainerWidth and ContainerHeight bound gesture clamping. A zero
	// height means the container scrolls vertically and only the top edge
	// is enforced.
	ContainerWidth  int
	ContainerHeight int

	// AutosaveDelay overrides DefaultAutosaveDelay when positive.
	AutosaveDelay time.Duration

	// Clock supplies timer scheduling. Nil means SystemClock.
	Clock Clock

	// Logger receives diagnostics (residual overlaps, autosave failures).
	// Nil discards them.
	Logger *log.Logger
}

// Patch is a partial update to one component. Nil fields are untouched.
type Patch struct {
	Title   *string
	Kind    *string
	Config  map[string]any
	Visible *bool
}

// Controller is the stateful layout customization session layer. It owns a
// working in-memory copy of one layout, turns gestures into validated
// mutations, and drives debounced persistence through a [prefs.Store].
//
// A Controller serves a single logical session; concurrent use from
// multiple goroutines must be serialized by the caller. The one internal
// lock only reconciles the debounced autosave, which fires on a timer
// goroutine.
type Controller struct {
	store  prefs.Store
	key    string
	clock  Clock
	logger *log.Logger
	delay  time.Duration
	grid   grid.Config

	containerWidth  int
	containerHeight int

	state      State
	dirty      bool
	gen        uint64 // bumped on every mutation, guards dirty clearing
	components []component.Component
	theme      string
	animations bool
	residual   bool
	pending    Timer
}

// New creates a controller bound to a session key in the given store.
func New(store prefs.Store, key string, opts Options) *Controller {
	c := &Controller{
		store:           store,
		key:             key,
		clock:           opts.Clock,
		logger:          opts.Logger,
		delay:           opts.AutosaveDelay,
		grid:            opts.Grid,
		containerWidth:  opts.ContainerWidth,
		containerHeight: opts.ContainerHeight,
		state:           StateViewing,
	}
	if c.clock == nil {
		c.clock = SystemClock{}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	if c.delay <= 0 {
		c.delay = DefaultAutosaveDelay
	}
	if c.containerWidth <= 0 {
		c.containerWidth = 1024
	}
	return c
}

// Load pulls the layout document from the store. A missing document leaves
// the working copy empty; other store failures surface as
// PERSISTENCE_FAILURE.
func (c *Controller) Load(ctx context.Context) error {
	doc, err := c.store.Get(ctx, c.key)
	if err == prefs.ErrNotFound {
		return nil
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailure, err, "load layout %s", c.key)
	}
	c.components = component.CloneAll(doc.Components)
	c.theme = doc.Theme
	c.animations = doc.Animations
	if len(doc.Breakpoints) > 0 {
		c.grid.Breakpoints = doc.Breakpoints
	}
	return nil
}

// UseComponents replaces the working component list wholesale, e.g. with a
// freshly instantiated template or an imported document.
func (c *Controller) UseComponents(components []component.Component) {
	c.components = component.CloneAll(components)
	c.markDirty()
}

// Components returns a copy of the working component list in layout order.
func (c *Controller) Components() []component.Component {
	return component.CloneAll(c.components)
}

// State returns the current session state.
func (c *Controller) State() State { return c.state }

// Dirty reports whether unsaved mutations are pending.
func (c *Controller) Dirty() bool { return c.dirty }

// ResidualOverlap reports whether the most recent full layout pass
// exhausted the collision retry budget and left an overlap in place. The
// layout stays usable; this is a rendering-quality diagnostic.
func (c *Controller) ResidualOverlap() bool { return c.residual }

// StartCustomizing enters the customizing state. Entering twice is a no-op.
func (c *Controller) StartCustomizing() {
	c.state = StateCustomizing
}

// StopCustomizing leaves the customizing state, cancelling any pending
// debounced save and discarding the dirty flag. It does not save; callers
// wanting the mutations kept must call Save first.
func (c *Controller) StopCustomizing() {
	c.state = StateViewing
	c.dirty = false
	c.cancelPending()
}

// Reflow recomputes the full layout for a new container width: breakpoint
// resolution, grid placement, and collision resolution for every visible
// component. Recomputing with the same width twice produces the same
// output. If a customization session is active the recomputed layout is
// queued for persistence.
func (c *Controller) Reflow(width int) {
	if width > 0 {
		c.containerWidth = width
	}
	start := time.Now()
	cfg := c.grid
	cfg.Reflow = true
	placed, capHit := grid.Apply(c.components, c.containerWidth, cfg)
	c.components = placed
	c.residual = capHit
	if capHit {
		c.logger.Warn("residual overlap after collision resolution", "width", c.containerWidth)
	}
	observability.Layout().OnLayoutPass(context.Background(), c.containerWidth, len(placed), capHit, time.Since(start))
	if c.state == StateCustomizing {
		c.markDirty()
	}
}

// Add appends a component draft to the layout. Empty ids are minted;
// zero-sized drafts receive grid-derived placement on the next layout
// pass. The affected component alone is bounds-validated.
func (c *Controller) Add(draft component.Component) component.Component {
	if draft.ID == "" {
		draft.ID = component.NewID()
	}
	draft = c.clamp(draft)
	c.components = append(c.components, draft)
	c.markDirty()
	return draft.Clone()
}

// Remove deletes the component with the given id.
func (c *Controller) Remove(id string) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	c.components = append(c.components[:idx], c.components[idx+1:]...)
	c.markDirty()
	return nil
}

// Duplicate copies an existing component with a fresh id, a " (Copy)"
// title suffix, and the fixed duplicate offset.
func (c *Controller) Duplicate(id string) (component.Component, error) {
	idx, err := c.index(id)
	if err != nil {
		return component.Component{}, err
	}
	dup := c.clamp(template.Duplicate(c.components[idx]))
	c.components = append(c.components, dup)
	c.markDirty()
	return dup.Clone(), nil
}

// Update applies a partial patch to one component. Geometry is untouched;
// use Move or Resize for that.
func (c *Controller) Update(id string, p Patch) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	target := &c.components[idx]
	if p.Title != nil {
		target.Title = *p.Title
	}
	if p.Kind != nil {
		target.Kind = *p.Kind
	}
	if p.Visible != nil {
		target.Visible = *p.Visible
	}
	if p.Config != nil {
		if target.Config == nil {
			target.Config = make(map[string]any, len(p.Config))
		}
		for k, v := range p.Config {
			target.Config[k] = v
		}
	}
	c.markDirty()
	return nil
}

// Move places one component at a new position and size, as produced by a
// drag gesture. Only the moved component is bounds-validated; the rest of
// the layout is deliberately left alone so unrelated components do not
// jump mid-drag.
func (c *Controller) Move(id string, pos component.Position, size component.Size) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	target := c.components[idx]
	target.Position = pos
	if size.Width > 0 && size.Height > 0 {
		target.Size.Width = size.Width
		target.Size.Height = size.Height
	}
	c.components[idx] = c.clamp(target)
	c.markDirty()
	return nil
}

// Resize sets one component's dimensions, honoring its min/max
// constraints, then re-clamps its position against the container.
func (c *Controller) Resize(id string, size component.Size) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	target := c.components[idx]
	target.Size.Width = size.Width
	target.Size.Height = size.Height
	clampSizeConstraints(&target)
	c.components[idx] = c.clamp(target)
	c.markDirty()
	return nil
}

// ToggleVisibility flips a component's visibility. Invisible components
// are excluded from layout computation and collision checks until toggled
// back.
func (c *Controller) ToggleVisibility(id string) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	c.components[idx].Visible = !c.components[idx].Visible
	c.markDirty()
	return nil
}

// ReorderTo moves a component to a new index in the layout order, which
// determines its row-major slot on the next reflow. Out-of-range indices
// clamp to the list bounds.
func (c *Controller) ReorderTo(id string, index int) error {
	idx, err := c.index(id)
	if err != nil {
		return err
	}
	if index < 0 {
		index = 0
	}
	if index >= len(c.components) {
		index = len(c.components) - 1
	}
	moved := c.components[idx]
	rest := append(c.components[:idx], c.components[idx+1:]...)
	c.components = append(rest[:index], append([]component.Component{moved}, rest[index:]...)...)
	c.markDirty()
	return nil
}

// SetTheme updates the stored theme flag.
func (c *Controller) SetTheme(theme string) {
	c.theme = theme
	c.markDirty()
}

// SetAnimations updates the stored animations flag.
func (c *Controller) SetAnimations(on bool) {
	c.animations = on
	c.markDirty()
}

// Save persists the working layout through the preferences store and, on
// success, clears the dirty flag. On failure the dirty flag is preserved
// so a retry or manual save can recover; the controller itself never
// retries.
func (c *Controller) Save(ctx context.Context) error {
	comps := component.CloneAll(c.components)
	gen := c.gen
	start := time.Now()
	observability.Persistence().OnSaveStart(ctx, c.key)

	patch := prefs.Patch{
		Components: &comps,
		Theme:      &c.theme,
		Animations: &c.animations,
	}
	_, err := c.store.Update(ctx, c.key, patch)
	observability.Persistence().OnSaveComplete(ctx, c.key, time.Since(start), err)
	if err != nil {
		return errors.Wrap(errors.ErrCodePersistenceFailure, err, "save layout %s", c.key)
	}
	// Clear dirty only if nothing mutated while the save was in flight;
	// later mutations stay queued for the next save.
	if gen == c.gen {
		c.dirty = false
	}
	return nil
}

// markDirty records a mutation and, during a customization session,
// restarts the autosave debounce window.
func (c *Controller) markDirty() {
	c.gen++
	if c.state != StateCustomizing {
		return
	}
	c.dirty = true
	c.cancelPending()
	c.pending = c.clock.AfterFunc(c.delay, c.autosave)
}

// autosave fires from the debounce timer. Leaving the customizing state
// cancels the timer, so a fire implies an active dirty session unless the
// state changed in the window between fire and execution.
func (c *Controller) autosave() {
	if c.state != StateCustomizing || !c.dirty {
		return
	}
	if err := c.Save(context.Background()); err != nil {
		c.logger.Error("autosave failed", "layout", c.key, "err", err)
	}
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
}

func (c *Controller) index(id string) (int, error) {
	for i := range c.components {
		if c.components[i].ID == id {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeComponentNotFound, "component %s not found", id)
}

// clamp bounds-validates a single component against the container. A zero
// container height means unbounded vertical scroll.
func (c *Controller) clamp(cmp component.Component) component.Component {
	height := c.containerHeight
	if height <= 0 {
		height = math.MaxInt32
	}
	return grid.Clamp(cmp, c.containerWidth, height)
}

func clampSizeConstraints(cmp *component.Component) {
	s := &cmp.Size
	if s.MinWidth > 0 && s.Width < s.MinWidth {
		s.Width = s.MinWidth
	}
	if s.MinHeight > 0 && s.Height < s.MinHeight {
		s.Height = s.MinHeight
	}
	if s.MaxWidth > 0 && s.Width > s.MaxWidth {
		s.Width = s.MaxWidth
	}
	if s.MaxHeight > 0 && s.Height > s.MaxHeight {
		s.Height = s.MaxHeight
	}
}
