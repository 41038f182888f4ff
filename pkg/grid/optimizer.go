package grid

import "github.com/gridboard/gridboard/pkg/component"

// Config carries the engine settings for a layout pass.
type Config struct {
	// Breakpoints are the width tiers, sorted ascending by MinWidth.
	// Empty means DefaultBreakpoints.
	Breakpoints []Breakpoint

	// MinItemWidth is the smallest acceptable item width, used to derive a
	// column count when the resolved breakpoint does not fix one.
	MinItemWidth int

	// MaxColumns caps the derived column count. Zero means uncapped.
	MaxColumns int

	// Reflow forces grid-derived positions for every visible component,
	// discarding positions set by prior drag operations. Used for
	// breakpoint transitions and initial placement.
	Reflow bool
}

func (c Config) breakpoints() []Breakpoint {
	if len(c.Breakpoints) == 0 {
		return DefaultBreakpoints
	}
	return c.Breakpoints
}

// Optimize computes grid positions and sizes for every visible component.
//
// Components are processed in input order; each visible component occupies
// the next row-major slot. Invisible components are excluded from layout
// computation and returned unchanged. The input slice is not mutated.
//
// Sizing: a component's width becomes the maximum of its explicit width,
// the computed grid item width, and its MinWidth, capped by MaxWidth when
// set (height analogous). Placement: with cfg.Reflow, every visible
// component takes its grid slot position; without it, a component that
// already has an explicit size keeps its position and size (constraints
// still applied), and only unsized drafts receive grid defaults.
func Optimize(components []component.Component, containerWidth int, cfg Config) []component.Component {
	bp := Resolve(containerWidth, cfg.breakpoints())
	columns := bp.Columns
	if columns <= 0 {
		columns = Columns(containerWidth, cfg.MinItemWidth, bp.Gap, cfg.MaxColumns)
	}

	inner := containerWidth - 2*bp.ContainerPadding
	item := ItemSize(inner, columns, bp.Gap)

	out := component.CloneAll(components)
	slot := 0
	for i := range out {
		c := &out[i]
		if !c.Visible {
			continue
		}

		placed := c.Size.Width > 0 && c.Size.Height > 0
		if cfg.Reflow || !placed {
			pos := PositionAt(slot, columns, item.Width, item.Height, bp.Gap)
			c.Position.X = pos.X + bp.ContainerPadding
			c.Position.Y = pos.Y + bp.ContainerPadding
			c.Size.Width = maxInt(c.Size.Width, item.Width)
			c.Size.Height = maxInt(c.Size.Height, item.Height)
		}
		applyConstraints(c)
		slot++
	}
	return out
}

// Apply runs a layout pass for a container width: an [Optimize] pass
// honoring cfg.Reflow, then collision resolution using the breakpoint gap
// as the displacement step. Without cfg.Reflow explicit placements are
// preserved and only drafts receive grid positions. It reports whether the
// collision retry budget was exhausted.
func Apply(components []component.Component, containerWidth int, cfg Config) ([]component.Component, bool) {
	bp := Resolve(containerWidth, cfg.breakpoints())
	out := Optimize(components, containerWidth, cfg)
	return ResolveCollisions(out, bp.Gap)
}

func applyConstraints(c *component.Component) {
	c.Size.Width = maxInt(c.Size.Width, c.Size.MinWidth)
	c.Size.Height = maxInt(c.Size.Height, c.Size.MinHeight)
	if c.Size.MaxWidth > 0 && c.Size.Width > c.Size.MaxWidth {
		c.Size.Width = c.Size.MaxWidth
	}
	if c.Size.MaxHeight > 0 && c.Size.Height > c.Size.MaxHeight {
		c.Size.Height = c.Size.MaxHeight
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
