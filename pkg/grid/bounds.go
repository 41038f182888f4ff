package grid

import "github.com/gridboard/gridboard/pkg/component"

// Clamp constrains a component's position so its rectangle stays inside a
// container of the given dimensions. X is clamped into
// [0, containerWidth - width] and Y into [0, containerHeight - height].
// When a component is larger than the container the range is negative and
// collapses to the lower bound; the component sits at 0 and spills past the
// container edge. That is an accepted degenerate case, not an error.
func Clamp(c component.Component, containerWidth, containerHeight int) component.Component {
	c.Position.X = clampAxis(c.Position.X, containerWidth-c.Size.Width)
	c.Position.Y = clampAxis(c.Position.Y, containerHeight-c.Size.Height)
	return c
}

func clampAxis(v, upper int) int {
	if upper < 0 {
		upper = 0
	}
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}
