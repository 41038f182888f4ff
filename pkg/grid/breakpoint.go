package grid

// Breakpoint is a named container-width tier. Tiers configure how many
// columns the grid uses and the spacing between and around items.
type Breakpoint struct {
	Name             string `json:"name" bson:"name" toml:"name"`
	MinWidth         int    `json:"min_width" bson:"min_width" toml:"min_width"`
	Columns          int    `json:"columns" bson:"columns" toml:"columns"`
	ContainerPadding int    `json:"container_padding" bson:"container_padding" toml:"container_padding"`
	Gap              int    `json:"gap" bson:"gap" toml:"gap"`
}

// DefaultBreakpoints is the standard tier set used when no configuration is
// supplied. MinWidths are strictly increasing, as Resolve requires.
var DefaultBreakpoints = []Breakpoint{
	{Name: "xs", MinWidth: 0, Columns: 1, ContainerPadding: 8, Gap: 16},
	{Name: "sm", MinWidth: 640, Columns: 2, ContainerPadding: 12, Gap: 16},
	{Name: "md", MinWidth: 768, Columns: 3, ContainerPadding: 16, Gap: 24},
	{Name: "lg", MinWidth: 1024, Columns: 4, ContainerPadding: 24, Gap: 24},
	{Name: "xl", MinWidth: 1280, Columns: 6, ContainerPadding: 32, Gap: 24},
}

// Resolve selects the breakpoint whose MinWidth is the largest value not
// exceeding width. If width is below every tier, the smallest tier is
// returned as the floor. The slice must be non-empty and sorted ascending
// by MinWidth; callers sort once at configuration time. Resolve panics if
// breakpoints is empty.
func Resolve(width int, breakpoints []Breakpoint) Breakpoint {
	if len(breakpoints) == 0 {
		panic("grid: Resolve called with no breakpoints")
	}
	selected := breakpoints[0]
	for _, bp := range breakpoints[1:] {
		if bp.MinWidth <= width {
			selected = bp
		}
	}
	return selected
}
