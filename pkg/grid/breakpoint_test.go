package grid

import "testing"

var testBreakpoints = []Breakpoint{
	{Name: "xs", MinWidth: 0, Columns: 1, Gap: 16},
	{Name: "sm", MinWidth: 640, Columns: 2, Gap: 16},
	{Name: "md", MinWidth: 768, Columns: 3, Gap: 24},
}

func TestResolve(t *testing.T) {
	tests := []struct {
		width int
		want  string
	}{
		{700, "sm"},
		{10, "xs"},
		{1000, "md"},
		{0, "xs"},
		{640, "sm"},
		{768, "md"},
		{639, "xs"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.width, testBreakpoints); got.Name != tt.want {
			t.Errorf("Resolve(%d) = %q, want %q", tt.width, got.Name, tt.want)
		}
	}
}

func TestResolve_BelowFloor(t *testing.T) {
	bps := []Breakpoint{
		{Name: "sm", MinWidth: 640, Columns: 2},
		{Name: "md", MinWidth: 768, Columns: 3},
	}
	// Width below every tier falls back to the smallest tier.
	if got := Resolve(100, bps); got.Name != "sm" {
		t.Errorf("Resolve(100) = %q, want floor tier %q", got.Name, "sm")
	}
}

func TestResolve_EmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Resolve(nil) did not panic")
		}
	}()
	Resolve(100, nil)
}

func TestDefaultBreakpoints_SortedStrictlyAscending(t *testing.T) {
	for i := 1; i < len(DefaultBreakpoints); i++ {
		prev, curr := DefaultBreakpoints[i-1], DefaultBreakpoints[i]
		if curr.MinWidth <= prev.MinWidth {
			t.Errorf("DefaultBreakpoints[%d].MinWidth = %d, not greater than %d", i, curr.MinWidth, prev.MinWidth)
		}
	}
}
