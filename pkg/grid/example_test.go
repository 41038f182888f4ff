package grid_test

import (
	"fmt"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/grid"
)

// Lay out three dashboard components for a desktop-width container.
func ExampleApply() {
	components := []component.Component{
		{ID: "orders", Kind: component.KindTable, Visible: true},
		{ID: "fleet", Kind: component.KindChart, Visible: true},
		{ID: "alerts", Kind: component.KindWidget, Visible: true},
	}

	placed, capHit := grid.Apply(components, 1024, grid.Config{})
	fmt.Println("residual overlap:", capHit)
	for _, c := range placed {
		fmt.Printf("%s at (%d,%d) %dx%d\n",
			c.ID, c.Position.X, c.Position.Y, c.Size.Width, c.Size.Height)
	}
	// Output:
	// residual overlap: false
	// orders at (24,24) 226x226
	// fleet at (274,24) 226x226
	// alerts at (524,24) 226x226
}

func ExampleResolve() {
	bps := []grid.Breakpoint{
		{Name: "xs", MinWidth: 0, Columns: 1},
		{Name: "sm", MinWidth: 640, Columns: 2},
		{Name: "md", MinWidth: 768, Columns: 3},
	}
	fmt.Println(grid.Resolve(700, bps).Name)
	fmt.Println(grid.Resolve(10, bps).Name)
	fmt.Println(grid.Resolve(1000, bps).Name)
	// Output:
	// sm
	// xs
	// md
}

func ExampleColumns() {
	fmt.Println(grid.Columns(1000, 200, 24, 0))
	// Output: 4
}
