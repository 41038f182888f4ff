package grid

import "github.com/gridboard/gridboard/pkg/component"

// Columns computes how many items of at least minItemWidth fit across a
// container, accounting for the gap between items:
//
//	floor((containerWidth - gap) / (minItemWidth + gap))
//
// The result is clamped to [1, maxColumns] when maxColumns > 0, and is
// always at least 1. A container width of zero or less yields one column,
// never zero or negative.
func Columns(containerWidth, minItemWidth, gap, maxColumns int) int {
	cols := 1
	if containerWidth > 0 && minItemWidth+gap > 0 {
		cols = (containerWidth - gap) / (minItemWidth + gap)
	}
	if cols < 1 {
		cols = 1
	}
	if maxColumns > 0 && cols > maxColumns {
		cols = maxColumns
	}
	return cols
}

// ItemSize splits the container width, minus the (columns-1) inner gaps,
// evenly across columns. Height defaults to the computed width (square
// items); components override it individually. Zero or negative inputs
// collapse the width to zero rather than going negative.
func ItemSize(containerWidth, columns, gap int) component.Size {
	if columns < 1 {
		columns = 1
	}
	w := (containerWidth - (columns-1)*gap) / columns
	if w < 0 {
		w = 0
	}
	return component.Size{Width: w, Height: w}
}

// PositionAt computes the row-major position for the item at the given
// slot index: col = index mod columns, row = index / columns.
func PositionAt(index, columns, itemWidth, itemHeight, gap int) component.Position {
	if columns < 1 {
		columns = 1
	}
	col := index % columns
	row := index / columns
	return component.Position{
		X: col * (itemWidth + gap),
		Y: row * (itemHeight + gap),
	}
}
