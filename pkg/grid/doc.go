// Package grid implements the adaptive grid layout engine: breakpoint
// resolution, column and item-size arithmetic, row-major placement,
// collision resolution, and bounds validation.
//
// All functions in this package are pure and total. Degenerate numeric
// input (zero or negative widths, zero columns) produces degenerate but
// defined output rather than an error; the stateful layers above surface
// recoverable errors, never the geometry.
//
// # Layout Pass
//
// A full layout pass composes the pieces in order:
//
//	bp := grid.Resolve(width, cfg.Breakpoints)
//	placed := grid.Optimize(components, width, cfg)
//	placed, capHit := grid.ResolveCollisions(placed, bp.Gap)
//
// or use [Apply], which does exactly that. The capHit flag reports that the
// collision retry budget was exhausted and a residual overlap may remain;
// callers surface it as a diagnostic, not an error.
//
// # Determinism
//
// Recomputing with the same inputs always yields the same output, so resize
// observation is idempotent. Components are never reordered: input order
// determines row-major slot order, and reordering is a gesture concern
// handled by the customization controller.
package grid
