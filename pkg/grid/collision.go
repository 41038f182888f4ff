package grid

import "github.com/gridboard/gridboard/pkg/component"

// DefaultRetryCap bounds how many single-step displacements the collision
// resolver attempts per component before giving up. Arbitrary component
// shapes packed into a grid are not always separable by vertical-only
// displacement in finite steps, so the resolver is best-effort: residual
// overlaps past the cap are accepted and reported via the capHit flag.
const DefaultRetryCap = 100

// ResolveCollisions removes overlaps between visible components by shifting
// later components down one grid unit (step) at a time until they no longer
// intersect any earlier component. Components are processed in input order
// against a growing set of already-placed rectangles; input order is
// preserved in the output. Invisible components pass through untouched and
// take no part in collision checks.
//
// The second return value reports whether any component exhausted
// [DefaultRetryCap] attempts while still overlapping. Callers surface that
// as a non-fatal residual-overlap diagnostic.
func ResolveCollisions(components []component.Component, step int) ([]component.Component, bool) {
	return ResolveCollisionsCap(components, step, DefaultRetryCap)
}

// ResolveCollisionsCap is ResolveCollisions with an explicit retry budget,
// exposed so tests can exercise cap exhaustion deterministically.
func ResolveCollisionsCap(components []component.Component, step, retryCap int) ([]component.Component, bool) {
	if step <= 0 {
		step = 1
	}
	out := component.CloneAll(components)
	placed := make([]component.Rect, 0, len(out))
	capHit := false

	for i := range out {
		if !out[i].Visible {
			continue
		}
		attempts := 0
		for overlapsAny(out[i].Rect(), placed) {
			if attempts >= retryCap {
				capHit = true
				break
			}
			out[i].Position.Y += step
			attempts++
		}
		placed = append(placed, out[i].Rect())
	}
	return out, capHit
}

// OverlapCount returns the number of strictly overlapping pairs among
// visible components. Useful as a layout-quality diagnostic and in tests.
func OverlapCount(components []component.Component) int {
	rects := make([]component.Rect, 0, len(components))
	for i := range components {
		if components[i].Visible {
			rects = append(rects, components[i].Rect())
		}
	}
	count := 0
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			if rects[i].Overlaps(rects[j]) {
				count++
			}
		}
	}
	return count
}

func overlapsAny(r component.Rect, placed []component.Rect) bool {
	for _, p := range placed {
		if r.Overlaps(p) {
			return true
		}
	}
	return false
}
