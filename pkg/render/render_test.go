package render

import (
	"strings"
	"testing"

	"github.com/gridboard/gridboard/pkg/component"
)

type stubRenderer struct{ out string }

func (s stubRenderer) Render(component.Component, int, int) string { return s.out }

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry(stubRenderer{out: "fallback"})
	r.Register(component.KindChart, stubRenderer{out: "chart"})

	if got := r.Render(component.Component{Kind: component.KindChart}, 10, 5); got != "chart" {
		t.Errorf("Render(chart) = %q, want chart renderer output", got)
	}
	if got := r.Render(component.Component{Kind: "holomap"}, 10, 5); got != "fallback" {
		t.Errorf("Render(unknown kind) = %q, want fallback output", got)
	}
}

func TestBuiltin_AllKindsRender(t *testing.T) {
	r := Builtin()
	kinds := []string{
		component.KindWidget,
		component.KindChart,
		component.KindTable,
		component.KindCustom,
		"something-new",
	}
	for _, kind := range kinds {
		c := component.Component{ID: "c1", Kind: kind, Title: "Box", Visible: true}
		out := r.Render(c, 20, 6)
		if out == "" {
			t.Errorf("Render(%s) produced empty output", kind)
		}
		if !strings.Contains(out, "Box") {
			t.Errorf("Render(%s) missing title:\n%s", kind, out)
		}
	}
}

func TestBuiltin_DegenerateBox(t *testing.T) {
	r := Builtin()
	c := component.Component{ID: "tiny", Kind: component.KindWidget, Visible: true}
	// Tiny boxes must render something rather than panic or go negative.
	if out := r.Render(c, 0, 0); out == "" {
		t.Error("Render(0x0) produced empty output")
	}
}
