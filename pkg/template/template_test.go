package template

import (
	"testing"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/errors"
)

func TestInstantiate_FreshIDs(t *testing.T) {
	r := Builtin()

	first, err := r.Instantiate(NameDefault)
	if err != nil {
		t.Fatalf("Instantiate() error: %v", err)
	}
	second, err := r.Instantiate(NameDefault)
	if err != nil {
		t.Fatalf("Instantiate() error: %v", err)
	}

	ids := make(map[string]bool)
	for _, c := range first {
		if c.ID == "" {
			t.Error("instantiated component has empty id")
		}
		if ids[c.ID] {
			t.Errorf("duplicate id %q within one instantiation", c.ID)
		}
		ids[c.ID] = true
	}
	for _, c := range second {
		if ids[c.ID] {
			t.Errorf("id %q reused across instantiations", c.ID)
		}
	}
}

func TestInstantiate_Unregistered(t *testing.T) {
	r := Builtin()
	_, err := r.Instantiate("nope")
	if !errors.Is(err, errors.ErrCodeTemplateNotFound) {
		t.Errorf("Instantiate(nope) error = %v, want TEMPLATE_NOT_FOUND", err)
	}
}

func TestInstantiate_IndependentCopies(t *testing.T) {
	r := Builtin()
	first, _ := r.Instantiate(NameDefault)
	second, _ := r.Instantiate(NameDefault)

	first[0].Config["mutated"] = true
	if _, ok := second[0].Config["mutated"]; ok {
		t.Error("instantiations share config maps")
	}
}

func TestBuiltin_Names(t *testing.T) {
	names := Builtin().Names()
	want := []string{NameAnalytics, NameDefault, NameMinimal, NameOperations}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q (sorted)", i, names[i], want[i])
		}
	}
}

func TestDuplicate(t *testing.T) {
	orig := component.Component{
		ID:       "orig-id",
		Kind:     component.KindChart,
		Title:    "Revenue",
		Position: component.Position{X: 100, Y: 60},
		Size:     component.Size{Width: 300, Height: 200},
		Visible:  true,
		Config:   map[string]any{"series": "revenue"},
	}

	copy1 := Duplicate(orig)
	copy2 := Duplicate(orig)

	if copy1.ID == orig.ID || copy2.ID == orig.ID || copy1.ID == copy2.ID {
		t.Errorf("Duplicate() ids not unique: %q, %q, %q", orig.ID, copy1.ID, copy2.ID)
	}
	if copy1.Title != "Revenue (Copy)" {
		t.Errorf("Duplicate() title = %q, want %q", copy1.Title, "Revenue (Copy)")
	}
	want := component.Position{X: 120, Y: 80}
	if copy1.Position != want {
		t.Errorf("Duplicate() position = %+v, want %+v", copy1.Position, want)
	}
	if copy1.Size != orig.Size {
		t.Errorf("Duplicate() size = %+v, want original %+v", copy1.Size, orig.Size)
	}
}

func TestDuplicate_FixedOffsetRegardlessOfOrigin(t *testing.T) {
	for _, pos := range []component.Position{{X: 0, Y: 0}, {X: 500, Y: 13}, {X: -20, Y: 7}} {
		c := component.Component{ID: "x", Position: pos}
		got := Duplicate(c)
		if got.Position.X-pos.X != CopyOffset || got.Position.Y-pos.Y != CopyOffset {
			t.Errorf("Duplicate() from %+v moved to %+v, want fixed +%d/+%d", pos, got.Position, CopyOffset, CopyOffset)
		}
	}
}

func TestDuplicate_UntitledUsesKind(t *testing.T) {
	c := component.Component{ID: "x", Kind: component.KindTable}
	if got := Duplicate(c).Title; got != "Table (Copy)" {
		t.Errorf("Duplicate() title = %q, want %q", got, "Table (Copy)")
	}
}
