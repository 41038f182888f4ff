package document

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/errors"
)

func sampleComponents() []component.Component {
	return []component.Component{
		{
			ID:        "id-1",
			Kind:      component.KindChart,
			Title:     "Orders",
			Position:  component.Position{X: 10, Y: 20},
			Size:      component.Size{Width: 300, Height: 200, MinWidth: 100},
			Draggable: true,
			Resizable: true,
			Visible:   true,
			Config:    map[string]any{"series": "orders"},
		},
		{
			ID:       "id-2",
			Kind:     component.KindTable,
			Position: component.Position{X: 350, Y: 20},
			Size:     component.Size{Width: 400, Height: 200},
			Visible:  true,
		},
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	orig := sampleComponents()

	data, err := Export(orig)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	got, err := Import(data)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}

	if len(got) != len(orig) {
		t.Fatalf("Import() returned %d components, want %d", len(got), len(orig))
	}
	origIDs := map[string]bool{"id-1": true, "id-2": true}
	seen := map[string]bool{}
	for i := range got {
		if origIDs[got[i].ID] {
			t.Errorf("component %d kept imported id %q", i, got[i].ID)
		}
		if seen[got[i].ID] {
			t.Errorf("duplicate regenerated id %q", got[i].ID)
		}
		seen[got[i].ID] = true

		// Every field except the id survives the round trip.
		want := orig[i]
		want.ID = got[i].ID
		wantJSON, _ := json.Marshal(want)
		gotJSON, _ := json.Marshal(got[i])
		if string(wantJSON) != string(gotJSON) {
			t.Errorf("component %d changed:\n got %s\nwant %s", i, gotJSON, wantJSON)
		}
	}
}

func TestExport_HasVersionAndTimestamp(t *testing.T) {
	data, err := Export(sampleComponents())
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("export not valid JSON: %v", err)
	}
	if _, ok := raw["version"]; !ok {
		t.Error("export missing version tag")
	}
	if _, ok := raw["timestamp"]; !ok {
		t.Error("export missing timestamp")
	}
}

func TestImport_EmptyComponents(t *testing.T) {
	got, err := Import([]byte(`{"components":[]}`))
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Import() returned %d components, want 0", len(got))
	}
}

func TestImport_NotJSON(t *testing.T) {
	_, err := Import([]byte("not json"))
	if !errors.Is(err, errors.ErrCodeInvalidLayoutFormat) {
		t.Errorf("Import(not json) error = %v, want INVALID_LAYOUT_FORMAT", err)
	}
}

func TestImport_MissingComponents(t *testing.T) {
	_, err := Import([]byte(`{"version":"1"}`))
	if !errors.Is(err, errors.ErrCodeInvalidLayoutFormat) {
		t.Errorf("Import(no components) error = %v, want INVALID_LAYOUT_FORMAT", err)
	}
}

func TestImport_ComponentsNotArray(t *testing.T) {
	_, err := Import([]byte(`{"components":"nope"}`))
	if !errors.Is(err, errors.ErrCodeInvalidLayoutFormat) {
		t.Errorf("Import(bad components) error = %v, want INVALID_LAYOUT_FORMAT", err)
	}
}

func TestImport_ComponentsNull(t *testing.T) {
	_, err := Import([]byte(`{"components":null}`))
	if !errors.Is(err, errors.ErrCodeInvalidLayoutFormat) {
		t.Errorf("Import(null components) error = %v, want INVALID_LAYOUT_FORMAT", err)
	}
}

func TestParse_UnknownFieldsRoundTrip(t *testing.T) {
	in := `{"components":[],"dashboard_theme":"dark","pinned":[1,2,3]}`

	d, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	out, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(out, &raw); err != nil {
		t.Fatalf("re-export not valid JSON: %v", err)
	}
	if string(raw["dashboard_theme"]) != `"dark"` {
		t.Errorf("dashboard_theme = %s, want %q round-tripped", raw["dashboard_theme"], "dark")
	}
	if string(raw["pinned"]) != `[1,2,3]` {
		t.Errorf("pinned = %s, want [1,2,3] round-tripped", raw["pinned"])
	}
}

func TestWriteRead_RoundTrip(t *testing.T) {
	d := New(sampleComponents())

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if got.Version != Version {
		t.Errorf("Version = %q, want %q", got.Version, Version)
	}
	if len(got.Components) != len(d.Components) {
		t.Errorf("Read() returned %d components, want %d", len(got.Components), len(d.Components))
	}
	// Read preserves ids; only Import regenerates them.
	if got.Components[0].ID != "id-1" {
		t.Errorf("Read() changed component id to %q", got.Components[0].ID)
	}
}
