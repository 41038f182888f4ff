// Package document implements the serialized layout document format used
// for export, import, and sharing of grid layouts.
//
// The wire format is a JSON object with a version tag, an export timestamp,
// and the component list:
//
//	{
//	  "version": "1",
//	  "timestamp": "2026-08-26T12:00:00Z",
//	  "components": [ ... ]
//	}
//
// Unknown top-level fields are captured on parse and written back untouched
// on export, so documents produced by newer tools survive a round trip
// through this implementation. Import always regenerates every component
// id: imported data must never collide with ids already in use.
package document

import (
	"encoding/json"
	"time"

	"github.com/gridboard/gridboard/pkg/component"
)

// Version is the current layout document format version.
const Version = "1"

// Document is a serialized layout snapshot.
type Document struct {
	Version    string
	Timestamp  time.Time
	Components []component.Component

	// Extra holds unknown top-level fields captured during parsing. They
	// are re-emitted verbatim on export and otherwise ignored.
	Extra map[string]json.RawMessage
}

// New stamps a fresh document around the given components. The component
// slice is deep-copied so later mutations do not leak into the snapshot.
func New(components []component.Component) Document {
	return Document{
		Version:    Version,
		Timestamp:  time.Now().UTC(),
		Components: component.CloneAll(components),
	}
}

// MarshalJSON emits the known fields plus any round-tripped extras.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+3)
	for k, v := range d.Extra {
		out[k] = v
	}

	var err error
	if out["version"], err = json.Marshal(d.Version); err != nil {
		return nil, err
	}
	if out["timestamp"], err = json.Marshal(d.Timestamp.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	comps := d.Components
	if comps == nil {
		comps = []component.Component{}
	}
	if out["components"], err = json.Marshal(comps); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON parses the known fields and stashes everything else in
// Extra for round-trip fidelity.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*d = Document{}
	if v, ok := raw["version"]; ok {
		if err := json.Unmarshal(v, &d.Version); err != nil {
			return err
		}
		delete(raw, "version")
	}
	if v, ok := raw["timestamp"]; ok {
		var ts string
		if err := json.Unmarshal(v, &ts); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return err
		}
		d.Timestamp = parsed
		delete(raw, "timestamp")
	}
	if v, ok := raw["components"]; ok {
		if err := json.Unmarshal(v, &d.Components); err != nil {
			return err
		}
		delete(raw, "components")
	}
	if len(raw) > 0 {
		d.Extra = raw
	}
	return nil
}
