package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/errors"
)

// Parse decodes a layout document from JSON bytes.
//
// The input must be a JSON object with a "components" array; a document
// without one fails with [errors.ErrCodeInvalidLayoutFormat], as does any
// malformed JSON. The version and timestamp fields are optional on input:
// older exports without them still parse. Unknown top-level fields are
// preserved in the document's Extra map.
//
// Parse does not touch component ids; use [Import] when the components are
// about to join a live layout.
func Parse(data []byte) (Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidLayoutFormat, err, "layout document is not valid JSON")
	}
	rawComponents, ok := probe["components"]
	if !ok || string(bytes.TrimSpace(rawComponents)) == "null" {
		return Document{}, errors.New(errors.ErrCodeInvalidLayoutFormat, "layout document has no components array")
	}
	var comps []component.Component
	if err := json.Unmarshal(rawComponents, &comps); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidLayoutFormat, err, "components field is not a component array")
	}

	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidLayoutFormat, err, "decode layout document")
	}
	if d.Components == nil {
		d.Components = []component.Component{}
	}
	return d, nil
}

// Import parses a layout document and returns its components with every id
// regenerated. Imported components must never collide with existing ids,
// so the ids in the source document are discarded unconditionally.
func Import(data []byte) ([]component.Component, error) {
	d, err := Parse(data)
	if err != nil {
		return nil, err
	}
	out := d.Components
	for i := range out {
		out[i].ID = component.NewID()
	}
	return out, nil
}

// Read decodes a layout document from r. Read does not close r.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read: %w", err)
	}
	return Parse(data)
}

// ReadFile reads a layout document from a JSON file at path.
func ReadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
