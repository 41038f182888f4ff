package document

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gridboard/gridboard/pkg/component"
)

// Export stamps a versioned document around components and returns the
// serialized JSON bytes.
func Export(components []component.Component) ([]byte, error) {
	return Marshal(New(components))
}

// Marshal serializes a document to pretty-printed JSON.
func Marshal(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Write encodes a document as JSON and writes it to w.
// The output can be re-imported with [Read] for round-trip processing.
func Write(d Document, w io.Writer) error {
	data, err := Marshal(d)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteFile writes a document to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func WriteFile(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}
