package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridboard/gridboard/pkg/component"
	"github.com/gridboard/gridboard/pkg/prefs"
)

func newTestServer(t *testing.T) (*Server, prefs.Store) {
	t.Helper()
	store := prefs.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	return New(store, nil), store
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGet_Missing(t *testing.T) {
	s, _ := newTestServer(t)
	rec := do(t, s, http.MethodGet, "/layouts/user-1", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body struct{ Code string }
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "NOT_FOUND" {
		t.Errorf("code = %q, want NOT_FOUND", body.Code)
	}
}

func TestPatchThenGet(t *testing.T) {
	s, _ := newTestServer(t)

	comps := []component.Component{
		{ID: "c1", Title: "Orders", Kind: component.KindTable, Visible: true},
	}
	theme := "light"
	rec := do(t, s, http.MethodPatch, "/layouts/user-1", prefs.Patch{
		Components: &comps,
		Theme:      &theme,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, s, http.MethodGet, "/layouts/user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var doc prefs.LayoutDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Key != "user-1" {
		t.Errorf("key = %q, want user-1", doc.Key)
	}
	if doc.Theme != "light" {
		t.Errorf("theme = %q, want light", doc.Theme)
	}
	if len(doc.Components) != 1 || doc.Components[0].ID != "c1" {
		t.Errorf("unexpected components: %+v", doc.Components)
	}
	if doc.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped")
	}
}

func TestPatch_PartialLeavesRest(t *testing.T) {
	s, _ := newTestServer(t)

	theme := "dark"
	anims := true
	do(t, s, http.MethodPatch, "/layouts/k", prefs.Patch{Theme: &theme, Animations: &anims})

	theme2 := "light"
	do(t, s, http.MethodPatch, "/layouts/k", prefs.Patch{Theme: &theme2})

	rec := do(t, s, http.MethodGet, "/layouts/k", nil)
	var doc prefs.LayoutDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Theme != "light" {
		t.Errorf("theme = %q, want light", doc.Theme)
	}
	if !doc.Animations {
		t.Error("animations flag lost by partial patch")
	}
}

func TestPatch_BadBody(t *testing.T) {
	s, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodPatch, "/layouts/k", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	s, _ := newTestServer(t)
	theme := "dark"
	do(t, s, http.MethodPatch, "/layouts/k", prefs.Patch{Theme: &theme})

	rec := do(t, s, http.MethodDelete, "/layouts/k", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	rec = do(t, s, http.MethodGet, "/layouts/k", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rec.Code)
	}

	// Deleting again is idempotent.
	rec = do(t, s, http.MethodDelete, "/layouts/k", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("second delete = %d, want 204", rec.Code)
	}
}
