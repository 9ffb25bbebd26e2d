package cli

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nmlgraph/nmlgraph/pkg/cache"
	"github.com/nmlgraph/nmlgraph/pkg/nml"
	"github.com/nmlgraph/nmlgraph/pkg/topology"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	m := topology.NewManager()
	sw1, err := m.CreateNode(nml.WithName("sw1"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.CreateBiport(sw1, nml.WithName("sw1:p1")); err != nil {
		t.Fatal(err)
	}
	return newTestCLI().newRouter(m, cache.NewNullCache())
}

func TestServeHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestServeTopologyXML(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topology.xml", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "<nml:Node ") {
		t.Errorf("body missing node element:\n%s", rec.Body.String())
	}
}

func TestServeTopologyDOT(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/topology.dot", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "graph topology {") {
		t.Errorf("body is not DOT:\n%s", rec.Body.String())
	}
}

func TestServeNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
