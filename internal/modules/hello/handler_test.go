package hello

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/fxamacker/cbor/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/micfx/starter/internal/assets"
	"github.com/micfx/starter/internal/logging"
	appmiddleware "github.com/micfx/starter/internal/middleware"
	"github.com/micfx/starter/internal/respond"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(
		appmiddleware.RequestID(),
		chimiddleware.RealIP,
		logging.RequestLogger(),
		respond.Recoverer(),
	)
	cfg := huma.DefaultConfig("HelloTest", "test")
	cfg.CreateHooks = nil
	api := humachi.New(router, cfg)

	manifest := &assets.Manifest{Entries: map[string]string{"app.css": "/dist/app-4f9c21ab.css"}}
	New(assets.NewResolver(manifest)).Register(api, router)
	return router
}

func TestIndexRendersView(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/Hello", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("expected text/html, got %s", ct)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `href="/dist/app-4f9c21ab.css"`) {
		t.Errorf("expected hashed stylesheet href in body:\n%s", body)
	}
}

func TestTestReturnsExactJSONBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/Hello/test", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if body := strings.TrimSpace(resp.Body.String()); body != `{"message":"Hello from MicFx!"}` {
		t.Errorf("expected exact greeting body, got %s", body)
	}
}

func TestTestNegotiatesCBOR(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/Hello/test", nil)
	req.Header.Set("Accept", "application/cbor")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "application/cbor" {
		t.Errorf("expected application/cbor, got %s", ct)
	}

	var data Data
	if err := cbor.Unmarshal(resp.Body.Bytes(), &data); err != nil {
		t.Fatalf("cbor unmarshal: %v", err)
	}
	if data.Message != Greeting {
		t.Errorf("expected %q, got %q", Greeting, data.Message)
	}
}

func TestEndpointsAreIdempotent(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/Hello", "/Hello/test"} {
		var first string
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != http.StatusOK {
				t.Fatalf("%s call %d: expected 200, got %d", path, i, resp.Code)
			}
			if i == 0 {
				first = resp.Body.String()
				continue
			}
			if resp.Body.String() != first {
				t.Fatalf("%s: expected identical output on repeated calls", path)
			}
		}
	}
}

func TestModuleMetadata(t *testing.T) {
	m := New(assets.NewResolver(nil))
	if m.Name() != "hello" {
		t.Errorf("expected module name hello, got %s", m.Name())
	}
	if m.Mount() != "/Hello" {
		t.Errorf("expected mount /Hello, got %s", m.Mount())
	}
}
