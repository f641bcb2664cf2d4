package module

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
)

type fakeModule struct {
	name  string
	mount string
	calls *[]string
}

func (m *fakeModule) Name() string  { return m.name }
func (m *fakeModule) Mount() string { return m.mount }

func (m *fakeModule) Register(_ huma.API, _ chi.Router) {
	*m.calls = append(*m.calls, m.name)
}

func TestRegistryRegistersInOrder(t *testing.T) {
	var calls []string
	reg := NewRegistry(
		&fakeModule{name: "first", mount: "/first", calls: &calls},
		&fakeModule{name: "second", mount: "/second", calls: &calls},
	)
	reg.Add(&fakeModule{name: "third", mount: "/third", calls: &calls})

	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("test", "test"))
	reg.RegisterAll(api, router)

	want := []string{"first", "second", "third"}
	if len(calls) != len(want) {
		t.Fatalf("expected %d registrations, got %d", len(want), len(calls))
	}
	for i, name := range want {
		if calls[i] != name {
			t.Fatalf("expected registration %d to be %s, got %s", i, name, calls[i])
		}
	}
}

func TestRegistryExposesModules(t *testing.T) {
	var calls []string
	m := &fakeModule{name: "only", mount: "/only", calls: &calls}
	reg := NewRegistry(m)

	mods := reg.Modules()
	if len(mods) != 1 || mods[0].Name() != "only" {
		t.Fatalf("expected registry to expose the registered module, got %v", mods)
	}
}
