// Package module holds the declarative registration glue between feature
// modules and the host router. Modules contribute metadata and a Register
// hook; routing, dispatch, and content negotiation stay with chi and huma.
package module

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/micfx/starter/internal/logging"
)

// Module is a self-contained feature unit mounted by the host at startup.
type Module interface {
	// Name identifies the module in logs and diagnostics.
	Name() string
	// Mount is the base route pattern the module claims.
	Mount() string
	// Register wires the module's routes. API operations go through api;
	// plain HTTP surfaces (HTML views, file handlers) go through r.
	Register(api huma.API, r chi.Router)
}

// Registry holds the ordered list of modules for a host instance.
type Registry struct {
	modules []Module
}

// NewRegistry builds a registry from the given modules, preserving order.
func NewRegistry(modules ...Module) *Registry {
	return &Registry{modules: modules}
}

// Add appends a module to the registry.
func (reg *Registry) Add(m Module) {
	reg.modules = append(reg.modules, m)
}

// Modules returns the registered modules in registration order.
func (reg *Registry) Modules() []Module {
	return reg.modules
}

// RegisterAll wires every module into the host, logging each mount.
func (reg *Registry) RegisterAll(api huma.API, r chi.Router) {
	for _, m := range reg.modules {
		m.Register(api, r)
		logging.Logger().Info("module registered",
			zap.String("module", m.Name()),
			zap.String("mount", m.Mount()),
		)
	}
}
