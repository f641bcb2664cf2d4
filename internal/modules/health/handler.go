package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
)

// Status is the payload for the health endpoint. The type name stays unique
// across modules because huma derives schema names from bare struct names.
type Status struct {
	Status string `json:"status" doc:"Service status" example:"healthy"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Status
}

// Module exposes the liveness endpoint.
type Module struct{}

// New builds the health module.
func New() *Module { return &Module{} }

func (m *Module) Name() string { return "health" }

func (m *Module) Mount() string { return "/health" }

// Register wires the health endpoint into the API.
func (m *Module) Register(api huma.API, _ chi.Router) {
	huma.Get(api, "/health", func(ctx context.Context, _ *struct{}) (*Output, error) {
		return &Output{Body: Status{Status: "healthy"}}, nil
	})
}
