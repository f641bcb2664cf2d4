// Package hello is the demonstration feature module: one server-rendered
// page and one JSON endpoint with a fixed greeting.
package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/micfx/starter/internal/assets"
	"github.com/micfx/starter/internal/logging"
	"github.com/micfx/starter/internal/respond"
	"github.com/micfx/starter/internal/views"
)

// Greeting is the fixed message returned by the test endpoint.
const Greeting = "Hello from MicFx!"

// Module serves the hello pages. The resolver maps the logical stylesheet
// name to the hashed href from the current asset build.
type Module struct {
	resolver *assets.Resolver
}

// New builds the hello module.
func New(resolver *assets.Resolver) *Module {
	return &Module{resolver: resolver}
}

func (m *Module) Name() string { return "hello" }

func (m *Module) Mount() string { return "/Hello" }

// Register wires the HTML view on the router and the JSON endpoint on the API.
func (m *Module) Register(api huma.API, r chi.Router) {
	r.Get("/Hello", m.index)

	huma.Register(api, huma.Operation{
		OperationID: "hello-test",
		Method:      http.MethodGet,
		Path:        "/Hello/test",
		Summary:     "Return the demo greeting",
		Tags:        []string{"hello"},
	}, test)
}

func (m *Module) index(w http.ResponseWriter, r *http.Request) {
	logging.LogInfo(r.Context(), "hello index", zap.String("path", "/Hello"))

	data := views.PageData{
		Title:          "Hello",
		StylesheetHref: m.resolver.Href("app.css"),
	}
	if err := views.Render(w, "hello.html", data); err != nil {
		logging.LogError(r.Context(), "failed to render hello view", err)
		respond.WriteProblem(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func test(ctx context.Context, _ *struct{}) (*TestOutput, error) {
	logging.LogInfo(ctx, "hello test", zap.String("path", "/Hello/test"))
	return &TestOutput{Body: Data{Message: Greeting}}, nil
}
