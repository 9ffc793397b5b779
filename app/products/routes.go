package products

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bindkit/core/handler"
	"github.com/dmitrymomot/bindkit/core/response"
	"github.com/dmitrymomot/bindkit/middleware"
)

// Routes assembles the products API on a chi router. Routing itself is chi's
// concern; each route is a type-safe handler wrapped for the standard
// http.Handler interface, with request ID and logging middleware applied.
func Routes(h *Handlers, log *slog.Logger) http.Handler {
	factory := func(w http.ResponseWriter, r *http.Request) handler.Context {
		return handler.NewContext(w, r, chi.URLParam)
	}

	middlewares := []handler.Middleware[handler.Context]{
		middleware.RequestID[handler.Context](),
		middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log}),
	}

	wrap := func(fn handler.HandlerFunc[handler.Context]) http.HandlerFunc {
		fn = handler.Chain(fn, middlewares...)
		return handler.Wrap(fn, factory, response.JSONErrorHandler[handler.Context])
	}

	r := chi.NewRouter()
	r.Get("/products", wrap(h.ListProducts))
	r.Get("/products/{id}", wrap(h.GetProduct))
	r.Get("/products/page/{pageSize}", wrap(h.StreamProducts))
	r.Post("/products", wrap(h.CreateProduct))

	return r
}
