package httpx

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/greengrove/order-intake/internal/order-intake/infra/httpx/middlewares"
)

// NewRouter returns the concrete *chi.Mux (not http.Handler) because the
// Lambda entrypoint hands it to the API Gateway proxy adapter directly.
func NewRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.AttachRequestMetadata)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/order", handler.PlaceOrder)
	return r
}
