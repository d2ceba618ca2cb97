package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/encoder/register", h.register)
		r.Post("/api/encoder/login", h.login)
		r.Get("/api/version/", h.getVersion)
	})

	// routes that require an authenticated encoder
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/residents", h.createResident)
		r.Get("/api/residents", h.searchResidents)
		r.Get("/api/residents/{id}", h.getResident)
		r.Put("/api/residents/{id}", h.updateResident)
		r.Delete("/api/residents/{id}", h.deleteResident)

		r.Post("/api/households", h.createHousehold)
		r.Get("/api/households/{id}", h.getHousehold)

		r.Post("/api/validate/resident", h.validateResident)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
