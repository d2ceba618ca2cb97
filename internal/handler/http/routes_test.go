package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/jdcruz/rbi-registry/internal/logger"
	"github.com/jdcruz/rbi-registry/internal/service"
	"github.com/jdcruz/rbi-registry/models"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires the handler's routes without the auth middleware so
// handler tests can exercise URL parameter extraction directly.
func newTestRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)

	router.Post("/api/encoder/register", h.register)
	router.Post("/api/encoder/login", h.login)
	router.Get("/api/version/", h.getVersion)

	router.Post("/api/residents", h.createResident)
	router.Get("/api/residents", h.searchResidents)
	router.Get("/api/residents/{id}", h.getResident)
	router.Put("/api/residents/{id}", h.updateResident)
	router.Delete("/api/residents/{id}", h.deleteResident)

	router.Post("/api/households", h.createHousehold)
	router.Get("/api/households/{id}", h.getHousehold)

	router.Post("/api/validate/resident", h.validateResident)

	return router
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	h := NewHandler(&service.Services{
		AuthService: &mockAuthService{},
	}, models.AppBuildInfo{Version: "test"}, logger.Nop())

	router := h.Init()

	protected := []struct {
		method string
		target string
	}{
		{http.MethodPost, "/api/residents"},
		{http.MethodGet, "/api/residents"},
		{http.MethodGet, "/api/residents/some-id"},
		{http.MethodPut, "/api/residents/some-id"},
		{http.MethodDelete, "/api/residents/some-id"},
		{http.MethodPost, "/api/households"},
		{http.MethodGet, "/api/households/some-id"},
		{http.MethodPost, "/api/validate/resident"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.target, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code, "unauthenticated request must be rejected")
		})
	}
}

func TestInit_VersionIsPublic(t *testing.T) {
	h := NewHandler(&service.Services{}, models.AppBuildInfo{Version: "1.2.3"}, logger.Nop())

	router := h.Init()
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1.2.3")
}

func TestInit_UnsupportedMethodHidesRoute(t *testing.T) {
	h := NewHandler(&service.Services{}, models.AppBuildInfo{Version: "test"}, logger.Nop())

	router := h.Init()
	req := httptest.NewRequest(http.MethodDelete, "/api/version/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	// unsupported methods answer 404, not 405, to avoid leaking route existence
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
