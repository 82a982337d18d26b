package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes reading and writing local tiers only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/foods", h.listRecentFoods)
		r.Post("/api/foods", h.createFood)
		r.Get("/api/foods/counts", h.countFoods)
		r.Post("/api/foods/community", h.contributeFood)
		r.Get("/api/foods/{id}", h.getFood)
		r.Put("/api/foods/{id}", h.updateFood)
		r.Delete("/api/foods/{id}", h.deleteFood)
	})

	// routes that may reach Open Food Facts
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.externalRateLimit())

		r.Get("/api/foods/search", h.searchFoods)
		r.Get("/api/foods/external-search", h.searchExternalFoods)
		r.Get("/api/foods/barcode/{code}", h.resolveBarcode)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// externalRateLimit limits requests per client IP on routes that can trigger
// outbound calls. A non-positive request count disables the limit.
func (h *Handler) externalRateLimit() func(http.Handler) http.Handler {
	if h.rateLimitRequests <= 0 || h.rateLimitWindow <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.rateLimitRequests,
		h.rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeJSONError(w, r, "too many requests", http.StatusTooManyRequests, nil)
		}),
	)
}
