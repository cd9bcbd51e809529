// Package http wires the catalog's JSON API: public catalog reads and
// token-gated offer administration.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// RouterConfig holds the transport-level knobs.
type RouterConfig struct {
	// AdminToken gates the /admin routes. An empty token disables all
	// admin access rather than opening it.
	AdminToken string
	// PublicRPS and PublicBurst shape the shared public rate limit.
	PublicRPS   float64
	PublicBurst int
	// RequestTimeout bounds a whole request including storage calls.
	RequestTimeout time.Duration
}

// NewRouter assembles the service's routes.
func NewRouter(catalog *CatalogHandler, offers *OffersHandler, cfg RouterConfig) http.Handler {
	if cfg.PublicRPS <= 0 {
		cfg.PublicRPS = 50
	}
	if cfg.PublicBurst <= 0 {
		cfg.PublicBurst = 100
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	limiter := rate.NewLimiter(rate.Limit(cfg.PublicRPS), cfg.PublicBurst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(rateLimit(limiter))
			r.Get("/catalog/products", catalog.ListProducts)
			r.Get("/catalog/products/{slug}", catalog.GetProduct)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin(cfg.AdminToken))
			r.Get("/offers", offers.ListOffers)
			r.Post("/offers", offers.CreateOffer)
			r.Get("/offers/{id}", offers.GetOffer)
			r.Put("/offers/{id}", offers.UpdateOffer)
			r.Delete("/offers/{id}", offers.DeleteOffer)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	return r
}
