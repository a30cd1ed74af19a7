package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/khata-app/khata/internal/auth"
	"github.com/khata-app/khata/internal/http/dashboard"
	"github.com/khata-app/khata/internal/http/folio"
	"github.com/khata-app/khata/internal/http/ledger"
	"github.com/khata-app/khata/internal/http/respond"
	"github.com/khata-app/khata/internal/http/transaction"
)

// New assembles the API router. Everything under /api/v1 requires a valid
// bearer token; /healthz is open for load balancer probes.
func New(
	secret string,
	foliosV1 *folio.Handler,
	transactionsV1 *transaction.Handler,
	ledgerV1 *ledger.Handler,
	dashboardV1 *dashboard.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(secret))

		r.Route("/folios", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			foliosV1.Routes(r)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		// The ledger routes include a multipart upload, so the JSON
		// content-type guard stays off this subtree.
		r.Route("/ledger", ledgerV1.Routes)

		r.Route("/dashboard", dashboardV1.Routes)
	})

	return router
}
