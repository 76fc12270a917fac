package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cwehmeyer/belegwerk/internal/auth"
	"github.com/cwehmeyer/belegwerk/internal/http/customer"
	"github.com/cwehmeyer/belegwerk/internal/http/openitem"
	"github.com/cwehmeyer/belegwerk/internal/http/receipt"
	"github.com/cwehmeyer/belegwerk/internal/http/ustva"
)

func New(
	authn *auth.Authenticator,
	customersV1 *customer.Handler,
	receiptsV1 *receipt.Handler,
	ustvaV1 *ustva.Handler,
	openItemsV1 *openitem.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(authn.Middleware)

		r.Route("/customers", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			customersV1.Routes(r)
		})

		r.Route("/receipts", receiptsV1.Routes)

		r.Route("/ustva", func(r chi.Router) {
			ustvaV1.Routes(r)
		})

		r.Route("/open-items", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			openItemsV1.Routes(r)
		})
	})

	return router
}
