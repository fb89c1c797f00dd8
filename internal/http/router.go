package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/contaro/docintel/internal/http/chart"
	"github.com/contaro/docintel/internal/http/document"
)

func New(
	documentsV1 *document.Handler,
	chartV1 *chart.Handler,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		if authSecret != "" {
			r.Use(Bearer(authSecret))
		}

		r.Route("/documents", documentsV1.Routes)

		r.Route("/accounts", func(r chi.Router) {
			chartV1.Routes(r)
		})
	})

	return router
}
