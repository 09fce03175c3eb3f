package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

func setupServer(services *Services) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	r.Route("/api/v1", func(r chi.Router) {
		services.Users.RegisterRoutes(r)
		services.Events.RegisterRoutes(r)
		services.Leagues.RegisterRoutes(r)
		services.Predictions.RegisterRoutes(r)
		services.Standings.RegisterRoutes(r)
	})

	setupHealthCheck(r)

	handler := c.Handler(r)

	// HTTP/2 without TLS for local and in-cluster traffic
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", getEnvAsInt("PORT", 8080)),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func setupHealthCheck(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
