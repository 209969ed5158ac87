/**
 * @description
 * This file sets up the HTTP router for the agent ledger service. It defines
 * the API endpoints, associates them with their handlers, and applies the
 * standard middleware stack.
 *
 * @dependencies
 * - net/http: Standard Go library for HTTP functionality.
 * - github.com/go-chi/chi/v5: A lightweight and idiomatic router for Go.
 * - github.com/go-chi/cors: CORS middleware so the dashboard can be served
 *   from another origin during development.
 */

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Routes creates and returns the router for the ledger service.
func Routes(h *LedgerHandlers) http.Handler {
	r := chi.NewRouter()

	// Standard middleware for logging, panic recovery, and request timeouts.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("healthy"))
	})

	r.Get("/", h.HomeHandler)
	r.Get("/dashboard", h.DashboardHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/balance", h.BalanceHandler)
		r.Post("/transaction", h.TransactionHandler)
		r.Get("/transactions", h.TransactionsHandler)
	})

	return r
}
