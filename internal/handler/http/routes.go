// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Route("/api/v1", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/encryption/salt", h.getSalt)
			r.Post("/encryption/validate-key", h.validateKey)
			r.Post("/encryption/change-pin", h.changePin)
			r.Get("/periods/current", h.currentPeriod)

			// routes that decrypt or encrypt amounts
			r.Group(func(r chi.Router) {
				r.Use(h.withClientKey)

				r.Get("/budgets/{budgetID}/consumption", h.budgetConsumption)
				r.Get("/budgets/{budgetID}/summary", h.budgetSummary)
				r.Post("/budgets/{budgetID}/transactions", h.createTransaction)
			})
		})
	})

	return router
}
