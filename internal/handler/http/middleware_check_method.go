// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-keeper/internal/utils"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method gets 404 instead of 405,
// so route existence is not revealed. If the method does match after all the
// request is served by the router.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}
		routeNotFound(w, r)
	}
}

func routeNotFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
