// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// Instead of chi's 405 it answers 404 with a JSON error, so a caller using
// an unsupported method cannot tell which paths exist.
//
// chi calls it only after a path matched; the method is re-checked with
// [chi.Mux.Match] so parameterised routes such as /api/foods/{id} behave the
// same as static ones.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		writeJSONError(w, r, http.StatusText(http.StatusNotFound), http.StatusNotFound, nil)
	}
}
