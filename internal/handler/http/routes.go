// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-config-access/internal/utils"
	"github.com/MKhiriev/go-config-access/models"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json"))
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	kv := models.KVRoute + "*"
	tree := strings.TrimSuffix(models.TreeRoute, "/")

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get(models.VersionRoute, h.getServerVersion)
		r.Get(kv, h.getValue)
		r.Head(kv, h.valueExists)
		r.Get(tree, h.getTree)
		r.Get(models.TreeRoute+"*", h.getTree)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put(kv, h.putValue)
	})

	router.MethodNotAllowed(methodNotAllowed)
	router.NotFound(notFound)

	return router
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "method "+r.Method+" is not allowed", http.StatusMethodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "no route for "+r.URL.Path, http.StatusNotFound)
}
