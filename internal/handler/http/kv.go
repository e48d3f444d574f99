// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-config-access/internal/app"
	"github.com/MKhiriev/go-config-access/internal/logger"
	"github.com/MKhiriev/go-config-access/internal/utils"
	"github.com/MKhiriev/go-config-access/models"
)

// maxPutBody bounds the JSON body of a write.
const maxPutBody = 1 << 20

// routeKey returns the decoded key following route in the request path.
// Keys are canonical, so a decoded "/" always separates segments.
func routeKey(r *http.Request, route string) string {
	key := strings.TrimPrefix(r.URL.Path, strings.TrimSuffix(route, "/"))
	return strings.Trim(key, "/")
}

func (h *Handler) getValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := routeKey(r, models.KVRoute)

	h.mu.Lock()
	value, ok, err := h.conf.GetString(r.Context(), key)
	h.mu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "*Handler.getValue").Str("key", key).Msg("error reading value")
		writeBackendError(w, err)
		return
	}
	if !ok {
		utils.WriteError(w, app.MsgKeyNotFound, http.StatusNotFound)
		return
	}

	_, _ = utils.WriteJSON(w, models.Entry{Key: key, Value: value}, http.StatusOK)
}

func (h *Handler) valueExists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := routeKey(r, models.KVRoute)

	h.mu.Lock()
	ok, err := h.conf.Exists(r.Context(), key)
	h.mu.Unlock()

	switch {
	case err != nil:
		log.Err(err).Str("func", "*Handler.valueExists").Str("key", key).Msg("error checking value")
		w.WriteHeader(statusFromError(err))
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusOK)
	}
}

func (h *Handler) putValue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := routeKey(r, models.KVRoute)

	var req models.PutRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPutBody)).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.putValue").Msg("error decoding request body")
		utils.WriteError(w, app.MsgInvalidRequestBody, http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	err := h.conf.PutString(r.Context(), key, req.Value)
	h.mu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "*Handler.putValue").Str("key", key).Msg("error storing value")
		writeBackendError(w, err)
		return
	}

	writer, _ := utils.GetWriterFromContext(r.Context())
	log.Info().Str("key", key).Str("writer", writer).Msg("value stored")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getTree(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	scope := routeKey(r, models.TreeRoute)

	h.mu.Lock()
	entries, err := h.conf.GetRecursiveMap(r.Context(), scope)
	h.mu.Unlock()

	if err != nil {
		log.Err(err).Str("func", "*Handler.getTree").Str("scope", scope).Msg("error listing values")
		writeBackendError(w, err)
		return
	}

	// a value stored at the backend prefix itself has no path a client
	// could address
	delete(entries, "")

	_, _ = utils.WriteJSON(w, models.EntriesResponse{Scope: scope, Entries: entries}, http.StatusOK)
}
