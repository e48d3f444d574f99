// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-config-access/internal/utils"
	"github.com/MKhiriev/go-config-access/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.VersionResponse{
		Version: h.settings.Version,
		Backend: h.settings.Backend,
	}, http.StatusOK)
}
