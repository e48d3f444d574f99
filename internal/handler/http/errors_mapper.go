// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-config-access/configuration"
	"github.com/MKhiriev/go-config-access/internal/app"
	"github.com/MKhiriev/go-config-access/internal/utils"
)

// errorStatuses is ordered: a path conflict is also a backend failure and
// must match first.
var errorStatuses = []struct {
	target error
	status int
}{
	{configuration.ErrPathConflict, http.StatusConflict},
	{configuration.ErrMalformedInput, http.StatusBadRequest},
	{configuration.ErrBackendFailure, http.StatusBadGateway},
	{configuration.ErrUnsupportedBackend, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeBackendError answers with the status matching err. Unclassified
// errors are not echoed to the caller.
func writeBackendError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		utils.WriteError(w, app.MsgInternalServerError, status)
		return
	}
	utils.WriteError(w, err.Error(), status)
}
