// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mockapi

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/appybrain-client/internal/utils"
)

const requestIDHeader = "X-Request-ID"

// withRequestID echoes the caller's request id, or a fresh one, and attaches
// it to the request-scoped logger.
func (h *Handler) withRequestID(next http.Handler) http.Handler {
	ids := utils.NewUUIDGenerator()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = ids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("request_id", requestID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
