// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-qnexus/internal/logger"
	"github.com/MKhiriev/go-qnexus/internal/utils"
)

// verifyDigest checks the keyed BLAKE2b digest of non-empty request bodies
// against the X-Content-Digest header. It is a no-op when no hash key is
// configured.
func (h *Handler) verifyDigest(next http.Handler) http.Handler {
	if h.hasher == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, r, "*Handler.verifyDigest", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if len(body) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		digest := r.Header.Get(utils.DigestHeader)
		if !h.hasher.Verify(body, digest) {
			logger.FromRequest(r).Debug().Str("func", "*Handler.verifyDigest").
				Str("digest", digest).
				Int("body_size", len(body)).
				Msg("digest mismatch")
			writeError(w, r, "*Handler.verifyDigest", ErrIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
