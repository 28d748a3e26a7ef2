// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds the response headers appropriate for a headless JSON
// API that hands out rendered user content.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type; the
		// API mixes JSON with image and PDF payloads.
		h.Set("X-Content-Type-Options", "nosniff")

		// No page here has any business inside a frame.
		h.Set("X-Frame-Options", "DENY")

		// API responses carry no referrer-worthy navigation.
		h.Set("Referrer-Policy", "no-referrer")

		// Previews and exports embed customer designs; keep them out of
		// shared caches.
		h.Set("Cache-Control", "no-store")

		next.ServeHTTP(w, r)
	})
}
