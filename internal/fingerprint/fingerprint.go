// Package fingerprint derives an opaque device identity from request
// metadata. The hash is one-way; the raw address and user agent are never
// stored or returned to clients.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// FromRequest hashes the client network address and user agent into a
// stable device fingerprint. The address is taken from the first
// X-Forwarded-For entry, then X-Real-IP, then CF-Connecting-IP.
func FromRequest(r *http.Request) string {
	ip := clientIP(r)
	ua := r.UserAgent()

	sum := sha256.Sum256([]byte(ip + "|" + ua))
	return hex.EncodeToString(sum[:])
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return ""
}
