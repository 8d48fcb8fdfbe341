// Package clientip extracts real client IP addresses from HTTP requests.
//
// Proxy headers are checked in priority order: CF-Connecting-IP (Cloudflare),
// DO-Connecting-IP (DigitalOcean), X-Forwarded-For, X-Real-IP, then the
// connection's RemoteAddr. All candidates are validated and normalized;
// unspecified addresses like 0.0.0.0 are rejected.
//
//	ip := clientip.GetIP(r)
//	result, err := limiter.Allow(r.Context(), ip)
package clientip
