package clientip

import (
	"net"
	"net/http"
	"strings"
)

// proxyHeaders are checked in priority order, most reliable first.
var proxyHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP extracts the real client IP address from the request.
// Proxy headers are checked in priority order before falling back to
// RemoteAddr. Returns the raw RemoteAddr if no valid IP can be determined.
func GetIP(r *http.Request) string {
	for _, header := range proxyHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may contain a chain "client, proxy1, proxy2";
		// the leftmost entry is the original client.
		if idx := strings.IndexByte(value, ','); idx >= 0 {
			value = value[:idx]
		}

		if ip := normalizeIP(strings.TrimSpace(value)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if ip := normalizeIP(host); ip != "" {
		return ip
	}

	return r.RemoteAddr
}

// normalizeIP validates and normalizes an IP string.
// Returns empty string for invalid or unspecified (0.0.0.0, ::) addresses.
func normalizeIP(s string) string {
	ip := net.ParseIP(s)
	if ip == nil || ip.IsUnspecified() {
		return ""
	}
	return ip.String()
}
