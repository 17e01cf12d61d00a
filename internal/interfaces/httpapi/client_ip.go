package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// resolveClientIP returns the peer address of r. Forwarded headers are only
// consulted when trustProxy is set, since any client can write them.
func resolveClientIP(r *http.Request, trustProxy bool) string {
	candidates := []string{r.RemoteAddr}
	if trustProxy {
		candidates = []string{
			r.Header.Get("Fly-Client-IP"),
			r.Header.Get("X-Forwarded-For"),
			r.Header.Get("X-Real-IP"),
			r.RemoteAddr,
		}
	}

	for _, candidate := range candidates {
		if ip := normalizeIP(candidate); ip != "" {
			return ip
		}
	}

	return ""
}

func normalizeIP(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.Contains(value, ",") {
		value = strings.TrimSpace(strings.Split(value, ",")[0])
	}

	if host, _, err := net.SplitHostPort(value); err == nil {
		value = strings.TrimSpace(host)
	}

	parsed := net.ParseIP(value)
	if parsed == nil {
		return ""
	}
	return parsed.String()
}
