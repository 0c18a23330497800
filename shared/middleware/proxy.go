package middleware

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/threads-be/threads/shared/logger"
)

// TrustProxies lets requests arriving from one of proxies (IPs or CIDRs) set
// the client address through X-Real-IP or X-Forwarded-For. Requests from any
// other peer keep their RemoteAddr.
func TrustProxies(proxies []string) func(http.Handler) http.Handler {
	prefixes := parsePrefixes(proxies)
	return func(next http.Handler) http.Handler {
		if len(prefixes) == 0 {
			return next
		}
		realIP := chimw.RealIP(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if trusted(prefixes, r.RemoteAddr) {
				realIP.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parsePrefixes(proxies []string) []netip.Prefix {
	prefixes := make([]netip.Prefix, 0, len(proxies))
	for _, p := range proxies {
		p = strings.TrimSpace(p)
		if prefix, err := netip.ParsePrefix(p); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(p); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		logger.Log.WithField("proxy", p).Warn("ignoring invalid trusted proxy")
	}
	return prefixes
}

func trusted(prefixes []netip.Prefix, remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range prefixes {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
