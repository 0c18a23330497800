package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/utils"
)

const slowRequestThreshold = 2 * time.Second

// RequestLogger logs every request once it completes and warns about slow ones.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		ip, _ := utils.GetIP(r)
		entry := logger.Log.WithFields(logrus.Fields{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    ww.Status(),
			"duration":  duration,
			"remote_ip": ip,
		})
		if duration > slowRequestThreshold {
			entry.Warn("slow request")
			return
		}
		entry.Info("request completed")
	})
}
