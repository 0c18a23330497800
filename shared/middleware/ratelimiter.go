package middleware

import (
	"net/http"

	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/middleware/ratelimiter"
	"github.com/threads-be/threads/shared/utils"
)

// RateLimit rejects requests whose identity ran out of tokens with 429.
func RateLimit(rl *ratelimiter.Limiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				logger.Log.WithField("identity", identity).Warn("rate limit exceeded")
				utils.WriteErrorAndStatusCode(w, &errors.ErrorWithStatusCode{
					Message:    "Too many requests, try again later!",
					StatusCode: http.StatusTooManyRequests,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP keys the limiter by client IP.
func RateLimitByIP(rl *ratelimiter.Limiter) func(http.Handler) http.Handler {
	return RateLimit(rl, utils.GetIP)
}
