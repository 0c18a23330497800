package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/gorilla/handlers"

	"github.com/threads-be/threads/backend/internal/setup"
	mw "github.com/threads-be/threads/shared/middleware"
	"github.com/threads-be/threads/shared/middleware/metrics"
	rl "github.com/threads-be/threads/shared/middleware/ratelimiter"
)

const rateLimiterIdleTTL = time.Hour

// New creates a chi router with all the routes mounted under the api prefix.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config.Public
	r := chi.NewRouter()

	// must run first so logging and rate limits see the client address
	r.Use(mw.TrustProxies(cfg.TrustedProxies))
	r.Use(metrics.Middleware)
	r.Use(mw.RequestLogger)
	// Enable gzip compression for all responses
	r.Use(handlers.CompressHandler)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeadersWithCSP(cfg.SecureCookies, mw.APIContentSecurityPolicy))

	r.Handle("/metrics", metrics.Handler())

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()
	rate, burst := cfg.AuthRateLimit.PerSecond()
	// one bucket per IP shared by register and login
	authLimit := mw.RateLimitByIP(rl.New(rate, burst, rateLimiterIdleTTL))

	r.Route(cfg.ApiPrefix, func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.With(authLimit).Post("/register", h.Register)
			r.With(authLimit).Post("/login", h.Login)
			r.Post("/logout", h.Logout)
			r.With(needAuth).Get("/check", h.Check)
		})

		r.Group(func(r chi.Router) {
			r.Use(needAuth)

			r.Get("/threads", h.GetThreads)
			r.Get("/thread/{id}", h.GetThread)
			r.With(deps.Upload.Image("image")).Post("/thread", h.CreateThread)
			r.Patch("/thread/{id}", h.UpdateThread)
			r.Delete("/thread/{id}", h.DeleteThread)

			r.Get("/replies", h.GetReplies)
			r.Post("/reply", h.CreateReply)

			r.Post("/like", h.CreateLike)
			r.Delete("/like/{thread_id}", h.DeleteLike)

			r.Get("/follows", h.GetFollows)
			r.Post("/follow", h.CreateFollow)
			r.Delete("/follow/{followed_user_id}", h.DeleteFollow)
		})
	})

	return r
}
