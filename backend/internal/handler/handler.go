package handler

import (
	"context"
	"net/http"

	"github.com/threads-be/threads/backend/internal/service"
	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/errors"
	mw "github.com/threads-be/threads/shared/middleware"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	thread service.ThreadService
	reply  service.ReplyService
	like   service.LikeService
	follow service.FollowService
	health HealthChecker
	cfg    *config.Config
}

func New(
	auth service.AuthService,
	thread service.ThreadService,
	reply service.ReplyService,
	like service.LikeService,
	follow service.FollowService,
	health HealthChecker,
	cfg *config.Config,
) *Handler {
	return &Handler{
		auth:   auth,
		thread: thread,
		reply:  reply,
		like:   like,
		follow: follow,
		health: health,
		cfg:    cfg,
	}
}

// sessionUser returns the user put in the context by the auth middleware.
func sessionUser(r *http.Request) (*domain.User, error) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		return nil, errors.Unauthorized("Please sign-in")
	}
	return user, nil
}
