package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/threads-be/threads/shared/config"
	"github.com/threads-be/threads/shared/domain"
	mw "github.com/threads-be/threads/shared/middleware"
)

type testHandler struct {
	*Handler
	threads *MockThreadService
	replies *MockReplyService
	likes   *MockLikeService
	follows *MockFollowService
	auth    *MockAuthService
	health  *MockHealth
}

func newTestHandler() *testHandler {
	th := &testHandler{
		threads: &MockThreadService{},
		replies: &MockReplyService{},
		likes:   &MockLikeService{},
		follows: &MockFollowService{},
		auth:    &MockAuthService{},
		health:  &MockHealth{},
	}
	cfg := &config.Config{Public: config.Public{JwtTTL: time.Hour}}
	th.Handler = New(th.auth, th.threads, th.replies, th.likes, th.follows, th.health, cfg)
	return th
}

// router mirrors the production routes without the auth middleware.
func (th *testHandler) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/threads", th.GetThreads)
	r.Get("/thread/{id}", th.GetThread)
	r.Post("/thread", th.CreateThread)
	r.Patch("/thread/{id}", th.UpdateThread)
	r.Delete("/thread/{id}", th.DeleteThread)
	r.Get("/replies", th.GetReplies)
	r.Post("/reply", th.CreateReply)
	r.Post("/like", th.CreateLike)
	r.Delete("/like/{thread_id}", th.DeleteLike)
	r.Get("/follows", th.GetFollows)
	r.Post("/follow", th.CreateFollow)
	r.Delete("/follow/{followed_user_id}", th.DeleteFollow)
	r.Post("/auth/register", th.Register)
	r.Post("/auth/login", th.Login)
	r.Post("/auth/logout", th.Logout)
	r.Get("/auth/check", th.Check)
	r.Get("/health", th.Health)
	return r
}

var testUser = &domain.User{Id: 7, Username: "alice"}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.User) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(mw.WithUser(req.Context(), user))
	}
	return req
}

func (th *testHandler) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	th.router().ServeHTTP(rr, req)
	return rr
}
