package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
)

func TestGetReplies(t *testing.T) {
	t.Run("uses thread_id query", func(t *testing.T) {
		th := newTestHandler()
		var got domain.ThreadId
		th.replies.MockFind = func(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
			got = threadId
			return []domain.Reply{}, nil
		}

		rr := th.serve(createRequest(t, http.MethodGet, "/replies?thread_id=12", nil, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(12), got)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("missing thread_id", func(t *testing.T) {
		th := newTestHandler()
		rr := th.serve(createRequest(t, http.MethodGet, "/replies", nil, testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"\"thread_id\" is required"}`, rr.Body.String())
	})
}

func TestCreateReply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		th := newTestHandler()
		var got domain.ReplyCreationData
		th.replies.MockCreate = func(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error) {
			got = data
			return domain.Reply{Id: 1}, nil
		}

		rr := th.serve(createRequest(t, http.MethodPost, "/reply", []byte(`{"content":"hi","thread_id":3}`), testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.ReplyCreationData{Content: "hi", ThreadId: 3, UserId: 7}, got)
	})

	t.Run("missing content", func(t *testing.T) {
		th := newTestHandler()
		rr := th.serve(createRequest(t, http.MethodPost, "/reply", []byte(`{"thread_id":3}`), testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "content")
	})
}

func TestLikes(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		th := newTestHandler()
		rr := th.serve(createRequest(t, http.MethodPost, "/like", []byte(`{"thread_id":5}`), testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"thread_id":5`)
	})

	t.Run("duplicate", func(t *testing.T) {
		th := newTestHandler()
		th.likes.MockCreate = func(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
			return domain.Like{}, internal_errors.Conflict("You already liked this thread!")
		}

		rr := th.serve(createRequest(t, http.MethodPost, "/like", []byte(`{"thread_id":5}`), testUser))

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.JSONEq(t, `"You already liked this thread!"`, rr.Body.String())
	})

	t.Run("delete", func(t *testing.T) {
		th := newTestHandler()
		var gotUser, gotThread int64
		th.likes.MockDelete = func(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
			gotUser, gotThread = userId, threadId
			return domain.Like{}, nil
		}

		rr := th.serve(createRequest(t, http.MethodDelete, "/like/5", nil, testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, int64(7), gotUser)
		assert.Equal(t, int64(5), gotThread)
	})
}

func TestFollows(t *testing.T) {
	t.Run("list passes type", func(t *testing.T) {
		th := newTestHandler()
		var got domain.FollowType
		th.follows.MockFind = func(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error) {
			got = followType
			return []domain.FollowEntry{{User: domain.User{Id: 2, Username: "bob"}, IsFollowed: true}}, nil
		}

		rr := th.serve(createRequest(t, http.MethodGet, "/follows?type=followers", nil, testUser))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, domain.Followers, got)
		assert.Contains(t, rr.Body.String(), `"is_followed":true`)
		assert.Contains(t, rr.Body.String(), `"username":"bob"`)
	})

	t.Run("create", func(t *testing.T) {
		th := newTestHandler()
		rr := th.serve(createRequest(t, http.MethodPost, "/follow", []byte(`{"followed_user_id":9}`), testUser))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"followed_user_id":9`)
	})

	t.Run("create invalid id", func(t *testing.T) {
		th := newTestHandler()
		rr := th.serve(createRequest(t, http.MethodPost, "/follow", []byte(`{"followed_user_id":0}`), testUser))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete not found", func(t *testing.T) {
		th := newTestHandler()
		th.follows.MockDelete = func(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error) {
			return domain.Follow{}, internal_errors.NotFound(internal_errors.FollowNotFound)
		}

		rr := th.serve(createRequest(t, http.MethodDelete, "/follow/9", nil, testUser))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
