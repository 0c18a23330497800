package service

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
)

// --- Mocks ---

// MockStorage implements every storage interface the services depend on.
type MockStorage struct {
	threadsFunc      func(ctx context.Context) ([]domain.Thread, error)
	threadFunc       func(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	createThreadFunc func(ctx context.Context, thread *domain.Thread) error
	updateThreadFunc func(ctx context.Context, thread *domain.Thread) error
	deleteThreadFunc func(ctx context.Context, id domain.ThreadId) error

	repliesFunc     func(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error)
	createReplyFunc func(ctx context.Context, reply *domain.Reply) error

	createLikeFunc func(ctx context.Context, like *domain.Like) error
	deleteLikeFunc func(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)

	followsFunc      func(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error)
	createFollowFunc func(ctx context.Context, follow *domain.Follow) error
	deleteFollowFunc func(ctx context.Context, followingId, followedId domain.UserId) (domain.Follow, error)

	saveUserFunc    func(ctx context.Context, user *domain.User) error
	userByEmailFunc func(ctx context.Context, email domain.Email) (domain.User, error)
	userFunc        func(ctx context.Context, id domain.UserId) (domain.User, error)

	mu                 sync.Mutex
	createThreadCalled bool
	updateThreadCalled bool
	deleteThreadCalled bool
}

func (m *MockStorage) Threads(ctx context.Context) ([]domain.Thread, error) {
	if m.threadsFunc != nil {
		return m.threadsFunc(ctx)
	}
	return []domain.Thread{}, nil
}

func (m *MockStorage) Thread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.threadFunc != nil {
		return m.threadFunc(ctx, id)
	}
	// Default: thread exists and belongs to user 1
	return domain.Thread{Id: id, Content: "existing", UserId: 1}, nil
}

func (m *MockStorage) CreateThread(ctx context.Context, thread *domain.Thread) error {
	m.mu.Lock()
	m.createThreadCalled = true
	m.mu.Unlock()
	if m.createThreadFunc != nil {
		return m.createThreadFunc(ctx, thread)
	}
	thread.Id = 1
	return nil
}

func (m *MockStorage) UpdateThread(ctx context.Context, thread *domain.Thread) error {
	m.mu.Lock()
	m.updateThreadCalled = true
	m.mu.Unlock()
	if m.updateThreadFunc != nil {
		return m.updateThreadFunc(ctx, thread)
	}
	return nil
}

func (m *MockStorage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	m.mu.Lock()
	m.deleteThreadCalled = true
	m.mu.Unlock()
	if m.deleteThreadFunc != nil {
		return m.deleteThreadFunc(ctx, id)
	}
	return nil
}

func (m *MockStorage) Replies(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	if m.repliesFunc != nil {
		return m.repliesFunc(ctx, threadId)
	}
	return []domain.Reply{}, nil
}

func (m *MockStorage) CreateReply(ctx context.Context, reply *domain.Reply) error {
	if m.createReplyFunc != nil {
		return m.createReplyFunc(ctx, reply)
	}
	reply.Id = 1
	return nil
}

func (m *MockStorage) CreateLike(ctx context.Context, like *domain.Like) error {
	if m.createLikeFunc != nil {
		return m.createLikeFunc(ctx, like)
	}
	like.Id = 1
	return nil
}

func (m *MockStorage) DeleteLike(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	if m.deleteLikeFunc != nil {
		return m.deleteLikeFunc(ctx, userId, threadId)
	}
	return domain.Like{Id: 1, UserId: userId, ThreadId: threadId}, nil
}

func (m *MockStorage) Follows(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error) {
	if m.followsFunc != nil {
		return m.followsFunc(ctx, userId, followType)
	}
	return []domain.FollowEntry{}, nil
}

func (m *MockStorage) CreateFollow(ctx context.Context, follow *domain.Follow) error {
	if m.createFollowFunc != nil {
		return m.createFollowFunc(ctx, follow)
	}
	follow.Id = 1
	return nil
}

func (m *MockStorage) DeleteFollow(ctx context.Context, followingId, followedId domain.UserId) (domain.Follow, error) {
	if m.deleteFollowFunc != nil {
		return m.deleteFollowFunc(ctx, followingId, followedId)
	}
	return domain.Follow{Id: 1, FollowingUserId: followingId, FollowedUserId: followedId}, nil
}

func (m *MockStorage) SaveUser(ctx context.Context, user *domain.User) error {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(ctx, user)
	}
	user.Id = 1
	return nil
}

func (m *MockStorage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	if m.userByEmailFunc != nil {
		return m.userByEmailFunc(ctx, email)
	}
	return domain.User{}, internal_errors.NotFound(internal_errors.UserNotFound)
}

func (m *MockStorage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.userFunc != nil {
		return m.userFunc(ctx, id)
	}
	return domain.User{Id: id, Username: "someone"}, nil
}

// MockImageHost mocks the ImageHost interface.
type MockImageHost struct {
	uploadFunc func(ctx context.Context, filename string, body io.Reader) (string, error)

	mu           sync.Mutex
	uploadCalled bool
	uploadedName string
	uploadedBody string
}

const hostPrefix = "https://cdn.example.com/"

func (m *MockImageHost) Upload(ctx context.Context, filename string, body io.Reader) (string, error) {
	data, _ := io.ReadAll(body)
	m.mu.Lock()
	m.uploadCalled = true
	m.uploadedName = filename
	m.uploadedBody = string(data)
	m.mu.Unlock()

	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, filename, body)
	}
	return hostPrefix + filename, nil
}

func (m *MockImageHost) Owns(url string) bool {
	return strings.HasPrefix(url, hostPrefix)
}

// MockLocalFiles serves uploads from memory.
type MockLocalFiles struct {
	files map[string]string
}

func (m *MockLocalFiles) Open(filename string) (io.ReadCloser, error) {
	data, ok := m.files[filename]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

// --- Helpers ---

func requireStatusError(t *testing.T, err error, status int) *internal_errors.ErrorWithStatusCode {
	t.Helper()
	require.Error(t, err)
	var e *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &e)
	assert.Equal(t, status, e.StatusCode)
	return e
}

func threadNotFound(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	return domain.Thread{}, internal_errors.NotFound(internal_errors.ThreadNotFound)
}

