package handler

import (
	"context"

	"github.com/threads-be/threads/shared/domain"
)

// --- Service mocks ---

type MockThreadService struct {
	MockFind    func(ctx context.Context) ([]domain.Thread, error)
	MockFindOne func(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	MockCreate  func(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error)
	MockUpdate  func(ctx context.Context, data domain.ThreadUpdateData) (domain.Thread, error)
	MockDelete  func(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.Thread, error)
}

func (m *MockThreadService) Find(ctx context.Context) ([]domain.Thread, error) {
	if m.MockFind != nil {
		return m.MockFind(ctx)
	}
	return []domain.Thread{}, nil
}

func (m *MockThreadService) FindOne(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.MockFindOne != nil {
		return m.MockFindOne(ctx, id)
	}
	return domain.Thread{Id: id}, nil
}

func (m *MockThreadService) Create(ctx context.Context, data domain.ThreadCreationData) (domain.Thread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Thread{Id: 1, Content: data.Content, UserId: data.UserId}, nil
}

func (m *MockThreadService) Update(ctx context.Context, data domain.ThreadUpdateData) (domain.Thread, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, data)
	}
	return domain.Thread{Id: data.Id, Content: data.Content, UserId: data.UserId}, nil
}

func (m *MockThreadService) Delete(ctx context.Context, id domain.ThreadId, userId domain.UserId) (domain.Thread, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, id, userId)
	}
	return domain.Thread{Id: id, UserId: userId}, nil
}

type MockReplyService struct {
	MockFind   func(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error)
	MockCreate func(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error)
}

func (m *MockReplyService) Find(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	if m.MockFind != nil {
		return m.MockFind(ctx, threadId)
	}
	return []domain.Reply{}, nil
}

func (m *MockReplyService) Create(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, data)
	}
	return domain.Reply{Id: 1, Content: data.Content, ThreadId: data.ThreadId, UserId: data.UserId}, nil
}

type MockLikeService struct {
	MockCreate func(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)
	MockDelete func(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)
}

func (m *MockLikeService) Create(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, userId, threadId)
	}
	return domain.Like{Id: 1, UserId: userId, ThreadId: threadId}, nil
}

func (m *MockLikeService) Delete(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, userId, threadId)
	}
	return domain.Like{Id: 1, UserId: userId, ThreadId: threadId}, nil
}

type MockFollowService struct {
	MockFind   func(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error)
	MockCreate func(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error)
	MockDelete func(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error)
}

func (m *MockFollowService) Find(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error) {
	if m.MockFind != nil {
		return m.MockFind(ctx, userId, followType)
	}
	return []domain.FollowEntry{}, nil
}

func (m *MockFollowService) Create(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, userId, followedId)
	}
	return domain.Follow{Id: 1, FollowingUserId: userId, FollowedUserId: followedId}, nil
}

func (m *MockFollowService) Delete(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, userId, followedId)
	}
	return domain.Follow{Id: 1, FollowingUserId: userId, FollowedUserId: followedId}, nil
}

type MockAuthService struct {
	MockRegister func(ctx context.Context, data domain.RegistrationData) (domain.User, error)
	MockLogin    func(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	MockCheck    func(ctx context.Context, userId domain.UserId) (domain.User, error)
}

func (m *MockAuthService) Register(ctx context.Context, data domain.RegistrationData) (domain.User, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, data)
	}
	return domain.User{Id: 1, Username: data.Username, Email: data.Email}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return domain.User{Id: 1, Email: creds.Email}, "token", nil
}

func (m *MockAuthService) Check(ctx context.Context, userId domain.UserId) (domain.User, error) {
	if m.MockCheck != nil {
		return m.MockCheck(ctx, userId)
	}
	return domain.User{Id: userId, Username: "alice"}, nil
}

type MockHealth struct {
	err error
}

func (m *MockHealth) Ping(ctx context.Context) error {
	return m.err
}
