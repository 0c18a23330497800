package service

import (
	"context"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/validation"
)

type FollowService interface {
	Find(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error)
	Create(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error)
	Delete(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error)
}

type Follow struct {
	storage FollowStorage
}

type FollowStorage interface {
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	Follows(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error)
	CreateFollow(ctx context.Context, follow *domain.Follow) error
	DeleteFollow(ctx context.Context, followingId, followedId domain.UserId) (domain.Follow, error)
}

func NewFollow(storage FollowStorage) *Follow {
	return &Follow{storage: storage}
}

// Find lists followings when followType is empty.
func (s *Follow) Find(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error) {
	switch followType {
	case "":
		followType = domain.Followings
	case domain.Followers, domain.Followings:
	default:
		return nil, errors.Validation(`"type" must be one of [followers, followings]`)
	}
	return s.storage.Follows(ctx, userId, followType)
}

func (s *Follow) Create(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error) {
	if err := validation.Struct(api.CreateFollowRequest{FollowedUserId: followedId}); err != nil {
		return domain.Follow{}, err
	}
	if userId == followedId {
		return domain.Follow{}, errors.Validation("You cannot follow yourself!")
	}
	if _, err := s.storage.User(ctx, followedId); err != nil {
		return domain.Follow{}, err
	}

	follow := domain.Follow{FollowingUserId: userId, FollowedUserId: followedId}
	if err := s.storage.CreateFollow(ctx, &follow); err != nil {
		return domain.Follow{}, err
	}
	return follow, nil
}

func (s *Follow) Delete(ctx context.Context, userId, followedId domain.UserId) (domain.Follow, error) {
	return s.storage.DeleteFollow(ctx, userId, followedId)
}
