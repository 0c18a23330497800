package service

import (
	"context"

	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/validation"
)

type LikeService interface {
	Create(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)
	Delete(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)
}

type Like struct {
	storage LikeStorage
}

type LikeStorage interface {
	Thread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	CreateLike(ctx context.Context, like *domain.Like) error
	DeleteLike(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error)
}

func NewLike(storage LikeStorage) *Like {
	return &Like{storage: storage}
}

func (s *Like) Create(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	if err := validation.Struct(api.CreateLikeRequest{ThreadId: threadId}); err != nil {
		return domain.Like{}, err
	}
	if _, err := s.storage.Thread(ctx, threadId); err != nil {
		return domain.Like{}, err
	}

	like := domain.Like{UserId: userId, ThreadId: threadId}
	if err := s.storage.CreateLike(ctx, &like); err != nil {
		return domain.Like{}, err
	}
	return like, nil
}

func (s *Like) Delete(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	return s.storage.DeleteLike(ctx, userId, threadId)
}
