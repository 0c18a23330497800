package service

import (
	"context"

	"github.com/threads-be/threads/backend/internal/service/utils"
	"github.com/threads-be/threads/shared/api"
	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/validation"
)

type ReplyService interface {
	Find(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error)
	Create(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error)
}

type Reply struct {
	storage ReplyStorage
	images  ImageHost
}

type ReplyStorage interface {
	Thread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
	Replies(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error)
	CreateReply(ctx context.Context, reply *domain.Reply) error
}

func NewReply(storage ReplyStorage, images ImageHost) *Reply {
	return &Reply{storage: storage, images: images}
}

func (s *Reply) Find(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	if threadId <= 0 {
		return nil, errors.Validation(`"thread_id" must be greater than 0`)
	}
	return s.storage.Replies(ctx, threadId)
}

func (s *Reply) Create(ctx context.Context, data domain.ReplyCreationData) (domain.Reply, error) {
	content := utils.SanitizeText(data.Content)
	req := api.CreateReplyRequest{Content: content, Image: data.Image, ThreadId: data.ThreadId}
	if err := validation.Struct(req); err != nil {
		return domain.Reply{}, err
	}
	if data.Image != "" && !s.images.Owns(data.Image) {
		return domain.Reply{}, errors.Validation(`"image" must be an image uploaded to this service`)
	}

	if _, err := s.storage.Thread(ctx, data.ThreadId); err != nil {
		return domain.Reply{}, err
	}

	reply := domain.Reply{Content: content, Image: data.Image, UserId: data.UserId, ThreadId: data.ThreadId}
	if err := s.storage.CreateReply(ctx, &reply); err != nil {
		return domain.Reply{}, err
	}
	return reply, nil
}
