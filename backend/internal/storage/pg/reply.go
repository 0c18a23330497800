package pg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/threads-be/threads/shared/domain"
	"gorm.io/gorm/clause"
)

// Replies returns the replies of a thread with their authors, newest first.
func (s *Storage) Replies(ctx context.Context, threadId domain.ThreadId) ([]domain.Reply, error) {
	replies := []domain.Reply{}
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("thread_id = ?", threadId).
		Order("id DESC").
		Find(&replies).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch replies")
	}
	return replies, nil
}

func (s *Storage) CreateReply(ctx context.Context, reply *domain.Reply) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(reply).Error; err != nil {
		return errors.Wrap(err, "failed to insert reply")
	}
	return nil
}
