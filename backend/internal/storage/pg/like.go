package pg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *Storage) CreateLike(ctx context.Context, like *domain.Like) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(like).Error; err != nil {
		return conflictOr(err, "You already liked this thread!", "failed to insert like")
	}
	return nil
}

// DeleteLike removes the like of userId on threadId and returns it.
func (s *Storage) DeleteLike(ctx context.Context, userId domain.UserId, threadId domain.ThreadId) (domain.Like, error) {
	var like domain.Like
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND thread_id = ?", userId, threadId).Take(&like).Error; err != nil {
			return notFoundOr(err, internal_errors.LikeNotFound, "failed to fetch like")
		}
		if err := tx.Delete(&like).Error; err != nil {
			return errors.Wrap(err, "failed to delete like")
		}
		return nil
	})
	if err != nil {
		return domain.Like{}, err
	}
	return like, nil
}
