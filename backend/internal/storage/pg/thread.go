package pg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// threadsWithCounts selects threads with their owner and the derived
// replies_count / likes_count columns.
func (s *Storage) threadsWithCounts(ctx context.Context) *gorm.DB {
	replies := s.db.Model(&domain.Reply{}).Select("COUNT(*)").Where("replies.thread_id = threads.id")
	likes := s.db.Model(&domain.Like{}).Select("COUNT(*)").Where("likes.thread_id = threads.id")

	return s.db.WithContext(ctx).
		Model(&domain.Thread{}).
		Select("threads.*, (?) AS replies_count, (?) AS likes_count", replies, likes).
		Preload("User")
}

// Threads returns every thread, newest first.
func (s *Storage) Threads(ctx context.Context) ([]domain.Thread, error) {
	threads := []domain.Thread{}
	if err := s.threadsWithCounts(ctx).Order("threads.id DESC").Find(&threads).Error; err != nil {
		return nil, errors.Wrap(err, "failed to fetch threads")
	}
	return threads, nil
}

func (s *Storage) Thread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.threadsWithCounts(ctx).Where("threads.id = ?", id).Take(&thread).Error
	if err != nil {
		return domain.Thread{}, notFoundOr(err, internal_errors.ThreadNotFound, "failed to fetch thread")
	}
	return thread, nil
}

// CreateThread inserts thread and fills its Id and timestamps.
func (s *Storage) CreateThread(ctx context.Context, thread *domain.Thread) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(thread).Error; err != nil {
		return errors.Wrap(err, "failed to insert thread")
	}
	return nil
}

// UpdateThread writes content and image of thread as given and refreshes
// thread.UpdatedAt.
func (s *Storage) UpdateThread(ctx context.Context, thread *domain.Thread) error {
	result := s.db.WithContext(ctx).
		Model(thread).
		Updates(map[string]interface{}{"content": thread.Content, "image": thread.Image})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update thread")
	}
	if result.RowsAffected == 0 {
		return internal_errors.NotFound(internal_errors.ThreadNotFound)
	}
	return nil
}

// DeleteThread removes the thread with its replies and likes.
func (s *Storage) DeleteThread(ctx context.Context, id domain.ThreadId) error {
	return s.withTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&domain.Reply{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete replies")
		}
		if err := tx.Where("thread_id = ?", id).Delete(&domain.Like{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete likes")
		}
		result := tx.Delete(&domain.Thread{}, id)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete thread")
		}
		if result.RowsAffected == 0 {
			return internal_errors.NotFound(internal_errors.ThreadNotFound)
		}
		return nil
	})
}
