package pg

import (
	"context"

	"github.com/pkg/errors"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Follows lists the users userId follows (Followings) or is followed by (Followers).
// IsFollowed tells whether userId follows the listed user.
func (s *Storage) Follows(ctx context.Context, userId domain.UserId, followType domain.FollowType) ([]domain.FollowEntry, error) {
	joinOn, owner := "follows.followed_user_id", "follows.following_user_id"
	if followType == domain.Followers {
		joinOn, owner = "follows.following_user_id", "follows.followed_user_id"
	}

	entries := []domain.FollowEntry{}
	err := s.db.WithContext(ctx).
		Table("users").
		Select("users.*, EXISTS (SELECT 1 FROM follows f WHERE f.following_user_id = ? AND f.followed_user_id = users.id) AS is_followed", userId).
		Joins("JOIN follows ON "+joinOn+" = users.id").
		Where(owner+" = ?", userId).
		Order("follows.id DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch follows")
	}
	return entries, nil
}

func (s *Storage) CreateFollow(ctx context.Context, follow *domain.Follow) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(follow).Error; err != nil {
		return conflictOr(err, "You already follow this user!", "failed to insert follow")
	}
	return nil
}

// DeleteFollow removes the follow from followingId to followedId and returns it.
func (s *Storage) DeleteFollow(ctx context.Context, followingId, followedId domain.UserId) (domain.Follow, error) {
	var follow domain.Follow
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		err := tx.Where("following_user_id = ? AND followed_user_id = ?", followingId, followedId).Take(&follow).Error
		if err != nil {
			return notFoundOr(err, internal_errors.FollowNotFound, "failed to fetch follow")
		}
		if err := tx.Delete(&follow).Error; err != nil {
			return errors.Wrap(err, "failed to delete follow")
		}
		return nil
	})
	if err != nil {
		return domain.Follow{}, err
	}
	return follow, nil
}
