package pg

import (
	"context"

	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
)

// =========================================================================
// Public Methods (satisfy the service.AuthStorage interface)
// =========================================================================

// SaveUser inserts a new user and fills user.Id. Username and email are unique.
func (s *Storage) SaveUser(ctx context.Context, user *domain.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return conflictOr(err, "Username or email already registered!", "failed to save user")
	}
	return nil
}

// UserByEmail fetches a user together with the password hash.
func (s *Storage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return domain.User{}, notFoundOr(err, internal_errors.UserNotFound, "failed to fetch user by email")
	}
	return user, nil
}

func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Take(&user, id).Error
	if err != nil {
		return domain.User{}, notFoundOr(err, internal_errors.UserNotFound, "failed to fetch user")
	}
	return user, nil
}
