package service

import (
	"context"
	"strings"

	"github.com/threads-be/threads/shared/domain"
	"github.com/threads-be/threads/shared/errors"
	"github.com/threads-be/threads/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

const wrongCredentials = "Email or password is wrong!"

type AuthService interface {
	Register(ctx context.Context, data domain.RegistrationData) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	Check(ctx context.Context, userId domain.UserId) (domain.User, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

type AuthStorage interface {
	SaveUser(ctx context.Context, user *domain.User) error
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
	User(ctx context.Context, id domain.UserId) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Register stores a new user with a bcrypt password hash.
func (a *Auth) Register(ctx context.Context, data domain.RegistrationData) (domain.User, error) {
	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.WithError(err).Error("failed to hash password")
		return domain.User{}, err
	}

	user := domain.User{
		FullName: strings.TrimSpace(data.FullName),
		Username: strings.TrimSpace(data.Username),
		Email:    strings.ToLower(strings.TrimSpace(data.Email)),
		PassHash: string(passHash),
	}
	if err := a.storage.SaveUser(ctx, &user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Login returns the user and a fresh access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	user, err := a.storage.UserByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		if errors.IsNotFound(err) {
			return domain.User{}, "", errors.Unauthorized(wrongCredentials)
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", errors.Unauthorized(wrongCredentials)
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.WithError(err).Error("failed to create token")
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (a *Auth) Check(ctx context.Context, userId domain.UserId) (domain.User, error) {
	return a.storage.User(ctx, userId)
}
