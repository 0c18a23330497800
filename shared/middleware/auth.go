package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/threads-be/threads/shared/domain"
	internal_errors "github.com/threads-be/threads/shared/errors"
	jwt_internal "github.com/threads-be/threads/shared/jwt"
	"github.com/threads-be/threads/shared/logger"
	"github.com/threads-be/threads/shared/utils"
)

// Key to store the user claims in the request context
type key int

const UserClaimsKey key = 0

const AccessTokenCookie = "accessToken"

// Auth holds dependencies for authentication middleware
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that rejects requests without a valid session
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := a.extractUser(r)
			if err != nil {
				switch err {
				case errNoToken:
					utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("Please sign-in"))
				case errInvalidClaims:
					logger.Log.Error("invalid jwt claims")
					utils.WriteErrorAndStatusCode(w, internal_errors.Unauthorized("Invalid token"))
				default:
					// Token decode error
					utils.WriteErrorAndStatusCode(w, err)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractUser reads the token from the cookie (browsers) or the Authorization
// header (API clients). A cookie that fails to decode does not hide a valid
// bearer token.
func (a *Auth) extractUser(r *http.Request) (*domain.User, error) {
	var tokens []string
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found && token != "" {
		tokens = append(tokens, token)
	}
	if len(tokens) == 0 {
		return nil, errNoToken
	}

	var err error
	for _, tokenString := range tokens {
		var token *jwt.Token
		if token, err = a.jwtService.DecodeToken(tokenString); err == nil {
			return userFromClaims(token)
		}
	}
	return nil, err
}

func userFromClaims(token *jwt.Token) (*domain.User, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	uidFloat, ok := claims["uid"].(float64)
	if !ok || uidFloat <= 0 {
		return nil, errInvalidClaims
	}

	username, _ := claims["username"].(string)

	return &domain.User{Id: int64(uidFloat), Username: username}, nil
}

// Sentinel errors for extractUser
var (
	errNoToken       = errorString("no token")
	errInvalidClaims = errorString("invalid claims")
)

type errorString string

func (e errorString) Error() string { return string(e) }

// WithUser stores the session user in ctx.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, UserClaimsKey, user)
}

// GetUserFromContext retrieves the user from the context
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(UserClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
