package api

import "github.com/threads-be/threads/shared/domain"

// Request DTOs

type RegisterRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type LoginResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"` // for non-cookie clients
}

type CheckResponse struct {
	User domain.User `json:"user"`
}
