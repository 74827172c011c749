package dto

import "time"

// LoginRequest defines the credentials for a local login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT and its expiry.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ExchangeCodeRequest carries the authorization code obtained by the
// frontend from Google.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
