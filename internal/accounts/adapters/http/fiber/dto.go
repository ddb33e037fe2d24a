package fiber

import "time"

// SignUpRequest represents the account creation payload
// @Description Sign-up DTO
type SignUpRequest struct {
	Email     string `json:"email" example:"climber@example.com"`
	Password  string `json:"password" example:"secret123"`
	FirstName string `json:"first_name" example:"Ada"`
	LastName  string `json:"last_name" example:"Peak"`
}

type SignInRequest struct {
	Email    string `json:"email" example:"climber@example.com"`
	Password string `json:"password" example:"secret123"`
}

type AuthResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_credentials"`
	Message string `json:"message" example:"invalid email or password"`
}
