package handler

import (
	"time"

	"github.com/google/uuid"
)

// Swagger type definitions for API documentation.

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"securepassword123"`
}

// RegisterRequest represents the registration request body.
type RegisterRequest struct {
	Email       string `json:"email" example:"alice@example.com"`
	Username    string `json:"username" example:"alice"`
	Password    string `json:"password" example:"securepassword123"`
	PhoneNumber string `json:"phone_number,omitempty" example:"+14155550123"`
	Profession  string `json:"profession,omitempty" example:"engineer"`
}

// GoogleLoginRequest represents the Google sign-in request body.
type GoogleLoginRequest struct {
	Token       string `json:"token" example:"eyJhbGciOiJSUzI1NiIsImtpZCI6..."`
	PhoneNumber string `json:"phone_number,omitempty" example:"+14155550123"`
	Profession  string `json:"profession,omitempty" example:"engineer"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Email    string        `json:"email" example:"alice@example.com"`
	Username string        `json:"username" example:"alice"`
	Tokens   TokenResponse `json:"tokens"`
}

// SocialLoginResponse represents a successful social sign-in.
type SocialLoginResponse struct {
	Email     string        `json:"email" example:"alice@gmail.com"`
	Username  string        `json:"username" example:"alice"`
	Tokens    TokenResponse `json:"tokens"`
	IsNewUser bool          `json:"is_new_user" example:"true"`
}

// RegisterResponse represents a newly registered user.
type RegisterResponse struct {
	ID          uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email       string    `json:"email" example:"alice@example.com"`
	Username    string    `json:"username" example:"alice"`
	PhoneNumber string    `json:"phone_number,omitempty" example:"+14155550123"`
	Profession  string    `json:"profession,omitempty" example:"engineer"`
}

// DashboardResponse represents the dashboard counts.
type DashboardResponse struct {
	Username       string `json:"username" example:"alice"`
	Email          string `json:"email" example:"alice@example.com"`
	Profession     string `json:"profession,omitempty" example:"engineer"`
	TodosCompleted int    `json:"todos_completed" example:"4"`
	TodosPending   int    `json:"todos_pending" example:"2"`
	InventoryItems int    `json:"inventory_items" example:"11"`
}

// ActivationResponse represents a successful email verification.
type ActivationResponse struct {
	Email string `json:"email" example:"Successfully activated"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
