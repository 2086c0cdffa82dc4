package models

import "time"

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Username string `json:"username" example:"moviefan1"`
	Password string `json:"password" example:"secret123"`
}

// LoginResponse is the response after successful login.
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2024-01-16T09:30:00Z"`
	User      User      `json:"user"`
}
