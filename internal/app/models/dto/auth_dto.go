package dto

import "github.com/uniconnect/backend/internal/app/models"

// StudentLoginRequest represents student login credentials
type StudentLoginRequest struct {
	RegNumber string `json:"regNumber" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// CollegeLoginRequest represents college login credentials
type CollegeLoginRequest struct {
	Code     string `json:"code" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents a refresh token exchange request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// StudentAuthResponse represents a successful student login
type StudentAuthResponse struct {
	Student *models.Student `json:"student"`
	Token   TokenResponse   `json:"token"`
}

// CollegeAuthResponse represents a successful college login
type CollegeAuthResponse struct {
	College *models.College `json:"college"`
	Token   TokenResponse   `json:"token"`
}
