package services

import (
	"context"
	"fmt"

	"github.com/uniconnect/backend/internal/app/models/dto"
	"github.com/uniconnect/backend/internal/app/repositories"
	"github.com/uniconnect/backend/internal/pkg/auth"
	"github.com/uniconnect/backend/internal/pkg/logger"
)

// AuthService issues and refreshes token pairs for student and college accounts
type AuthService interface {
	IssueTokens(ctx context.Context, accountID int64, role string) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
}

type authService struct {
	tokenRepo  repositories.ITokenRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(tokenRepo repositories.ITokenRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// IssueTokens creates an access/refresh token pair and persists the refresh token
func (s *authService) IssueTokens(ctx context.Context, accountID int64, role string) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(accountID, role)
	if err != nil {
		return nil, fmt.Errorf("error generating token pair: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, accountID, role, expiry); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:           accessToken,
		TokenType:             "Bearer",
		ExpiresIn:             expiresIn,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresIn,
	}, nil
}

// Refresh exchanges a live refresh token for a new token pair.
// The used token is revoked so each refresh token works once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	accountID, role, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		logger.Warn().Err(err).Msg("Failed to revoke used refresh token")
	}

	return s.IssueTokens(ctx, accountID, role)
}
