package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studyplan-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
// Tokens it issues have the form "access:<uuid>" and "refresh:<uuid>" and
// validate back to the same user unless a Fn override or error is set.
type MockJWTService struct {
	GenerateTokenFn        func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateTokenFn        func(ctx context.Context, tokenString string) (*auth.Claims, error)
	GenerateRefreshTokenFn func(ctx context.Context, userID uuid.UUID) (string, error)
	ValidateRefreshTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Err         error
	ValidateErr error
	Lifetime    time.Duration
}

var _ auth.JWTService = (*MockJWTService)(nil)

func mockToken(tokenType string, userID uuid.UUID) string {
	return tokenType + ":" + userID.String()
}

func parseMockToken(tokenType, token string) (*auth.Claims, error) {
	prefix := tokenType + ":"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		if tokenType == auth.TokenTypeRefresh {
			return nil, auth.ErrInvalidRefreshToken
		}
		return nil, auth.ErrInvalidToken
	}
	userID, err := uuid.Parse(token[len(prefix):])
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: userID, TokenType: tokenType, Subject: userID.String()}, nil
}

// GenerateToken implements auth.JWTService
func (m *MockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(ctx, userID)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return mockToken(auth.TokenTypeAccess, userID), nil
}

// ValidateToken implements auth.JWTService
func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return parseMockToken(auth.TokenTypeAccess, tokenString)
}

// GenerateRefreshToken implements auth.JWTService
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx, userID)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return mockToken(auth.TokenTypeRefresh, userID), nil
}

// ValidateRefreshToken implements auth.JWTService
func (m *MockJWTService) ValidateRefreshToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateRefreshTokenFn != nil {
		return m.ValidateRefreshTokenFn(ctx, tokenString)
	}
	if m.ValidateErr != nil {
		return nil, m.ValidateErr
	}
	return parseMockToken(auth.TokenTypeRefresh, tokenString)
}

// AccessTokenLifetime implements auth.JWTService
func (m *MockJWTService) AccessTokenLifetime() time.Duration {
	if m.Lifetime == 0 {
		return time.Hour
	}
	return m.Lifetime
}
