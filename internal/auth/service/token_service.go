package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/md-ali-0/skillsync-server/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/md-ali-0/skillsync-server/config"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
)

// TokenPurpose selects which signing secret and TTL a token is bound to.
// Access, refresh and reset tokens use independent secrets so a leaked
// secret for one purpose cannot forge tokens for another.
type TokenPurpose string

const (
	PurposeAccess  TokenPurpose = "access"
	PurposeRefresh TokenPurpose = "refresh"
	PurposeReset   TokenPurpose = "reset"
)

type TokenGenerator interface {
	Issue(userID string, role string, purpose TokenPurpose) (string, error)
	Verify(tokenString string, purpose TokenPurpose) (*JWTCustomClaims, error)
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	Purpose string `json:"purpose"`
}

type purposeConfig struct {
	secret []byte
	ttl    time.Duration
}

type TokenService struct {
	purposes map[TokenPurpose]purposeConfig
}

func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		purposes: map[TokenPurpose]purposeConfig{
			PurposeAccess: {
				secret: []byte(cfg.AccessTokenSecret),
				ttl:    time.Duration(cfg.AccessExpiryMin) * time.Minute,
			},
			PurposeRefresh: {
				secret: []byte(cfg.RefreshTokenSecret),
				ttl:    time.Duration(cfg.RefreshExpiryMin) * time.Minute,
			},
			PurposeReset: {
				secret: []byte(cfg.ResetTokenSecret),
				ttl:    time.Duration(cfg.ResetExpiryMin) * time.Minute,
			},
		},
	}
}

// Issue signs a claim set with the purpose-specific secret and TTL. An
// unknown purpose is a programming error, not a runtime condition.
func (ts *TokenService) Issue(userID string, role string, purpose TokenPurpose) (string, error) {
	pc, ok := ts.purposes[purpose]
	if !ok {
		return "", fmt.Errorf("unknown token purpose: %s", purpose)
	}

	now := time.Now()
	claims := JWTCustomClaims{
		UserID:  userID,
		Role:    role,
		Purpose: string(purpose),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(pc.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(pc.secret)
}

// Verify parses a token against the purpose-specific secret. Expired,
// forged, malformed and wrong-purpose tokens all collapse to the same
// ErrInvalidToken so callers cannot probe why a token was rejected.
func (ts *TokenService) Verify(tokenString string, purpose TokenPurpose) (*JWTCustomClaims, error) {
	pc, ok := ts.purposes[purpose]
	if !ok {
		return nil, fmt.Errorf("unknown token purpose: %s", purpose)
	}

	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pc.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	if claims.Purpose != string(purpose) {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
