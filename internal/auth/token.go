// Package auth issues and verifies the signed tokens clients present in the
// Authorization header.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
)

// Claims identify the holder of a verified token
type Claims struct {
	UserID    int64
	TokenID   string
	ExpiresAt time.Time
}

// TokenService issues, verifies and revokes tokens
type TokenService interface {
	Issue(ctx context.Context, userID int64) (string, error)
	Verify(ctx context.Context, token string) (*Claims, error)
	Revoke(ctx context.Context, claims *Claims)
}

type jwtClaims struct {
	jwt.RegisteredClaims
}

// JWTService signs HS256 tokens. Revoked token ids are remembered until the
// tokens would have expired anyway.
type JWTService struct {
	signingKey []byte
	ttl        time.Duration
	revoked    *expirable.LRU[string, struct{}]
	now        func() time.Time
}

// NewJWTService creates a token service signing with key
func NewJWTService(key string, ttl time.Duration) (*JWTService, error) {
	if key == "" {
		return nil, errors.New(ErrMsgEmptySigningKey)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		signingKey: []byte(key),
		ttl:        ttl,
		revoked:    expirable.NewLRU[string, struct{}](MaxRevokedTokens, nil, ttl),
		now:        time.Now,
	}, nil
}

func (s *JWTService) Issue(_ context.Context, userID int64) (string, error) {
	now := s.now()
	claims := &jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf(ErrMsgSignFailed, err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, issuer and expiry. Every failure is
// reported as domain.ErrUnauthorized.
func (s *JWTService) Verify(ctx context.Context, token string) (*Claims, error) {
	log := logger.FromContext(ctx)

	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Warn(LogMsgUnexpectedAlgo, "algorithm", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	},
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(LogMsgTokenExpired)
		} else {
			log.Debug(LogMsgTokenInvalid, "error", err)
		}
		return nil, domain.ErrUnauthorized
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 || claims.ID == "" {
		return nil, domain.ErrUnauthorized
	}
	if s.revoked.Contains(claims.ID) {
		log.Debug(LogMsgTokenRevoked, "user_id", userID)
		return nil, domain.ErrUnauthorized
	}

	return &Claims{UserID: userID, TokenID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Revoke invalidates the token for the rest of its lifetime
func (s *JWTService) Revoke(_ context.Context, claims *Claims) {
	if claims == nil || claims.TokenID == "" {
		return
	}
	s.revoked.Add(claims.TokenID, struct{}{})
}

// ExtractToken returns the credential from an Authorization header value.
// Both "Token <t>" and "Bearer <t>" are accepted.
func ExtractToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return "", false
	}
	if !strings.EqualFold(scheme, SchemeToken) && !strings.EqualFold(scheme, SchemeBearer) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
