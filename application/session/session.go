package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/rental-shop/cmd/config"
	"github.com/muhammadheryan/rental-shop/model"
	redisrepo "github.com/muhammadheryan/rental-shop/repository/redis"
)

type SessionApp interface {
	ValidateToken(ctx context.Context, tokenString string) (*model.TenantScope, error)
}

// Claims are issued by the identity service alongside a redis session keyed by the jti.
type Claims struct {
	MerchantID uint64 `json:"merchant_id"`
	OutletID   uint64 `json:"outlet_id,omitempty"`
	jwt.RegisteredClaims
}

type sessionAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewSessionApp(config *config.Config, redisRepo redisrepo.Repository) SessionApp {
	return &sessionAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *sessionAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.TenantScope, error) {
	// Parse token
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	// Extract claims
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	// Extract userID from Subject
	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}
	if claims.MerchantID == 0 {
		return nil, fmt.Errorf("token missing merchant")
	}

	// Extract JTI (Token ID)
	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	session, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil || session == nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	// The session must describe the same user and tenant as the token
	if session.UserID != userID || session.MerchantID != claims.MerchantID || session.OutletID != claims.OutletID {
		return nil, fmt.Errorf("token does not match user session")
	}

	return &model.TenantScope{
		UserID:     userID,
		MerchantID: claims.MerchantID,
		OutletID:   claims.OutletID,
	}, nil
}
