package session_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/rental-shop/application/session"
	"github.com/muhammadheryan/rental-shop/cmd/config"
	redismocks "github.com/muhammadheryan/rental-shop/mocks/repository/redis"
	"github.com/muhammadheryan/rental-shop/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims session.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func claimsFor(userID, merchantID, outletID uint64, jti string) session.Claims {
	return session.Claims{
		MerchantID: merchantID,
		OutletID:   outletID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestSessionApp_ValidateToken(t *testing.T) {
	cfg := &config.Config{Auth: config.AuthConfig{JWTSecret: secret}}

	tests := []struct {
		name     string
		token    func(t *testing.T) string
		mockCall func(r *redismocks.Repository)
		want     *model.TenantScope
		wantErr  bool
	}{
		{
			name:  "success: outlet staff",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 10, 2, "jti-1")) },
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "jti-1").Return(&model.TenantScope{UserID: 3, MerchantID: 10, OutletID: 2}, nil).Once()
			},
			want: &model.TenantScope{UserID: 3, MerchantID: 10, OutletID: 2},
		},
		{
			name:  "success: merchant wide",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 10, 0, "jti-2")) },
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "jti-2").Return(&model.TenantScope{UserID: 3, MerchantID: 10}, nil).Once()
			},
			want: &model.TenantScope{UserID: 3, MerchantID: 10},
		},
		{
			name:    "error: wrong secret",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte("other"), claimsFor(3, 10, 0, "jti-3")) },
			wantErr: true,
		},
		{
			name:    "error: other signing method",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS512, []byte(secret), claimsFor(3, 10, 0, "jti-3")) },
			wantErr: true,
		},
		{
			name: "error: expired",
			token: func(t *testing.T) string {
				c := claimsFor(3, 10, 0, "jti-3")
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
			},
			wantErr: true,
		},
		{
			name:    "error: no merchant",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 0, 0, "jti-3")) },
			wantErr: true,
		},
		{
			name:    "error: no jti",
			token:   func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 10, 0, "")) },
			wantErr: true,
		},
		{
			name:  "error: session revoked",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 10, 0, "jti-4")) },
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "jti-4").Return(nil, errors.New("redis: nil")).Once()
			},
			wantErr: true,
		},
		{
			name:  "error: session bound to another outlet",
			token: func(t *testing.T) string { return sign(t, jwt.SigningMethodHS256, []byte(secret), claimsFor(3, 10, 2, "jti-5")) },
			mockCall: func(r *redismocks.Repository) {
				r.On("GetSession", mock.Anything, "jti-5").Return(&model.TenantScope{UserID: 3, MerchantID: 10, OutletID: 4}, nil).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := redismocks.NewRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}
			app := session.NewSessionApp(cfg, repo)

			got, err := app.ValidateToken(context.Background(), tt.token(t))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
