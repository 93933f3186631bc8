package redis

import (
	"context"
	"encoding/json"

	redisclient "github.com/muhammadheryan/rental-shop/cmd/redis"
	"github.com/muhammadheryan/rental-shop/model"
)

// Repository reads the sessions written by the identity service
type Repository interface {
	GetSession(ctx context.Context, sessionID string) (*model.TenantScope, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// GetSession retrieves the tenant scope of a session
func (r *redis) GetSession(ctx context.Context, sessionID string) (*model.TenantScope, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}
	val, err := client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		return nil, err
	}
	var scope model.TenantScope
	if err := json.Unmarshal(val, &scope); err != nil {
		return nil, err
	}
	return &scope, nil
}
