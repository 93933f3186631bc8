package context

import (
	"context"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// WithTenantScope stores the authenticated scope and its user id in ctx.
func WithTenantScope(ctx context.Context, scope model.TenantScope) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, scope.UserID)
	return context.WithValue(ctx, constant.TenantScopeKey, scope)
}

func GetTenantScope(ctx context.Context) (model.TenantScope, bool) {
	v := ctx.Value(constant.TenantScopeKey)
	if v == nil {
		return model.TenantScope{}, false
	}
	scope, ok := v.(model.TenantScope)
	return scope, ok
}
