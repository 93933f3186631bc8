package constant

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	TenantScopeKey contextKey = "tenant_scope"
)
