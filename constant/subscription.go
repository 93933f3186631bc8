package constant

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
)

const (
	PaymentTypeProration  = "PRORATION"
	AuditActionPlanChange = "SUBSCRIPTION_PLAN_CHANGED"
)
