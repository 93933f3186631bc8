package model

import (
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
)

// ProrationInput amounts are in minor currency units.
type ProrationInput struct {
	CurrentAmount      int64
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	NewAmount          int64
	EffectiveDate      time.Time
}

type ProrationResult struct {
	IsUpgrade       bool          `json:"is_upgrade"`
	ChargeAmount    int64         `json:"charge_amount"`
	UnusedCredit    int64         `json:"unused_credit"`
	ProratedNewCost int64         `json:"prorated_new_cost"`
	PeriodLength    time.Duration `json:"period_length_ns"`
	Remaining       time.Duration `json:"remaining_ns"`
	Reason          string        `json:"reason"`
}

type Subscription struct {
	ID                 uint64                      `db:"id"`
	MerchantID         uint64                      `db:"merchant_id"`
	PlanID             uint64                      `db:"plan_id"`
	Amount             int64                       `db:"amount"`
	Currency           string                      `db:"currency"`
	Status             constant.SubscriptionStatus `db:"status"`
	CurrentPeriodStart time.Time                   `db:"current_period_start"`
	CurrentPeriodEnd   time.Time                   `db:"current_period_end"`
}

type Plan struct {
	ID       uint64 `db:"id"`
	Name     string `db:"name"`
	Amount   int64  `db:"amount"`
	Currency string `db:"currency"`
	Active   bool   `db:"active"`
}

type ChangePlanRequest struct {
	PlanID        uint64     `json:"plan_id" validate:"required"`
	EffectiveDate *time.Time `json:"effective_date"`
}

type ChangePlanResponse struct {
	SubscriptionID   uint64          `json:"subscription_id"`
	PreviousPlanID   uint64          `json:"previous_plan_id"`
	PlanID           uint64          `json:"plan_id"`
	Currency         string          `json:"currency"`
	EffectiveDate    time.Time       `json:"effective_date"`
	Proration        ProrationResult `json:"proration"`
	PaymentReference string          `json:"payment_reference,omitempty"`
}

type InsertPaymentTxItem struct {
	Reference      string
	MerchantID     uint64
	SubscriptionID uint64
	Amount         int64
	Currency       string
	Type           string
	Status         constant.PaymentStatus
}

type InsertAuditLogTxItem struct {
	MerchantID uint64
	UserID     uint64
	Action     string
	EntityType string
	EntityID   uint64
	Details    []byte
}

type UpdateSubscriptionPlanTxItem struct {
	SubscriptionID uint64
	PlanID         uint64
	Amount         int64
}
