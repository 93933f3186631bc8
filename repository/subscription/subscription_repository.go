package subscription

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/model"
)

type SubscriptionRepository interface {
	GetSubscription(ctx context.Context, subscriptionID uint64) (*model.Subscription, error)
	GetSubscriptionForUpdateTx(ctx context.Context, tx *sqlx.Tx, subscriptionID uint64) (*model.Subscription, error)
	GetPlan(ctx context.Context, planID uint64) (*model.Plan, error)
	UpdateSubscriptionPlanTx(ctx context.Context, tx *sqlx.Tx, req *model.UpdateSubscriptionPlanTxItem) error
	InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertPaymentTxItem) (uint64, error)
	InsertAuditLogTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertAuditLogTxItem) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSubscriptionRepository(conn *sqlx.DB) SubscriptionRepository {
	return &SQL{conn: conn}
}

const (
	getSubscriptionQuery = `SELECT id, merchant_id, plan_id, amount, currency, status, current_period_start, current_period_end FROM subscription WHERE id = ?`
	getPlanQuery         = `SELECT id, name, amount, currency, active FROM plan WHERE id = ?`
	insertPaymentQuery   = `INSERT INTO payment (reference, merchant_id, subscription_id, amount, currency, type, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	insertAuditLogQuery  = `INSERT INTO audit_log (merchant_id, user_id, action, entity_type, entity_id, details, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
)

func (r *SQL) GetSubscription(ctx context.Context, subscriptionID uint64) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.conn.GetContext(ctx, &sub, getSubscriptionQuery, subscriptionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SQL) GetSubscriptionForUpdateTx(ctx context.Context, tx *sqlx.Tx, subscriptionID uint64) (*model.Subscription, error) {
	var sub model.Subscription
	if err := tx.GetContext(ctx, &sub, getSubscriptionQuery+" FOR UPDATE", subscriptionID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SQL) GetPlan(ctx context.Context, planID uint64) (*model.Plan, error) {
	var plan model.Plan
	if err := r.conn.GetContext(ctx, &plan, getPlanQuery, planID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *SQL) UpdateSubscriptionPlanTx(ctx context.Context, tx *sqlx.Tx, req *model.UpdateSubscriptionPlanTxItem) error {
	_, err := tx.ExecContext(ctx, "UPDATE subscription SET plan_id = ?, amount = ?, updated_at = NOW() WHERE id = ?", req.PlanID, req.Amount, req.SubscriptionID)
	return err
}

func (r *SQL) InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertPaymentTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertPaymentQuery, req.Reference, req.MerchantID, req.SubscriptionID, req.Amount, req.Currency, req.Type, req.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertAuditLogTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertAuditLogTxItem) error {
	_, err := tx.ExecContext(ctx, insertAuditLogQuery, req.MerchantID, req.UserID, req.Action, req.EntityType, req.EntityID, req.Details)
	return err
}
