package subscription

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	subscriptionrepo "github.com/muhammadheryan/rental-shop/repository/subscription"
	txrepo "github.com/muhammadheryan/rental-shop/repository/tx"
	"github.com/muhammadheryan/rental-shop/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
)

type SubscriptionApp interface {
	PreviewPlanChange(ctx context.Context, scope model.TenantScope, subscriptionID uint64, req *model.ChangePlanRequest) (*model.ChangePlanResponse, error)
	ChangePlan(ctx context.Context, scope model.TenantScope, subscriptionID uint64, req *model.ChangePlanRequest) (*model.ChangePlanResponse, error)
}

type subscriptionAppImpl struct {
	txRepo           txrepo.TxRepository
	subscriptionRepo subscriptionrepo.SubscriptionRepository
	publisher        rabbitmq.EventPublisher
	now              func() time.Time
}

func NewSubscriptionApp(txRepo txrepo.TxRepository, subscriptionRepo subscriptionrepo.SubscriptionRepository, publisher rabbitmq.EventPublisher, now func() time.Time) SubscriptionApp {
	if now == nil {
		now = time.Now
	}
	return &subscriptionAppImpl{
		txRepo:           txRepo,
		subscriptionRepo: subscriptionRepo,
		publisher:        publisher,
		now:              now,
	}
}

func (s *subscriptionAppImpl) PreviewPlanChange(ctx context.Context, scope model.TenantScope, subscriptionID uint64, req *model.ChangePlanRequest) (*model.ChangePlanResponse, error) {
	sub, err := s.subscriptionRepo.GetSubscription(ctx, subscriptionID)
	if err != nil {
		logger.Error("[PreviewPlanChange] error subscriptionRepo.GetSubscription", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	plan, err := s.loadPlan(ctx, "PreviewPlanChange", req.PlanID)
	if err != nil {
		return nil, err
	}

	effective, err := s.validateChange(scope, sub, plan, req)
	if err != nil {
		return nil, err
	}

	return &model.ChangePlanResponse{
		SubscriptionID: sub.ID,
		PreviousPlanID: sub.PlanID,
		PlanID:         plan.ID,
		Currency:       sub.Currency,
		EffectiveDate:  effective,
		Proration:      CalculateProration(prorationInput(sub, plan, effective)),
	}, nil
}

func (s *subscriptionAppImpl) ChangePlan(ctx context.Context, scope model.TenantScope, subscriptionID uint64, req *model.ChangePlanRequest) (*model.ChangePlanResponse, error) {
	plan, err := s.loadPlan(ctx, "ChangePlan", req.PlanID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ChangePlan] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	sub, err := s.subscriptionRepo.GetSubscriptionForUpdateTx(ctx, tx, subscriptionID)
	if err != nil {
		logger.Error("[ChangePlan] get subscription", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	effective, err := s.validateChange(scope, sub, plan, req)
	if err != nil {
		return nil, err
	}

	proration := CalculateProration(prorationInput(sub, plan, effective))

	if err := s.subscriptionRepo.UpdateSubscriptionPlanTx(ctx, tx, &model.UpdateSubscriptionPlanTxItem{
		SubscriptionID: sub.ID,
		PlanID:         plan.ID,
		Amount:         plan.Amount,
	}); err != nil {
		logger.Error("[ChangePlan] update subscription plan", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.ChangePlanResponse{
		SubscriptionID: sub.ID,
		PreviousPlanID: sub.PlanID,
		PlanID:         plan.ID,
		Currency:       sub.Currency,
		EffectiveDate:  effective,
		Proration:      proration,
	}

	if proration.ChargeAmount > 0 {
		res.PaymentReference = uuid.NewString()
		if _, err := s.subscriptionRepo.InsertPaymentTx(ctx, tx, &model.InsertPaymentTxItem{
			Reference:      res.PaymentReference,
			MerchantID:     sub.MerchantID,
			SubscriptionID: sub.ID,
			Amount:         proration.ChargeAmount,
			Currency:       sub.Currency,
			Type:           constant.PaymentTypeProration,
			Status:         constant.PaymentStatusPending,
		}); err != nil {
			logger.Error("[ChangePlan] insert payment", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	details, err := json.Marshal(res)
	if err != nil {
		logger.Error("[ChangePlan] marshal audit details", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.subscriptionRepo.InsertAuditLogTx(ctx, tx, &model.InsertAuditLogTxItem{
		MerchantID: sub.MerchantID,
		UserID:     scope.UserID,
		Action:     constant.AuditActionPlanChange,
		EntityType: "subscription",
		EntityID:   sub.ID,
		Details:    details,
	}); err != nil {
		logger.Error("[ChangePlan] insert audit log", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ChangePlan] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if s.publisher != nil {
		msg := rabbitmq.PlanChangedMessage{
			EventID:          uuid.NewString(),
			SubscriptionID:   sub.ID,
			MerchantID:       sub.MerchantID,
			PreviousPlanID:   sub.PlanID,
			PlanID:           plan.ID,
			ChargeAmount:     proration.ChargeAmount,
			Currency:         sub.Currency,
			PaymentReference: res.PaymentReference,
			EffectiveDate:    effective,
		}
		if err := s.publisher.PublishPlanChanged(msg); err != nil {
			logger.Error("[ChangePlan] publish plan changed", zap.String("error", err.Error()))
		}
	}

	logger.Info("[ChangePlan] plan changed",
		zap.Uint64("subscription_id", sub.ID),
		zap.Uint64("plan_id", plan.ID),
		zap.Int64("charge_amount", proration.ChargeAmount),
		zap.String("reason", proration.Reason),
	)

	return res, nil
}

func (s *subscriptionAppImpl) loadPlan(ctx context.Context, caller string, planID uint64) (*model.Plan, error) {
	plan, err := s.subscriptionRepo.GetPlan(ctx, planID)
	if err != nil {
		logger.Error("["+caller+"] error subscriptionRepo.GetPlan", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if plan == nil || !plan.Active {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return plan, nil
}

// validateChange returns the effective date of the change, defaulting to now.
func (s *subscriptionAppImpl) validateChange(scope model.TenantScope, sub *model.Subscription, plan *model.Plan, req *model.ChangePlanRequest) (time.Time, error) {
	if sub == nil || sub.MerchantID != scope.MerchantID {
		return time.Time{}, errors.SetCustomError(constant.ErrNotFound)
	}
	if sub.Status != constant.SubscriptionStatusActive {
		return time.Time{}, errors.SetCustomError(constant.ErrInvalidSubscriptionStatus)
	}
	if plan.ID == sub.PlanID || plan.Currency != sub.Currency {
		return time.Time{}, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	effective := s.now().UTC()
	if req.EffectiveDate != nil {
		effective = req.EffectiveDate.UTC()
	}
	if effective.Before(sub.CurrentPeriodStart) || effective.After(sub.CurrentPeriodEnd) {
		return time.Time{}, errors.SetCustomError(constant.ErrInvalidDateRange)
	}
	return effective, nil
}

func prorationInput(sub *model.Subscription, plan *model.Plan, effective time.Time) model.ProrationInput {
	return model.ProrationInput{
		CurrentAmount:      sub.Amount,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		NewAmount:          plan.Amount,
		EffectiveDate:      effective,
	}
}
