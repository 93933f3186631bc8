package subscription_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/application/subscription"
	"github.com/muhammadheryan/rental-shop/constant"
	subscriptionmocks "github.com/muhammadheryan/rental-shop/mocks/repository/subscription"
	txmocks "github.com/muhammadheryan/rental-shop/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/rental-shop/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-shop/model"
	"github.com/muhammadheryan/rental-shop/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeSubscription() *model.Subscription {
	return &model.Subscription{
		ID:                 7,
		MerchantID:         10,
		PlanID:             1,
		Amount:             30,
		Currency:           "IDR",
		Status:             constant.SubscriptionStatusActive,
		CurrentPeriodStart: periodStart,
		CurrentPeriodEnd:   periodEnd,
	}
}

func TestSubscriptionApp_ChangePlan(t *testing.T) {
	scope := model.TenantScope{UserID: 3, MerchantID: 10}
	halfway := periodEnd.Add(-15 * 24 * time.Hour)
	premium := &model.Plan{ID: 2, Name: "Premium", Amount: 60, Currency: "IDR", Active: true}
	basic := &model.Plan{ID: 3, Name: "Basic", Amount: 10, Currency: "IDR", Active: true}

	type fields struct {
		txRepo           *txmocks.TxRepository
		subscriptionRepo *subscriptionmocks.SubscriptionRepository
		publisher        *rabbitmocks.EventPublisher
	}
	tests := []struct {
		name     string
		req      *model.ChangePlanRequest
		mockCall func(f fields)
		check    func(t *testing.T, got *model.ChangePlanResponse)
		errCode  constant.ErrorType
	}{
		{
			name: "success: upgrade creates a pending payment",
			req:  &model.ChangePlanRequest{PlanID: 2, EffectiveDate: &halfway},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(premium, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(activeSubscription(), nil).Once()
				f.subscriptionRepo.On("UpdateSubscriptionPlanTx", mock.Anything, tx, &model.UpdateSubscriptionPlanTxItem{
					SubscriptionID: 7,
					PlanID:         2,
					Amount:         60,
				}).Return(nil).Once()
				f.subscriptionRepo.On("InsertPaymentTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertPaymentTxItem) bool {
					return req.Amount == 15 && req.Type == constant.PaymentTypeProration &&
						req.Status == constant.PaymentStatusPending && req.Reference != ""
				})).Return(uint64(100), nil).Once()
				f.subscriptionRepo.On("InsertAuditLogTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertAuditLogTxItem) bool {
					var details model.ChangePlanResponse
					if err := json.Unmarshal(req.Details, &details); err != nil {
						return false
					}
					return req.UserID == 3 && req.Action == constant.AuditActionPlanChange && details.Proration.ChargeAmount == 15
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishPlanChanged", mock.MatchedBy(func(msg rabbitmq.PlanChangedMessage) bool {
					return msg.SubscriptionID == 7 && msg.PlanID == 2 && msg.ChargeAmount == 15 && msg.EventID != ""
				})).Return(nil).Once()
			},
			check: func(t *testing.T, got *model.ChangePlanResponse) {
				assert.Equal(t, uint64(1), got.PreviousPlanID)
				assert.Equal(t, int64(15), got.Proration.ChargeAmount)
				assert.True(t, got.Proration.IsUpgrade)
				assert.NotEmpty(t, got.PaymentReference)
			},
		},
		{
			name: "success: downgrade records no payment",
			req:  &model.ChangePlanRequest{PlanID: 3},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(3)).Return(basic, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(activeSubscription(), nil).Once()
				f.subscriptionRepo.On("UpdateSubscriptionPlanTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.subscriptionRepo.On("InsertAuditLogTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.publisher.On("PublishPlanChanged", mock.Anything).Return(errors.New("broker down")).Once()
			},
			check: func(t *testing.T, got *model.ChangePlanResponse) {
				assert.Equal(t, int64(0), got.Proration.ChargeAmount)
				assert.Equal(t, subscription.ReasonDowngrade, got.Proration.Reason)
				assert.Empty(t, got.PaymentReference)
				assert.Equal(t, halfway, got.EffectiveDate)
			},
		},
		{
			name: "error: plan not found",
			req:  &model.ChangePlanRequest{PlanID: 9},
			mockCall: func(f fields) {
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(9)).Return(nil, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: inactive plan",
			req:  &model.ChangePlanRequest{PlanID: 2},
			mockCall: func(f fields) {
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(&model.Plan{ID: 2, Amount: 60, Currency: "IDR"}, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: subscription of another merchant",
			req:  &model.ChangePlanRequest{PlanID: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				sub := activeSubscription()
				sub.MerchantID = 11
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(premium, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(sub, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: subscription past due",
			req:  &model.ChangePlanRequest{PlanID: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				sub := activeSubscription()
				sub.Status = constant.SubscriptionStatusPastDue
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(premium, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(sub, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrInvalidSubscriptionStatus,
		},
		{
			name: "error: same plan",
			req:  &model.ChangePlanRequest{PlanID: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(1)).Return(&model.Plan{ID: 1, Amount: 30, Currency: "IDR", Active: true}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(activeSubscription(), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: effective date outside the period",
			req: func() *model.ChangePlanRequest {
				late := periodEnd.Add(time.Hour)
				return &model.ChangePlanRequest{PlanID: 2, EffectiveDate: &late}
			}(),
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(premium, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(activeSubscription(), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrInvalidDateRange,
		},
		{
			name: "error: commit fails",
			req:  &model.ChangePlanRequest{PlanID: 3},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.subscriptionRepo.On("GetPlan", mock.Anything, uint64(3)).Return(basic, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.subscriptionRepo.On("GetSubscriptionForUpdateTx", mock.Anything, tx, uint64(7)).Return(activeSubscription(), nil).Once()
				f.subscriptionRepo.On("UpdateSubscriptionPlanTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.subscriptionRepo.On("InsertAuditLogTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:           txmocks.NewTxRepository(t),
				subscriptionRepo: subscriptionmocks.NewSubscriptionRepository(t),
				publisher:        rabbitmocks.NewEventPublisher(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := subscription.NewSubscriptionApp(f.txRepo, f.subscriptionRepo, f.publisher, func() time.Time { return halfway })

			got, err := app.ChangePlan(context.Background(), scope, 7, tt.req)
			if tt.check == nil {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestSubscriptionApp_PreviewPlanChange(t *testing.T) {
	halfway := periodEnd.Add(-15 * 24 * time.Hour)
	txRepo := txmocks.NewTxRepository(t)
	subscriptionRepo := subscriptionmocks.NewSubscriptionRepository(t)

	subscriptionRepo.On("GetSubscription", mock.Anything, uint64(7)).Return(activeSubscription(), nil).Once()
	subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(&model.Plan{ID: 2, Amount: 60, Currency: "IDR", Active: true}, nil).Once()

	app := subscription.NewSubscriptionApp(txRepo, subscriptionRepo, nil, func() time.Time { return halfway })
	got, err := app.PreviewPlanChange(context.Background(), model.TenantScope{MerchantID: 10}, 7, &model.ChangePlanRequest{PlanID: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(15), got.Proration.ChargeAmount)
	assert.Equal(t, halfway, got.EffectiveDate)
	assert.Empty(t, got.PaymentReference)
}

func TestSubscriptionApp_PreviewPlanChange_CurrencyMismatch(t *testing.T) {
	subscriptionRepo := subscriptionmocks.NewSubscriptionRepository(t)
	subscriptionRepo.On("GetSubscription", mock.Anything, uint64(7)).Return(activeSubscription(), nil).Once()
	subscriptionRepo.On("GetPlan", mock.Anything, uint64(2)).Return(&model.Plan{ID: 2, Amount: 5, Currency: "USD", Active: true}, nil).Once()

	app := subscription.NewSubscriptionApp(txmocks.NewTxRepository(t), subscriptionRepo, nil, nil)
	_, err := app.PreviewPlanChange(context.Background(), model.TenantScope{MerchantID: 10}, 7, &model.ChangePlanRequest{PlanID: 2})

	assert.True(t, cerr.IsType(err, constant.ErrInvalidRequest))
}
