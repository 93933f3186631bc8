package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadheryan/rental-shop/application/availability"
	"github.com/muhammadheryan/rental-shop/constant"
	ordermocks "github.com/muhammadheryan/rental-shop/mocks/repository/order"
	outletmocks "github.com/muhammadheryan/rental-shop/mocks/repository/outlet"
	productmocks "github.com/muhammadheryan/rental-shop/mocks/repository/product"
	"github.com/muhammadheryan/rental-shop/model"
	cerr "github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var activeOutlet = &model.Outlet{ID: 2, MerchantID: 10, Name: "Kemang", Status: constant.OutletStatusActive}

func TestAvailabilityApp_CheckAvailability(t *testing.T) {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	merchantScope := model.TenantScope{UserID: 1, MerchantID: 10}

	type fields struct {
		productRepo *productmocks.ProductRepository
		outletRepo  *outletmocks.OutletRepository
		orderRepo   *ordermocks.OrderRepository
	}
	type args struct {
		scope     model.TenantScope
		productID uint64
		params    model.AvailabilityParams
	}
	newFields := func(t *testing.T) fields {
		return fields{
			productRepo: productmocks.NewProductRepository(t),
			outletRepo:  outletmocks.NewOutletRepository(t),
			orderRepo:   ordermocks.NewOrderRepository(t),
		}
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		check    func(t *testing.T, got *model.AvailabilityResponse)
		errCode  constant.ErrorType
	}{
		{
			name: "success: window with touching order",
			args: args{
				scope:     merchantScope,
				productID: 5,
				params:    model.AvailabilityParams{OutletID: "2", Quantity: "5", Start: "2024-01-15T00:00:00Z", End: "2024-01-20T00:00:00Z"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5, MerchantID: 10, Name: "Tent"}, nil).Once()
				f.outletRepo.On("GetOutletByID", mock.Anything, uint64(2)).Return(activeOutlet, nil).Once()
				f.outletRepo.On("GetStock", mock.Anything, uint64(5), uint64(2)).Return(&model.StockRecord{ProductID: 5, OutletID: 2, Stock: 10}, nil).Once()
				f.orderRepo.On("ListActiveRentals", mock.Anything, mock.MatchedBy(func(filter *model.ActiveRentalFilter) bool {
					return filter.ProductID == 5 && filter.OutletID == 2 &&
						filter.Start.Equal(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)) &&
						filter.End.Equal(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC))
				})).Return([]model.RentalInterval{
					{
						OrderID:     9,
						OrderNumber: "RNT-20240101-AAAA0001",
						Quantity:    3,
						PickupAt:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
						ReturnAt:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
						OrderType:   constant.OrderTypeRent,
						Status:      constant.OrderStatusReserved,
					},
				}, nil).Once()
			},
			check: func(t *testing.T, got *model.AvailabilityResponse) {
				assert.Equal(t, "Tent", got.ProductName)
				assert.Equal(t, int64(3), got.ConflictingQuantity)
				assert.Equal(t, int64(7), got.EffectivelyAvailable)
				assert.True(t, got.CanFulfillRequest)
				assert.True(t, got.IsAvailable)
				assert.Equal(t, "2024-01-15T00:00:00Z", got.RentalStart)
				require.Len(t, got.Conflicts, 1)
				assert.Equal(t, constant.PeriodOverlap, got.Conflicts[0].OverlapType)
				assert.Equal(t, int64(0), got.Conflicts[0].OverlapDurationMs)
			},
		},
		{
			name: "success: no window skips order lookup",
			args: args{
				scope:     model.TenantScope{UserID: 1, MerchantID: 10, OutletID: 2},
				productID: 5,
				params:    model.AvailabilityParams{Quantity: "3"},
			},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5, Name: "Tent"}, nil).Once()
				f.outletRepo.On("GetOutletByID", mock.Anything, uint64(2)).Return(activeOutlet, nil).Once()
				f.outletRepo.On("GetStock", mock.Anything, uint64(5), uint64(2)).Return(&model.StockRecord{Stock: 5, Renting: 2}, nil).Once()
			},
			check: func(t *testing.T, got *model.AvailabilityResponse) {
				assert.True(t, got.IsAvailable)
				assert.Equal(t, int64(3), got.TotalAvailableStock)
				assert.Empty(t, got.RentalStart)
				assert.NotNil(t, got.Conflicts)
				assert.Equal(t, "Available: 3 unit(s) in stock, 3 requested", got.Message)
			},
		},
		{
			name:    "error: invalid query",
			args:    args{scope: merchantScope, productID: 5, params: model.AvailabilityParams{Quantity: "zero"}},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: product of another merchant",
			args: args{scope: merchantScope, productID: 5, params: model.AvailabilityParams{OutletID: "2"}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(nil, nil).Once()
			},
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: product repository failure",
			args: args{scope: merchantScope, productID: 5, params: model.AvailabilityParams{OutletID: "2"}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(nil, errors.New("db down")).Once()
			},
			errCode: constant.ErrInternal,
		},
		{
			name: "error: outlet required for merchant wide session",
			args: args{scope: merchantScope, productID: 5},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5}, nil).Once()
			},
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: outlet bound session asks for another outlet",
			args: args{scope: model.TenantScope{MerchantID: 10, OutletID: 2}, productID: 5, params: model.AvailabilityParams{OutletID: "3"}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5}, nil).Once()
			},
			errCode: constant.ErrInvalidOutletScope,
		},
		{
			name: "error: outlet of another merchant",
			args: args{scope: merchantScope, productID: 5, params: model.AvailabilityParams{OutletID: "4"}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5}, nil).Once()
				f.outletRepo.On("GetOutletByID", mock.Anything, uint64(4)).Return(&model.Outlet{ID: 4, MerchantID: 11, Status: constant.OutletStatusActive}, nil).Once()
			},
			errCode: constant.ErrInvalidOutletScope,
		},
		{
			name: "error: no stock row",
			args: args{scope: merchantScope, productID: 5, params: model.AvailabilityParams{OutletID: "2"}},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(&model.ProductDetail{ID: 5}, nil).Once()
				f.outletRepo.On("GetOutletByID", mock.Anything, uint64(2)).Return(activeOutlet, nil).Once()
				f.outletRepo.On("GetStock", mock.Anything, uint64(5), uint64(2)).Return(nil, nil).Once()
			},
			errCode: constant.ErrStockNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := availability.NewAvailabilityApp(f.productRepo, f.outletRepo, f.orderRepo, func() time.Time { return now })

			got, err := app.CheckAvailability(context.Background(), tt.args.scope, tt.args.productID, tt.args.params)
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

func TestMessage(t *testing.T) {
	withWindow := model.AvailabilityRequest{Quantity: 2, HasWindow: true}

	assert.Equal(t, "Insufficient stock: 1 unit(s) available at this outlet, 2 requested",
		availability.Message(withWindow, model.AvailabilityVerdict{TotalAvailableStock: 1}))
	assert.Equal(t, "Available for the requested period: 4 unit(s) free, 2 requested",
		availability.Message(withWindow, model.AvailabilityVerdict{StockAvailable: true, EffectivelyAvailable: 4, CanFulfillRequest: true}))
	assert.Equal(t, "Not available for the requested period: 1 unit(s) free after 3 booked by 1 overlapping order(s), 2 requested",
		availability.Message(withWindow, model.AvailabilityVerdict{
			StockAvailable:       true,
			ConflictingQuantity:  3,
			EffectivelyAvailable: 1,
			Conflicts:            []model.ConflictDetail{{OrderID: 1, Quantity: 3}},
		}))
}
