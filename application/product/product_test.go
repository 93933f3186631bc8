package product_test

import (
	"context"
	"errors"
	"testing"

	appproduct "github.com/muhammadheryan/rental-shop/application/product"
	"github.com/muhammadheryan/rental-shop/constant"
	productmocks "github.com/muhammadheryan/rental-shop/mocks/repository/product"
	"github.com/muhammadheryan/rental-shop/model"
	cerr "github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductApp_GetProduct(t *testing.T) {
	tent := &model.ProductDetail{ID: 5, MerchantID: 10, Name: "Tent", RentPrice: 50000}
	stocks := []model.OutletStock{
		{OutletID: 2, OutletName: "Kemang", Stock: 4, Renting: 1},
		{OutletID: 3, OutletName: "Depok", Stock: 2, Renting: 5},
	}

	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	type args struct {
		ctx   context.Context
		scope model.TenantScope
		id    uint64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.ProductDetailResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: merchant sees every outlet",
			args: args{ctx: context.Background(), scope: model.TenantScope{MerchantID: 10}, id: 5},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(tent, nil).Once()
				f.productRepo.On("ListOutletStocks", mock.Anything, uint64(10), uint64(5)).Return(stocks, nil).Once()
			},
			want: &model.ProductDetailResponse{
				ProductDetail: *tent,
				Outlets: []model.OutletStock{
					{OutletID: 2, OutletName: "Kemang", Stock: 4, Renting: 1, Available: 3},
					{OutletID: 3, OutletName: "Depok", Stock: 2, Renting: 5, Available: 0},
				},
			},
		},
		{
			name: "success: outlet staff sees only their outlet",
			args: args{ctx: context.Background(), scope: model.TenantScope{MerchantID: 10, OutletID: 3}, id: 5},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(tent, nil).Once()
				f.productRepo.On("ListOutletStocks", mock.Anything, uint64(10), uint64(5)).Return(stocks, nil).Once()
			},
			want: &model.ProductDetailResponse{
				ProductDetail: *tent,
				Outlets: []model.OutletStock{
					{OutletID: 3, OutletName: "Depok", Stock: 2, Renting: 5, Available: 0},
				},
			},
		},
		{
			name: "error: not found",
			args: args{ctx: context.Background(), scope: model.TenantScope{MerchantID: 10}, id: 5},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: stock query fails",
			args: args{ctx: context.Background(), scope: model.TenantScope{MerchantID: 10}, id: 5},
			mockCall: func(f fields) {
				f.productRepo.On("GetByID", mock.Anything, uint64(10), uint64(5)).Return(tent, nil).Once()
				f.productRepo.On("ListOutletStocks", mock.Anything, uint64(10), uint64(5)).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productRepo: productmocks.NewProductRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appproduct.NewProductApp(f.productRepo)

			got, err := app.GetProduct(tt.args.ctx, tt.args.scope, tt.args.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
