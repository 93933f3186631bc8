package product

import (
	"context"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	productRepo "github.com/muhammadheryan/rental-shop/repository/product"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	GetProduct(ctx context.Context, scope model.TenantScope, id uint64) (*model.ProductDetailResponse, error)
}

type productAppImpl struct {
	productRepo productRepo.ProductRepository
}

func NewProductApp(productRepo productRepo.ProductRepository) ProductApp {
	return &productAppImpl{productRepo: productRepo}
}

// GetProduct returns the product with its stock at every outlet of the merchant, or
// only at the session's outlet for outlet-bound users.
func (s *productAppImpl) GetProduct(ctx context.Context, scope model.TenantScope, id uint64) (*model.ProductDetailResponse, error) {
	product, err := s.productRepo.GetByID(ctx, scope.MerchantID, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	stocks, err := s.productRepo.ListOutletStocks(ctx, scope.MerchantID, id)
	if err != nil {
		logger.Error("[GetProduct] error productRepo.ListOutletStocks", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := &model.ProductDetailResponse{
		ProductDetail: *product,
		Outlets:       make([]model.OutletStock, 0, len(stocks)),
	}
	for _, st := range stocks {
		if scope.OutletID != 0 && st.OutletID != scope.OutletID {
			continue
		}
		st.Available = model.StockRecord{Stock: st.Stock, Renting: st.Renting}.Available()
		res.Outlets = append(res.Outlets, st)
	}

	return res, nil
}
