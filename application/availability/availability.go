package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	orderrepo "github.com/muhammadheryan/rental-shop/repository/order"
	outletrepo "github.com/muhammadheryan/rental-shop/repository/outlet"
	productrepo "github.com/muhammadheryan/rental-shop/repository/product"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
)

type AvailabilityApp interface {
	CheckAvailability(ctx context.Context, scope model.TenantScope, productID uint64, params model.AvailabilityParams) (*model.AvailabilityResponse, error)
}

type availabilityAppImpl struct {
	productRepo productrepo.ProductRepository
	outletRepo  outletrepo.OutletRepository
	orderRepo   orderrepo.OrderRepository
	now         func() time.Time
}

func NewAvailabilityApp(productRepo productrepo.ProductRepository, outletRepo outletrepo.OutletRepository, orderRepo orderrepo.OrderRepository, now func() time.Time) AvailabilityApp {
	if now == nil {
		now = time.Now
	}
	return &availabilityAppImpl{
		productRepo: productRepo,
		outletRepo:  outletRepo,
		orderRepo:   orderRepo,
		now:         now,
	}
}

func (s *availabilityAppImpl) CheckAvailability(ctx context.Context, scope model.TenantScope, productID uint64, params model.AvailabilityParams) (*model.AvailabilityResponse, error) {
	req, err := ParseQuery(params, s.now())
	if err != nil {
		return nil, err
	}
	req.ProductID = productID

	product, err := s.productRepo.GetByID(ctx, scope.MerchantID, productID)
	if err != nil {
		logger.Error("[CheckAvailability] error productRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	outlet, err := ResolveOutlet(ctx, s.outletRepo, scope, req.OutletID)
	if err != nil {
		return nil, err
	}
	req.OutletID = outlet.ID

	stock, err := s.outletRepo.GetStock(ctx, productID, outlet.ID)
	if err != nil {
		logger.Error("[CheckAvailability] error outletRepo.GetStock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if stock == nil {
		return nil, errors.SetCustomError(constant.ErrStockNotFound)
	}

	var candidates []model.RentalInterval
	if req.HasWindow {
		candidates, err = s.orderRepo.ListActiveRentals(ctx, &model.ActiveRentalFilter{
			ProductID: productID,
			OutletID:  outlet.ID,
			Start:     req.Start,
			End:       req.End,
		})
		if err != nil {
			logger.Error("[CheckAvailability] error orderRepo.ListActiveRentals", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	verdict := Check(*req, *stock, candidates)

	res := buildResponse(*req, verdict)
	res.ProductName = product.Name
	return res, nil
}

// ResolveOutlet picks the outlet a request targets and checks it belongs to the
// merchant. Outlet-bound sessions may only address their own outlet.
func ResolveOutlet(ctx context.Context, outletRepo outletrepo.OutletRepository, scope model.TenantScope, requested uint64) (*model.Outlet, error) {
	outletID := requested
	if outletID == 0 {
		outletID = scope.OutletID
	}
	if outletID == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if scope.OutletID != 0 && scope.OutletID != outletID {
		return nil, errors.SetCustomError(constant.ErrInvalidOutletScope)
	}

	outlet, err := outletRepo.GetOutletByID(ctx, outletID)
	if err != nil {
		logger.Error("[ResolveOutlet] error outletRepo.GetOutletByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if outlet == nil || outlet.MerchantID != scope.MerchantID || outlet.Status != constant.OutletStatusActive {
		return nil, errors.SetCustomError(constant.ErrInvalidOutletScope)
	}
	return outlet, nil
}

func buildResponse(req model.AvailabilityRequest, v model.AvailabilityVerdict) *model.AvailabilityResponse {
	res := &model.AvailabilityResponse{
		ProductID:            req.ProductID,
		OutletID:             req.OutletID,
		RequestedQuantity:    req.Quantity,
		Timezone:             req.Location.String(),
		TotalStock:           v.TotalStock,
		Renting:              v.Renting,
		TotalAvailableStock:  v.TotalAvailableStock,
		StockAvailable:       v.StockAvailable,
		ConflictingQuantity:  v.ConflictingQuantity,
		EffectivelyAvailable: v.EffectivelyAvailable,
		IsAvailable:          v.CanFulfillRequest,
		CanFulfillRequest:    v.CanFulfillRequest,
		Conflicts:            make([]model.ConflictResponse, 0, len(v.Conflicts)),
		Message:              Message(req, v),
	}
	if req.HasWindow {
		res.RentalStart = FormatTime(req.Start, req.Location, req.Precision)
		res.RentalEnd = FormatTime(req.End, req.Location, req.Precision)
	}
	for _, c := range v.Conflicts {
		res.Conflicts = append(res.Conflicts, model.ConflictResponse{
			OrderID:           c.OrderID,
			OrderNumber:       c.OrderNumber,
			Quantity:          c.Quantity,
			Status:            c.Status,
			PickupAt:          FormatTime(c.PickupAt, req.Location, req.Precision),
			ReturnAt:          FormatTime(c.ReturnAt, req.Location, req.Precision),
			OverlapType:       c.Kind,
			OverlapStart:      FormatTime(c.OverlapStart, req.Location, req.Precision),
			OverlapEnd:        FormatTime(c.OverlapEnd, req.Location, req.Precision),
			OverlapDurationMs: c.OverlapDuration.Milliseconds(),
		})
	}
	return res
}

// Message summarizes a verdict for display.
func Message(req model.AvailabilityRequest, v model.AvailabilityVerdict) string {
	if !v.StockAvailable {
		return fmt.Sprintf("Insufficient stock: %d unit(s) available at this outlet, %d requested", v.TotalAvailableStock, req.Quantity)
	}
	if !req.HasWindow {
		return fmt.Sprintf("Available: %d unit(s) in stock, %d requested", v.TotalAvailableStock, req.Quantity)
	}
	if len(v.Conflicts) == 0 {
		return fmt.Sprintf("Available for the requested period: %d unit(s) free, %d requested", v.EffectivelyAvailable, req.Quantity)
	}
	if v.CanFulfillRequest {
		return fmt.Sprintf("Available for the requested period: %d unit(s) free after %d booked by %d overlapping order(s), %d requested",
			v.EffectivelyAvailable, v.ConflictingQuantity, len(v.Conflicts), req.Quantity)
	}
	return fmt.Sprintf("Not available for the requested period: %d unit(s) free after %d booked by %d overlapping order(s), %d requested",
		v.EffectivelyAvailable, v.ConflictingQuantity, len(v.Conflicts), req.Quantity)
}
