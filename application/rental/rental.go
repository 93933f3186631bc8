package rental

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/application/availability"
	"github.com/muhammadheryan/rental-shop/cmd/config"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	lockrepo "github.com/muhammadheryan/rental-shop/repository/lock"
	orderrepo "github.com/muhammadheryan/rental-shop/repository/order"
	outletrepo "github.com/muhammadheryan/rental-shop/repository/outlet"
	txrepo "github.com/muhammadheryan/rental-shop/repository/tx"
	"github.com/muhammadheryan/rental-shop/thirdparty/rabbitmq"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/muhammadheryan/rental-shop/utils/logger"
	"go.uber.org/zap"
)

type RentalApp interface {
	CreateRentalOrder(ctx context.Context, scope model.TenantScope, req *model.CreateRentalOrderRequest) (*model.RentalOrderResponse, error)
	PickupOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error
	ReturnOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error
	CompleteOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error
	CancelOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error
	ExpireReservation(ctx context.Context, orderID uint64) error
}

type rentalAppImpl struct {
	config     *config.Config
	txRepo     txrepo.TxRepository
	orderRepo  orderrepo.OrderRepository
	outletRepo outletrepo.OutletRepository
	locker     lockrepo.Locker
	publisher  rabbitmq.EventPublisher
	now        func() time.Time
}

func NewRentalApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, outletRepo outletrepo.OutletRepository, locker lockrepo.Locker, publisher rabbitmq.EventPublisher, now func() time.Time) RentalApp {
	if now == nil {
		now = time.Now
	}
	return &rentalAppImpl{
		config:     config,
		txRepo:     txRepo,
		orderRepo:  orderRepo,
		outletRepo: outletRepo,
		locker:     locker,
		publisher:  publisher,
		now:        now,
	}
}

// CreateRentalOrder books every item for [PickupAt, ReturnAt]. Availability is
// re-checked under a per (product, outlet) lock and with the stock rows locked, so two
// concurrent bookings cannot both claim the last units.
func (s *rentalAppImpl) CreateRentalOrder(ctx context.Context, scope model.TenantScope, req *model.CreateRentalOrderRequest) (*model.RentalOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.ReturnAt.Before(req.PickupAt) {
		return nil, errors.SetCustomError(constant.ErrInvalidDateRange)
	}
	items, err := mergeItems(req.Items)
	if err != nil {
		return nil, err
	}

	outlet, err := availability.ResolveOutlet(ctx, s.outletRepo, scope, req.OutletID)
	if err != nil {
		return nil, err
	}

	release, err := s.lockStock(ctx, items, outlet.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateRentalOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pickupAt, returnAt := req.PickupAt.UTC(), req.ReturnAt.UTC()

	// validate availability for each item
	for _, item := range items {
		stock, err := s.outletRepo.GetStockForUpdateTx(ctx, tx, item.ProductID, outlet.ID)
		if err != nil {
			logger.Error("[CreateRentalOrder] get stock", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if stock == nil {
			return nil, errors.SetCustomError(constant.ErrStockNotFound)
		}

		candidates, err := s.orderRepo.ListActiveRentalsTx(ctx, tx, &model.ActiveRentalFilter{
			ProductID: item.ProductID,
			OutletID:  outlet.ID,
			Start:     pickupAt,
			End:       returnAt,
		})
		if err != nil {
			logger.Error("[CreateRentalOrder] list active rentals", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}

		verdict := availability.Check(model.AvailabilityRequest{
			ProductID: item.ProductID,
			OutletID:  outlet.ID,
			Quantity:  item.Quantity,
			HasWindow: true,
			Start:     pickupAt,
			End:       returnAt,
		}, *stock, candidates)

		if !verdict.StockAvailable {
			logger.Info("[CreateRentalOrder] insufficient stock", zap.Uint64("product_id", item.ProductID), zap.Int64("need", item.Quantity), zap.Int64("available", verdict.TotalAvailableStock))
			return nil, errors.SetCustomError(constant.ErrInsufficientStock)
		}
		if !verdict.CanFulfillRequest {
			logger.Info("[CreateRentalOrder] booked for period", zap.Uint64("product_id", item.ProductID), zap.Int64("need", item.Quantity), zap.Int64("free", verdict.EffectivelyAvailable), zap.Int64("conflicting", verdict.ConflictingQuantity))
			return nil, errors.SetCustomError(constant.ErrRentalConflict)
		}
	}

	orderNumber := s.newOrderNumber()
	orderID, err := s.orderRepo.InsertRentalOrderTx(ctx, tx, &model.InsertRentalOrderTxItem{
		OrderNumber: orderNumber,
		MerchantID:  scope.MerchantID,
		OutletID:    outlet.ID,
		CustomerID:  req.CustomerID,
		CreatedBy:   scope.UserID,
		OrderType:   constant.OrderTypeRent,
		Status:      constant.OrderStatusReserved,
		PickupAt:    pickupAt,
		ReturnAt:    returnAt,
		Note:        req.Note,
	})
	if err != nil {
		logger.Error("[CreateRentalOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, orderID, items); err != nil {
		logger.Error("[CreateRentalOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateRentalOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	// schedule automatic cancellation when the reservation is never picked up
	if s.publisher != nil {
		msg := rabbitmq.PickupExpirationMessage{
			OrderID:    orderID,
			MerchantID: scope.MerchantID,
			ExpiresAt:  pickupAt.Add(s.config.Rental.PickupGracePeriod),
		}
		if err := s.publisher.PublishPickupExpiration(msg); err != nil {
			logger.Error("[CreateRentalOrder] publish pickup expiration", zap.String("error", err.Error()))
		}
	}

	return &model.RentalOrderResponse{
		OrderID:     orderID,
		OrderNumber: orderNumber,
		Status:      constant.OrderStatusReserved,
		PickupAt:    pickupAt,
		ReturnAt:    returnAt,
	}, nil
}

func (s *rentalAppImpl) PickupOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error {
	return s.transition(ctx, "PickupOrder", orderID, constant.OrderStatusPickuped, func(order *model.OrderDetail) (bool, error) {
		if !ownedBy(order, scope) {
			return false, errors.SetCustomError(constant.ErrNotFound)
		}
		return true, requireStatus(order, constant.OrderStatusReserved)
	}, s.takeOut)
}

func (s *rentalAppImpl) ReturnOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error {
	return s.transition(ctx, "ReturnOrder", orderID, constant.OrderStatusReturned, func(order *model.OrderDetail) (bool, error) {
		if !ownedBy(order, scope) {
			return false, errors.SetCustomError(constant.ErrNotFound)
		}
		return true, requireStatus(order, constant.OrderStatusPickuped)
	}, s.bringBack)
}

func (s *rentalAppImpl) CompleteOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error {
	return s.transition(ctx, "CompleteOrder", orderID, constant.OrderStatusCompleted, func(order *model.OrderDetail) (bool, error) {
		if !ownedBy(order, scope) {
			return false, errors.SetCustomError(constant.ErrNotFound)
		}
		return true, requireStatus(order, constant.OrderStatusReturned)
	}, nil)
}

func (s *rentalAppImpl) CancelOrder(ctx context.Context, scope model.TenantScope, orderID uint64) error {
	return s.transition(ctx, "CancelOrder", orderID, constant.OrderStatusCancelled, func(order *model.OrderDetail) (bool, error) {
		if !ownedBy(order, scope) {
			return false, errors.SetCustomError(constant.ErrNotFound)
		}
		return true, requireStatus(order, constant.OrderStatusReserved)
	}, nil)
}

// ExpireReservation cancels a reservation whose pickup grace period is over. Orders
// already picked up, finished, or not yet expired are left untouched.
func (s *rentalAppImpl) ExpireReservation(ctx context.Context, orderID uint64) error {
	return s.transition(ctx, "ExpireReservation", orderID, constant.OrderStatusCancelled, func(order *model.OrderDetail) (bool, error) {
		if order.OrderType != constant.OrderTypeRent || order.Status != constant.OrderStatusReserved {
			return false, nil
		}
		deadline := order.PickupAt.Add(s.config.Rental.PickupGracePeriod)
		if s.now().Before(deadline) {
			return false, nil
		}
		return true, nil
	}, nil)
}

type stockAdjustment func(ctx context.Context, tx *sqlx.Tx, order *model.OrderDetail, item model.OrderItem) error

// transition moves an order to status inside one transaction. check decides, with the
// order row locked, whether to proceed; adjust runs per order item before the status
// update.
func (s *rentalAppImpl) transition(ctx context.Context, caller string, orderID uint64, status constant.OrderStatus, check func(order *model.OrderDetail) (bool, error), adjust stockAdjustment) error {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+caller+"] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderDetailTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("["+caller+"] get order detail", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	proceed, err := check(order)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if adjust != nil {
		items, err := s.orderRepo.GetOrderItemsTx(ctx, tx, orderID)
		if err != nil {
			logger.Error("["+caller+"] get order items", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		for _, item := range items {
			if err := adjust(ctx, tx, order, item); err != nil {
				if _, ok := err.(errors.CustomError); ok {
					return err
				}
				logger.Error("["+caller+"] adjust stock", zap.Uint64("product_id", item.ProductID), zap.String("error", err.Error()))
				return errors.SetCustomError(constant.ErrInternal)
			}
		}
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, orderID, status); err != nil {
		logger.Error("["+caller+"] update status", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+caller+"] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true
	return nil
}

// takeOut moves units from the shelf to renting; renting may never exceed stock.
func (s *rentalAppImpl) takeOut(ctx context.Context, tx *sqlx.Tx, order *model.OrderDetail, item model.OrderItem) error {
	stock, err := s.outletRepo.GetStockForUpdateTx(ctx, tx, item.ProductID, order.OutletID)
	if err != nil {
		return err
	}
	if stock == nil {
		return errors.SetCustomError(constant.ErrStockNotFound)
	}
	if stock.Available() < item.Quantity {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return s.outletRepo.IncreaseRentingTx(ctx, tx, item.ProductID, order.OutletID, item.Quantity)
}

func (s *rentalAppImpl) bringBack(ctx context.Context, tx *sqlx.Tx, order *model.OrderDetail, item model.OrderItem) error {
	return s.outletRepo.DecreaseRentingTx(ctx, tx, item.ProductID, order.OutletID, item.Quantity)
}

// lockStock obtains the booking locks in product order. When redis fails for any
// reason other than contention the booking continues on the row locks alone.
func (s *rentalAppImpl) lockStock(ctx context.Context, items []model.RentalItemRequest, outletID uint64) (func(), error) {
	held := make([]lockrepo.Lock, 0, len(items))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			if err := held[i].Release(ctx); err != nil {
				logger.Warn("[CreateRentalOrder] release lock", zap.String("error", err.Error()))
			}
		}
	}

	for _, item := range items {
		key := lockrepo.StockKey(item.ProductID, outletID)
		l, err := s.locker.Obtain(ctx, key, s.config.Rental.LockTTL)
		if err == lockrepo.ErrNotObtained {
			release()
			logger.Info("[CreateRentalOrder] lock busy", zap.String("key", key))
			return nil, errors.SetCustomError(constant.ErrLockNotObtained)
		}
		if err != nil {
			logger.Warn("[CreateRentalOrder] obtain lock, continuing without", zap.String("key", key), zap.String("error", err.Error()))
			continue
		}
		held = append(held, l)
	}
	return release, nil
}

func (s *rentalAppImpl) newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("RNT-%s-%s", s.now().UTC().Format("20060102"), suffix)
}

// mergeItems sums quantities per product and sorts by product id so locks are always
// taken in the same order.
func mergeItems(items []model.RentalItemRequest) ([]model.RentalItemRequest, error) {
	byProduct := make(map[uint64]int64, len(items))
	for _, item := range items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		byProduct[item.ProductID] += item.Quantity
	}

	merged := make([]model.RentalItemRequest, 0, len(byProduct))
	for productID, qty := range byProduct {
		merged = append(merged, model.RentalItemRequest{ProductID: productID, Quantity: qty})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ProductID < merged[j].ProductID })
	return merged, nil
}

func ownedBy(order *model.OrderDetail, scope model.TenantScope) bool {
	if order.MerchantID != scope.MerchantID {
		return false
	}
	return scope.OutletID == 0 || scope.OutletID == order.OutletID
}

func requireStatus(order *model.OrderDetail, status constant.OrderStatus) error {
	if order.OrderType != constant.OrderTypeRent || order.Status != status {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}
	return nil
}
