package order

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertRentalOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertRentalOrderTxItem) (uint64, error)
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.RentalItemRequest) error
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error
	GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error)
	GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error)
	ListActiveRentals(ctx context.Context, filter *model.ActiveRentalFilter) ([]model.RentalInterval, error)
	ListActiveRentalsTx(ctx context.Context, tx *sqlx.Tx, filter *model.ActiveRentalFilter) ([]model.RentalInterval, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const listActiveRentalsQuery = "SELECT o.id AS order_id, o.order_number, oi.product_id, o.outlet_id, oi.quantity, o.pickup_at, o.return_at, o.order_type, o.status " +
	"FROM `order` o JOIN order_item oi ON oi.order_id = o.id " +
	"WHERE oi.product_id = ? AND o.outlet_id = ? AND o.order_type = ? AND o.status IN (?) " +
	"AND o.pickup_at <= ? AND o.return_at >= ? AND o.id <> ? " +
	"ORDER BY o.pickup_at, o.id"

func (r *SQL) InsertRentalOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertRentalOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO `order` (order_number, merchant_id, outlet_id, customer_id, created_by, order_type, status, pickup_at, return_at, note) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		req.OrderNumber, req.MerchantID, req.OutletID, req.CustomerID, req.CreatedBy, req.OrderType, req.Status, req.PickupAt, req.ReturnAt, req.Note)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.RentalItemRequest) error {
	q := "INSERT INTO order_item (order_id, product_id, quantity) VALUES (?, ?, ?)"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, orderID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ?, updated_at = NOW() WHERE id = ?", status, orderID)
	return err
}

// GetOrderDetailTx locks the order row. A missing order yields (nil, nil).
func (r *SQL) GetOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	row := tx.QueryRowxContext(ctx, "SELECT id, order_number, merchant_id, outlet_id, order_type, status, pickup_at, return_at FROM `order` WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderItem, error) {
	items := make([]model.OrderItem, 0)
	if err := tx.SelectContext(ctx, &items, "SELECT product_id, quantity FROM order_item WHERE order_id = ? ORDER BY product_id", orderID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListActiveRentals(ctx context.Context, filter *model.ActiveRentalFilter) ([]model.RentalInterval, error) {
	query, args, err := activeRentalsQuery(filter)
	if err != nil {
		return nil, err
	}
	items := make([]model.RentalInterval, 0)
	if err := r.conn.SelectContext(ctx, &items, r.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) ListActiveRentalsTx(ctx context.Context, tx *sqlx.Tx, filter *model.ActiveRentalFilter) ([]model.RentalInterval, error) {
	query, args, err := activeRentalsQuery(filter)
	if err != nil {
		return nil, err
	}
	items := make([]model.RentalInterval, 0)
	if err := tx.SelectContext(ctx, &items, tx.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}

// activeRentalsQuery applies the closed-interval overlap test in SQL so only
// plausible conflicts are loaded.
func activeRentalsQuery(filter *model.ActiveRentalFilter) (string, []interface{}, error) {
	return sqlx.In(listActiveRentalsQuery,
		filter.ProductID,
		filter.OutletID,
		constant.OrderTypeRent,
		constant.ActiveRentalStatuses,
		filter.End,
		filter.Start,
		filter.ExcludeOrderID,
	)
}
