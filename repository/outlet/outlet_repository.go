package outlet

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/model"
)

type OutletRepository interface {
	GetOutletByID(ctx context.Context, outletID uint64) (*model.Outlet, error)
	GetStock(ctx context.Context, productID, outletID uint64) (*model.StockRecord, error)
	GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64) (*model.StockRecord, error)
	IncreaseRentingTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64, quantity int64) error
	DecreaseRentingTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64, quantity int64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewOutletRepository(conn *sqlx.DB) OutletRepository {
	return &SQL{conn: conn}
}

const (
	getOutletQuery = `SELECT id, merchant_id, name, status FROM outlet WHERE id = ?`
	getStockQuery  = `SELECT product_id, outlet_id, stock, renting FROM outlet_stock WHERE product_id = ? AND outlet_id = ?`
)

func (r *SQL) GetOutletByID(ctx context.Context, outletID uint64) (*model.Outlet, error) {
	var outlet model.Outlet
	if err := r.conn.GetContext(ctx, &outlet, getOutletQuery, outletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &outlet, nil
}

func (r *SQL) GetStock(ctx context.Context, productID, outletID uint64) (*model.StockRecord, error) {
	var stock model.StockRecord
	if err := r.conn.GetContext(ctx, &stock, getStockQuery, productID, outletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

// GetStockForUpdateTx locks the (product, outlet) stock row until tx ends.
func (r *SQL) GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64) (*model.StockRecord, error) {
	var stock model.StockRecord
	if err := tx.GetContext(ctx, &stock, getStockQuery+" FOR UPDATE", productID, outletID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &stock, nil
}

func (r *SQL) IncreaseRentingTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64, quantity int64) error {
	res, err := tx.ExecContext(ctx, "UPDATE outlet_stock SET renting = renting + ?, updated_at = NOW() WHERE product_id = ? AND outlet_id = ?", quantity, productID, outletID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// DecreaseRentingTx never takes renting below zero.
func (r *SQL) DecreaseRentingTx(ctx context.Context, tx *sqlx.Tx, productID, outletID uint64, quantity int64) error {
	res, err := tx.ExecContext(ctx, "UPDATE outlet_stock SET renting = GREATEST(CAST(renting AS SIGNED) - ?, 0), updated_at = NOW() WHERE product_id = ? AND outlet_id = ?", quantity, productID, outletID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
