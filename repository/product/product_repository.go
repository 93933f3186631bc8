package product

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/rental-shop/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByID(ctx context.Context, merchantID, id uint64) (*model.ProductDetail, error)
	ListOutletStocks(ctx context.Context, merchantID, productID uint64) ([]model.OutletStock, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	getProductDetail = `SELECT p.id, p.merchant_id, p.name, p.description, p.rent_price, p.sale_price
FROM product p
WHERE p.id = ? AND p.merchant_id = ? AND p.deleted_at IS NULL`

	listOutletStocks = `SELECT os.outlet_id, o.name as outlet_name, os.stock, os.renting
FROM outlet_stock os
JOIN outlet o ON o.id = os.outlet_id
WHERE os.product_id = ? AND o.merchant_id = ?
ORDER BY os.outlet_id`
)

func (s *SQL) GetByID(ctx context.Context, merchantID, id uint64) (*model.ProductDetail, error) {
	var detail model.ProductDetail
	if err := s.conn.QueryRowxContext(ctx, getProductDetail, id, merchantID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (s *SQL) ListOutletStocks(ctx context.Context, merchantID, productID uint64) ([]model.OutletStock, error) {
	rows, err := s.conn.QueryxContext(ctx, listOutletStocks, productID, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OutletStock, 0)
	for rows.Next() {
		var it model.OutletStock
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
