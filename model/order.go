package model

import (
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
)

type RentalItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateRentalOrderRequest struct {
	OutletID   uint64              `json:"outlet_id"`
	CustomerID uint64              `json:"customer_id" validate:"required"`
	PickupAt   time.Time           `json:"pickup_at" validate:"required"`
	ReturnAt   time.Time           `json:"return_at" validate:"required,gtefield=PickupAt"`
	Note       string              `json:"note" validate:"max=255"`
	Items      []RentalItemRequest `json:"items" validate:"required,min=1,dive"`
}

type RentalOrderResponse struct {
	OrderID     uint64               `json:"order_id"`
	OrderNumber string               `json:"order_number"`
	Status      constant.OrderStatus `json:"status"`
	PickupAt    time.Time            `json:"pickup_at"`
	ReturnAt    time.Time            `json:"return_at"`
}

type InsertRentalOrderTxItem struct {
	OrderNumber string
	MerchantID  uint64
	OutletID    uint64
	CustomerID  uint64
	CreatedBy   uint64
	OrderType   constant.OrderType
	Status      constant.OrderStatus
	PickupAt    time.Time
	ReturnAt    time.Time
	Note        string
}

type OrderDetail struct {
	ID          uint64               `db:"id"`
	OrderNumber string               `db:"order_number"`
	MerchantID  uint64               `db:"merchant_id"`
	OutletID    uint64               `db:"outlet_id"`
	OrderType   constant.OrderType   `db:"order_type"`
	Status      constant.OrderStatus `db:"status"`
	PickupAt    time.Time            `db:"pickup_at"`
	ReturnAt    time.Time            `db:"return_at"`
}

type OrderItem struct {
	ProductID uint64 `db:"product_id"`
	Quantity  int64  `db:"quantity"`
}

// ActiveRentalFilter selects the active rentals of a product at an outlet overlapping [Start, End].
type ActiveRentalFilter struct {
	ProductID      uint64
	OutletID       uint64
	Start          time.Time
	End            time.Time
	ExcludeOrderID uint64
}

type OrderStatusResponse struct {
	OrderID uint64               `json:"order_id"`
	Status  constant.OrderStatus `json:"status"`
}
