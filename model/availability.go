package model

import (
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
)

// StockRecord is the stock row of a product at one outlet.
type StockRecord struct {
	ProductID uint64 `db:"product_id" json:"product_id"`
	OutletID  uint64 `db:"outlet_id" json:"outlet_id"`
	Stock     int64  `db:"stock" json:"stock"`
	Renting   int64  `db:"renting" json:"renting"`
}

// Available is stock minus renting, floored at zero.
func (s StockRecord) Available() int64 {
	if s.Stock-s.Renting < 0 {
		return 0
	}
	return s.Stock - s.Renting
}

// RentalInterval is the claim an existing order holds on a product at an outlet.
type RentalInterval struct {
	OrderID     uint64               `db:"order_id"`
	OrderNumber string               `db:"order_number"`
	ProductID   uint64               `db:"product_id"`
	OutletID    uint64               `db:"outlet_id"`
	Quantity    int64                `db:"quantity"`
	PickupAt    time.Time            `db:"pickup_at"`
	ReturnAt    time.Time            `db:"return_at"`
	OrderType   constant.OrderType   `db:"order_type"`
	Status      constant.OrderStatus `db:"status"`
}

// IsActiveRental reports whether the interval can conflict with a new booking.
func (r RentalInterval) IsActiveRental() bool {
	return r.OrderType == constant.OrderTypeRent && r.Status.IsActiveRental()
}

// AvailabilityRequest is the engine input. Start and End are only meaningful when HasWindow is set.
type AvailabilityRequest struct {
	ProductID uint64
	OutletID  uint64
	Quantity  int64
	HasWindow bool
	Start     time.Time
	End       time.Time
	Location  *time.Location
	Precision constant.TimePrecision
}

// ConflictDetail describes one overlapping order.
type ConflictDetail struct {
	OrderID         uint64
	OrderNumber     string
	Quantity        int64
	Status          constant.OrderStatus
	PickupAt        time.Time
	ReturnAt        time.Time
	Kind            constant.OverlapKind
	OverlapStart    time.Time
	OverlapEnd      time.Time
	OverlapDuration time.Duration
}

// AvailabilityVerdict is the engine output.
type AvailabilityVerdict struct {
	TotalStock           int64
	Renting              int64
	TotalAvailableStock  int64
	StockAvailable       bool
	ConflictingQuantity  int64
	EffectivelyAvailable int64
	CanFulfillRequest    bool
	Conflicts            []ConflictDetail
}

// AvailabilityParams carries the raw query string values of an availability request.
type AvailabilityParams struct {
	OutletID  string
	Quantity  string
	Date      string
	Start     string
	End       string
	Timezone  string
	Precision string
}

type ConflictResponse struct {
	OrderID           uint64               `json:"order_id"`
	OrderNumber       string               `json:"order_number"`
	Quantity          int64                `json:"quantity"`
	Status            constant.OrderStatus `json:"status"`
	PickupAt          string               `json:"pickup_at"`
	ReturnAt          string               `json:"return_at"`
	OverlapType       constant.OverlapKind `json:"overlap_type"`
	OverlapStart      string               `json:"overlap_start"`
	OverlapEnd        string               `json:"overlap_end"`
	OverlapDurationMs int64                `json:"overlap_duration_ms"`
}

type AvailabilityResponse struct {
	ProductID            uint64             `json:"product_id"`
	ProductName          string             `json:"product_name"`
	OutletID             uint64             `json:"outlet_id"`
	RequestedQuantity    int64              `json:"requested_quantity"`
	RentalStart          string             `json:"rental_start,omitempty"`
	RentalEnd            string             `json:"rental_end,omitempty"`
	Timezone             string             `json:"timezone"`
	TotalStock           int64              `json:"total_stock"`
	Renting              int64              `json:"renting"`
	TotalAvailableStock  int64              `json:"total_available_stock"`
	StockAvailable       bool               `json:"stock_available"`
	ConflictingQuantity  int64              `json:"conflicting_quantity"`
	EffectivelyAvailable int64              `json:"effectively_available"`
	IsAvailable          bool               `json:"is_available"`
	CanFulfillRequest    bool               `json:"can_fulfill_request"`
	Conflicts            []ConflictResponse `json:"conflicts"`
	Message              string             `json:"message"`
}
