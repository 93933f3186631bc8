package model

import "github.com/muhammadheryan/rental-shop/constant"

type Outlet struct {
	ID         uint64                `db:"id"`
	MerchantID uint64                `db:"merchant_id"`
	Name       string                `db:"name"`
	Status     constant.OutletStatus `db:"status"`
}

// TenantScope is the merchant (and, for outlet staff, outlet) a request acts for.
type TenantScope struct {
	UserID     uint64 `json:"user_id"`
	MerchantID uint64 `json:"merchant_id"`
	OutletID   uint64 `json:"outlet_id,omitempty"`
}
