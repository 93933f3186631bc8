package model

type ProductDetail struct {
	ID          uint64 `db:"id" json:"id"`
	MerchantID  uint64 `db:"merchant_id" json:"merchant_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	RentPrice   int64  `db:"rent_price" json:"rent_price"`
	SalePrice   int64  `db:"sale_price" json:"sale_price"`
}

type OutletStock struct {
	OutletID   uint64 `db:"outlet_id" json:"outlet_id"`
	OutletName string `db:"outlet_name" json:"outlet_name"`
	Stock      int64  `db:"stock" json:"stock"`
	Renting    int64  `db:"renting" json:"renting"`
	Available  int64  `db:"-" json:"available"`
}

type ProductDetailResponse struct {
	ProductDetail
	Outlets []OutletStock `json:"outlets"`
}
