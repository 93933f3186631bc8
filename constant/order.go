package constant

type OrderType string

const (
	OrderTypeRent OrderType = "RENT"
	OrderTypeSale OrderType = "SALE"
)

type OrderStatus string

const (
	OrderStatusReserved  OrderStatus = "RESERVED"
	OrderStatusPickuped  OrderStatus = "PICKUPED"
	OrderStatusReturned  OrderStatus = "RETURNED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsActiveRental reports whether the status still holds inventory for its window.
func (s OrderStatus) IsActiveRental() bool {
	return s == OrderStatusReserved || s == OrderStatusPickuped
}

// ActiveRentalStatuses are the statuses that take part in conflict checks.
var ActiveRentalStatuses = []OrderStatus{OrderStatusReserved, OrderStatusPickuped}

type OutletStatus string

const (
	OutletStatusActive   OutletStatus = "ACTIVE"
	OutletStatusInactive OutletStatus = "INACTIVE"
)
