package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrRentalConflict
	ErrInvalidOrderStatus
	ErrInvalidDateRange
	ErrInvalidOutletScope
	ErrStockNotFound
	ErrInvalidSubscriptionStatus
	ErrTooManyRequests
	ErrLockNotObtained
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                   "success",
	ErrInternal:                  "error internal",
	ErrNotFound:                  "data not found",
	ErrInvalidRequest:            "invalid request",
	ErrUnauthorize:               "unauthorize request",
	ErrInsufficientStock:         "insufficient stock",
	ErrRentalConflict:            "product already booked for the requested period",
	ErrInvalidOrderStatus:        "invalid order status",
	ErrInvalidDateRange:          "invalid date range",
	ErrInvalidOutletScope:        "outlet not accessible",
	ErrStockNotFound:             "stock not found for outlet",
	ErrInvalidSubscriptionStatus: "invalid subscription status",
	ErrTooManyRequests:           "too many requests",
	ErrLockNotObtained:           "resource busy, please retry",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                   http.StatusOK,
	ErrInternal:                  http.StatusInternalServerError,
	ErrNotFound:                  http.StatusNotFound,
	ErrInvalidRequest:            http.StatusBadRequest,
	ErrUnauthorize:               http.StatusUnauthorized,
	ErrInsufficientStock:         http.StatusConflict,
	ErrRentalConflict:            http.StatusConflict,
	ErrInvalidOrderStatus:        http.StatusBadRequest,
	ErrInvalidDateRange:          http.StatusBadRequest,
	ErrInvalidOutletScope:        http.StatusForbidden,
	ErrStockNotFound:             http.StatusNotFound,
	ErrInvalidSubscriptionStatus: http.StatusBadRequest,
	ErrTooManyRequests:           http.StatusTooManyRequests,
	ErrLockNotObtained:           http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                   "0000",
	ErrInternal:                  "0001",
	ErrNotFound:                  "0002",
	ErrInvalidRequest:            "0003",
	ErrUnauthorize:               "0004",
	ErrInsufficientStock:         "0005",
	ErrRentalConflict:            "0006",
	ErrInvalidOrderStatus:        "0007",
	ErrInvalidDateRange:          "0008",
	ErrInvalidOutletScope:        "0009",
	ErrStockNotFound:             "0010",
	ErrInvalidSubscriptionStatus: "0011",
	ErrTooManyRequests:           "0012",
	ErrLockNotObtained:           "0013",
}
