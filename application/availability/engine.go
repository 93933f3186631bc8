package availability

import (
	"time"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
)

// Check computes the availability verdict for req against one outlet's stock row and
// the rental orders of the same product at the same outlet. It does no I/O and never
// fails; unavailability is reported through CanFulfillRequest.
//
// Without a rental window only the raw stock is considered and candidates are ignored.
func Check(req model.AvailabilityRequest, stock model.StockRecord, candidates []model.RentalInterval) model.AvailabilityVerdict {
	totalAvailable := stock.Available()

	verdict := model.AvailabilityVerdict{
		TotalStock:           stock.Stock,
		Renting:              stock.Renting,
		TotalAvailableStock:  totalAvailable,
		StockAvailable:       totalAvailable >= req.Quantity,
		EffectivelyAvailable: totalAvailable,
		Conflicts:            []model.ConflictDetail{},
	}

	if !req.HasWindow {
		verdict.CanFulfillRequest = verdict.StockAvailable
		return verdict
	}

	for _, order := range candidates {
		if !order.IsActiveRental() {
			continue
		}
		kind, ok := ClassifyOverlap(order.PickupAt, order.ReturnAt, req.Start, req.End)
		if !ok {
			continue
		}

		overlapStart := latest(order.PickupAt, req.Start)
		overlapEnd := earliest(order.ReturnAt, req.End)

		verdict.ConflictingQuantity += order.Quantity
		verdict.Conflicts = append(verdict.Conflicts, model.ConflictDetail{
			OrderID:         order.OrderID,
			OrderNumber:     order.OrderNumber,
			Quantity:        order.Quantity,
			Status:          order.Status,
			PickupAt:        order.PickupAt,
			ReturnAt:        order.ReturnAt,
			Kind:            kind,
			OverlapStart:    overlapStart,
			OverlapEnd:      overlapEnd,
			OverlapDuration: overlapEnd.Sub(overlapStart),
		})
	}

	verdict.EffectivelyAvailable = totalAvailable - verdict.ConflictingQuantity
	if verdict.EffectivelyAvailable < 0 {
		verdict.EffectivelyAvailable = 0
	}
	verdict.CanFulfillRequest = verdict.EffectivelyAvailable >= req.Quantity

	return verdict
}

// Overlaps is the closed-interval intersection test: windows touching at a single
// instant overlap.
func Overlaps(pickupAt, returnAt, start, end time.Time) bool {
	return !pickupAt.After(end) && !returnAt.Before(start)
}

type overlapRule struct {
	kind    constant.OverlapKind
	matches func(pickupAt, returnAt, start, end time.Time) bool
}

// overlapRules are evaluated in order; containment in either direction wins over a
// partial edge overlap.
var overlapRules = []overlapRule{
	{constant.CompleteOverlap, orderContainsRequest},
	{constant.CompleteOverlap, requestContainsOrder},
	{constant.PeriodOverlap, overlapsLeftEdge},
	{constant.PeriodOverlap, overlapsRightEdge},
}

// ClassifyOverlap returns the overlap kind of the order window [pickupAt, returnAt]
// against the requested window [start, end], and false when they do not overlap.
func ClassifyOverlap(pickupAt, returnAt, start, end time.Time) (constant.OverlapKind, bool) {
	if !Overlaps(pickupAt, returnAt, start, end) {
		return 0, false
	}
	for _, rule := range overlapRules {
		if rule.matches(pickupAt, returnAt, start, end) {
			return rule.kind, true
		}
	}
	// unreachable for overlapping windows with pickupAt <= returnAt
	return constant.PeriodOverlap, true
}

func orderContainsRequest(pickupAt, returnAt, start, end time.Time) bool {
	return !pickupAt.After(start) && !returnAt.Before(end)
}

func requestContainsOrder(pickupAt, returnAt, start, end time.Time) bool {
	return !start.After(pickupAt) && !end.Before(returnAt)
}

// order starts before the request and ends inside it
func overlapsLeftEdge(pickupAt, returnAt, start, end time.Time) bool {
	return pickupAt.Before(start) && !returnAt.Before(start) && returnAt.Before(end)
}

// order starts inside the request and ends after it
func overlapsRightEdge(pickupAt, returnAt, start, end time.Time) bool {
	return pickupAt.After(start) && !pickupAt.After(end) && returnAt.After(end)
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earliest(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
