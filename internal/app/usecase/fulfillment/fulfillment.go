package fulfillment

import "github.com/orderdeck/go-order-dashboard/internal/app/entity"

// Summary is the derived fulfillment state of one order. Fulfilled counts
// above the ordered quantity are passed through unclamped; remaining is
// floored at zero.
type Summary struct {
	TotalItems     int
	FulfilledItems int
	RemainingItems int

	IsFullyFulfilled     bool
	IsPartiallyFulfilled bool
	HasUnfulfilledItems  bool
	HasFulfilledItems    bool
	HasAnyTracking       bool
}

func Summarize(items []entity.LineItem) Summary {
	summary := Summary{}

	for _, item := range items {
		summary.TotalItems += item.Quantity
		summary.FulfilledItems += item.FulfilledQuantity

		if !summary.HasAnyTracking && hasTracking(item) {
			summary.HasAnyTracking = true
		}
	}

	summary.RemainingItems = summary.TotalItems - summary.FulfilledItems
	if summary.RemainingItems < 0 {
		summary.RemainingItems = 0
	}

	summary.IsFullyFulfilled = summary.TotalItems > 0 && summary.FulfilledItems >= summary.TotalItems
	summary.IsPartiallyFulfilled = summary.FulfilledItems > 0 && summary.FulfilledItems < summary.TotalItems
	summary.HasUnfulfilledItems = summary.RemainingItems > 0
	summary.HasFulfilledItems = summary.FulfilledItems > 0

	return summary
}

// DeriveStatus computes the order-level status from line items. CANCELED is
// terminal and overrides the computation.
func DeriveStatus(canceled bool, items []entity.LineItem) entity.FulfillmentStatus {
	if canceled {
		return entity.StatusCanceled
	}

	summary := Summarize(items)

	if summary.IsFullyFulfilled {
		return entity.StatusFulfilled
	}

	if summary.IsPartiallyFulfilled {
		return entity.StatusPartiallyFulfilled
	}

	return entity.StatusNotFulfilled
}

func CanAddTracking(order entity.Order) bool {
	if order.Canceled {
		return false
	}

	return Summarize(order.LineItems).HasUnfulfilledItems
}

func CanEditTracking(order entity.Order) bool {
	if order.Canceled {
		return false
	}

	return Summarize(order.LineItems).HasAnyTracking
}

func hasTracking(item entity.LineItem) bool {
	for _, record := range item.Fulfillments {
		if len(record.TrackingNumber) != 0 {
			return true
		}
	}

	return false
}
