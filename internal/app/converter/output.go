package converter

import (
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/address"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/fulfillment"
)

func ConvertOrdersToOutput(orders entity.Orders) []model.OrderOutput {
	output := make([]model.OrderOutput, 0, len(orders))

	for _, order := range orders {
		output = append(output, ConvertOrderToOutput(order))
	}

	return output
}

// ConvertOrderToOutput renders the UI-facing order shape, attaching the
// derived fulfillment summary and display affordances.
func ConvertOrderToOutput(order entity.Order) model.OrderOutput {
	summary := fulfillment.Summarize(order.LineItems)

	return model.OrderOutput{
		ID:                order.ID.String(),
		Number:            order.Number,
		DateCreated:       order.DateCreated,
		FulfillmentStatus: string(order.FulfillmentStatus),
		PaymentStatus:     string(order.PaymentStatus),
		Total:             order.FormattedTotal,
		Customer: model.CustomerOutput{
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Email:     order.Customer.Email,
			Phone:     order.Customer.Phone,
			Company:   order.Customer.Company,
		},
		LineItems:             convertLineItemsToOutput(order.LineItems),
		ShippingAddress:       convertAddressToOutput(order.ShippingAddress),
		BillingAddress:        convertAddressToOutput(order.BillingAddress),
		BillingSameAsShipping: address.BillingSameAsShipping(order.ShippingAddress, order.BillingAddress),
		Summary: model.FulfillmentSummary{
			TotalItems:     summary.TotalItems,
			FulfilledItems: summary.FulfilledItems,
			RemainingItems: summary.RemainingItems,
			HasAnyTracking: summary.HasAnyTracking,
		},
		CanAddTracking:  fulfillment.CanAddTracking(order),
		CanEditTracking: fulfillment.CanEditTracking(order),
		Extensions:      order.Extensions,
	}
}

func ConvertFulfillmentToOutput(record entity.FulfillmentRecord) model.FulfillmentOutput {
	return model.FulfillmentOutput{
		ID:             record.ID,
		DateCreated:    record.DateCreated,
		TrackingNumber: record.TrackingNumber,
		TrackingURL:    record.TrackingURL,
		Carrier:        record.Carrier,
	}
}

func ConvertPaginationToOutput(pagination entity.Pagination) model.PaginationOutput {
	return model.PaginationOutput{
		HasNext:    pagination.HasNext,
		NextCursor: pagination.NextCursor,
		PrevCursor: pagination.PrevCursor,
	}
}

func convertLineItemsToOutput(items []entity.LineItem) []model.LineItemOutput {
	output := make([]model.LineItemOutput, 0, len(items))

	for _, item := range items {
		lineItem := model.LineItemOutput{
			ID:                item.ID,
			ProductName:       item.ProductName,
			Quantity:          item.Quantity,
			FulfilledQuantity: item.FulfilledQuantity,
		}

		for _, record := range item.Fulfillments {
			lineItem.Fulfillments = append(lineItem.Fulfillments, ConvertFulfillmentToOutput(record))
		}

		output = append(output, lineItem)
	}

	return output
}

func convertAddressToOutput(addr entity.Address) model.AddressOutput {
	return model.AddressOutput{
		AddressLine: addr.AddressLine,
		Apartment:   addr.Apartment,
		City:        addr.City,
		Subdivision: addr.Subdivision,
		PostalCode:  addr.PostalCode,
		Country:     addr.Country,
	}
}
