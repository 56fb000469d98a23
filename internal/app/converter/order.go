package converter

import (
	"fmt"

	"github.com/golang-module/carbon/v2"
	"github.com/shopspring/decimal"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
)

const (
	DefaultFirstName = "Unknown"
	DefaultLastName  = "Customer"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// ConvertVendorOrderToOrder maps a raw vendor order into the normalized shape.
// Absent fields resolve to defaults; the conversion never fails.
func ConvertVendorOrderToOrder(vendor model.VendorOrder) entity.Order {
	return entity.Order{
		ID:                entity.OrderID(vendor.ID),
		Number:            vendor.Number,
		DateCreated:       ConvertVendorDate(vendor.DateCreated),
		Canceled:          model.VendorOrderStatus(vendor.Status) == model.StatusCanceledOrder,
		FulfillmentStatus: convertFulfillmentStatus(vendor),
		PaymentStatus:     convertPaymentStatus(vendor.PaymentStatus),
		FormattedTotal:    FormatTotal(vendor.Totals),
		Customer:          convertCustomer(vendor),
		LineItems:         convertLineItems(vendor.LineItems, vendor.Fulfillments),
		ShippingAddress:   convertShippingAddress(vendor.ShippingInfo),
		BillingAddress:    convertBillingAddress(vendor.BillingInfo),
		Extensions:        convertExtensions(vendor),
	}
}

func ConvertVendorFulfillmentToRecord(fulfillment model.VendorFulfillment) entity.FulfillmentRecord {
	record := entity.FulfillmentRecord{
		ID:          fulfillment.ID,
		DateCreated: ConvertVendorDate(fulfillment.DateCreated),
		Items:       make([]entity.FulfilledItem, 0, len(fulfillment.LineItems)),
	}

	if fulfillment.TrackingInfo != nil {
		record.TrackingNumber = fulfillment.TrackingInfo.TrackingNumber
		record.TrackingURL = fulfillment.TrackingInfo.TrackingLink
		record.Carrier = fulfillment.TrackingInfo.ShippingProvider
	}

	for _, item := range fulfillment.LineItems {
		record.Items = append(record.Items, entity.FulfilledItem{
			LineItemID: item.ID,
			Quantity:   item.Quantity,
		})
	}

	return record
}

// ConvertVendorDate normalizes a vendor timestamp to RFC3339. Unparseable
// values resolve to an empty string rather than an error.
func ConvertVendorDate(date string) string {
	if len(date) == 0 {
		return ""
	}

	parsed := carbon.Parse(date)
	if parsed.Error != nil || parsed.IsZero() {
		return ""
	}

	return parsed.ToRfc3339String(carbon.UTC)
}

// FormatTotal renders the order total as a display string. Missing or
// malformed totals resolve to the formatted zero amount.
func FormatTotal(totals *model.VendorTotals) string {
	symbol := currencySymbols["USD"]
	if totals == nil {
		return fmt.Sprintf("%s0.00", symbol)
	}

	if mapped, ok := currencySymbols[totals.Currency]; ok {
		symbol = mapped
	} else if len(totals.Currency) != 0 {
		symbol = totals.Currency + " "
	}

	amount, err := decimal.NewFromString(totals.Total)
	if err != nil {
		amount = decimal.Zero
	}

	return fmt.Sprintf("%s%s", symbol, amount.StringFixed(2))
}

func convertFulfillmentStatus(vendor model.VendorOrder) entity.FulfillmentStatus {
	if model.VendorOrderStatus(vendor.Status) == model.StatusCanceledOrder {
		return entity.StatusCanceled
	}

	switch vendor.FulfillmentStatus {
	case string(entity.StatusFulfilled):
		return entity.StatusFulfilled
	case string(entity.StatusPartiallyFulfilled):
		return entity.StatusPartiallyFulfilled
	default:
		return entity.StatusNotFulfilled
	}
}

func convertPaymentStatus(status string) entity.PaymentStatus {
	switch entity.PaymentStatus(status) {
	case entity.StatusPaid:
		return entity.StatusPaid
	case entity.StatusPartiallyRefunded:
		return entity.StatusPartiallyRefunded
	case entity.StatusFullyRefunded:
		return entity.StatusFullyRefunded
	default:
		return entity.StatusNotPaid
	}
}

func convertCustomer(vendor model.VendorOrder) entity.Customer {
	var recipient model.VendorShipmentDetails
	if vendor.ShippingInfo != nil && vendor.ShippingInfo.ShipmentDetails != nil {
		recipient = *vendor.ShippingInfo.ShipmentDetails
	}

	var billing model.VendorBillingInfo
	if vendor.BillingInfo != nil {
		billing = *vendor.BillingInfo
	}

	var buyer model.VendorBuyerInfo
	if vendor.BuyerInfo != nil {
		buyer = *vendor.BuyerInfo
	}

	return entity.Customer{
		FirstName: firstNonEmpty(recipient.FirstName, billing.FirstName, buyer.FirstName, DefaultFirstName),
		LastName:  firstNonEmpty(recipient.LastName, billing.LastName, buyer.LastName, DefaultLastName),
		Email:     firstNonEmpty(recipient.Email, billing.Email, buyer.Email),
		Phone:     firstNonEmpty(recipient.Phone, billing.Phone, buyer.Phone),
		Company:   firstNonEmpty(recipient.Company, billing.Company),
	}
}

func convertLineItems(items []model.VendorLineItem, fulfillments []model.VendorFulfillment) []entity.LineItem {
	lineItems := make([]entity.LineItem, 0, len(items))

	for _, item := range items {
		lineItem := entity.LineItem{
			ID:                item.ID,
			ProductID:         item.ProductID,
			ProductName:       item.Name,
			Quantity:          item.Quantity,
			FulfilledQuantity: item.FulfilledQuantity,
		}

		for _, fulfillment := range fulfillments {
			if fulfillmentCoversItem(fulfillment, item.ID) {
				lineItem.Fulfillments = append(lineItem.Fulfillments, ConvertVendorFulfillmentToRecord(fulfillment))
			}
		}

		lineItems = append(lineItems, lineItem)
	}

	return lineItems
}

func fulfillmentCoversItem(fulfillment model.VendorFulfillment, lineItemID string) bool {
	for _, item := range fulfillment.LineItems {
		if item.ID == lineItemID {
			return true
		}
	}

	return false
}

func convertShippingAddress(info *model.VendorShippingInfo) entity.Address {
	if info == nil || info.ShipmentDetails == nil {
		return entity.Address{}
	}

	return convertAddress(info.ShipmentDetails.Address)
}

func convertBillingAddress(info *model.VendorBillingInfo) entity.Address {
	if info == nil {
		return entity.Address{}
	}

	return convertAddress(info.Address)
}

func convertAddress(address *model.VendorAddress) entity.Address {
	if address == nil {
		return entity.Address{}
	}

	return entity.Address{
		AddressLine: address.AddressLine,
		Apartment:   address.Apartment,
		City:        address.City,
		Subdivision: address.Subdivision,
		PostalCode:  address.ZipCode,
		Country:     address.Country,
	}
}

func convertExtensions(vendor model.VendorOrder) entity.Extensions {
	extensions := make(entity.Extensions)

	extensions.Set("channelType", vendor.ChannelType)
	extensions.Set("buyerNote", vendor.BuyerNote)
	extensions.Set("status", vendor.Status)

	if vendor.BuyerInfo != nil {
		extensions.Set("buyerInfo.id", vendor.BuyerInfo.ID)
	}

	if vendor.ShippingInfo != nil {
		extensions.Set("shippingInfo.deliveryOption", vendor.ShippingInfo.DeliveryOption)
		extensions.Set("shippingInfo.estimatedArrival", vendor.ShippingInfo.EstimatedArrival)
	}

	if vendor.Totals != nil {
		extensions.Set("totals.subtotal", vendor.Totals.Subtotal)
		extensions.Set("totals.shipping", vendor.Totals.Shipping)
		extensions.Set("totals.tax", vendor.Totals.Tax)
		extensions.Set("totals.currency", vendor.Totals.Currency)
	}

	return extensions
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if len(value) != 0 {
			return value
		}
	}

	return ""
}
