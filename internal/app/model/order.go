package model

type VendorOrderStatus string

const (
	StatusInitializedOrder VendorOrderStatus = `INITIALIZED`
	StatusApprovedOrder    VendorOrderStatus = `APPROVED`
	StatusCanceledOrder    VendorOrderStatus = `CANCELED`
)

type SearchQuery struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
	Filter string `json:"filter,omitempty"`
	Sort   string `json:"sort,omitempty"`
}

type OrdersSearchRequest struct {
	Query SearchQuery `json:"query"`
}

type OrdersSearchResponse struct {
	Orders   []VendorOrder  `json:"orders"`
	Metadata PagingMetadata `json:"metadata"`
}

type PagingMetadata struct {
	HasNext    bool   `json:"hasNext"`
	NextCursor string `json:"nextCursor,omitempty"`
	PrevCursor string `json:"prevCursor,omitempty"`
}

type VendorOrder struct {
	ID                string              `json:"id"`
	Number            string              `json:"number,omitempty"`
	DateCreated       string              `json:"dateCreated,omitempty"`
	Status            string              `json:"status,omitempty"`
	PaymentStatus     string              `json:"paymentStatus,omitempty"`
	FulfillmentStatus string              `json:"fulfillmentStatus,omitempty"`
	Totals            *VendorTotals       `json:"totals,omitempty"`
	BuyerInfo         *VendorBuyerInfo    `json:"buyerInfo,omitempty"`
	ShippingInfo      *VendorShippingInfo `json:"shippingInfo,omitempty"`
	BillingInfo       *VendorBillingInfo  `json:"billingInfo,omitempty"`
	LineItems         []VendorLineItem    `json:"lineItems,omitempty"`
	Fulfillments      []VendorFulfillment `json:"fulfillments,omitempty"`
	ChannelType       string              `json:"channelType,omitempty"`
	BuyerNote         string              `json:"buyerNote,omitempty"`
}

type VendorTotals struct {
	Subtotal string `json:"subtotal,omitempty"`
	Shipping string `json:"shipping,omitempty"`
	Tax      string `json:"tax,omitempty"`
	Total    string `json:"total,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type VendorBuyerInfo struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

type VendorShippingInfo struct {
	DeliveryOption   string                 `json:"deliveryOption,omitempty"`
	ShipmentDetails  *VendorShipmentDetails `json:"shipmentDetails,omitempty"`
	EstimatedArrival string                 `json:"estimatedArrival,omitempty"`
}

type VendorShipmentDetails struct {
	Address   *VendorAddress `json:"address,omitempty"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Company   string         `json:"company,omitempty"`
}

type VendorBillingInfo struct {
	Address   *VendorAddress `json:"address,omitempty"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
	Email     string         `json:"email,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	Company   string         `json:"company,omitempty"`
}

type VendorAddress struct {
	AddressLine string `json:"addressLine,omitempty"`
	Apartment   string `json:"apartment,omitempty"`
	City        string `json:"city,omitempty"`
	Subdivision string `json:"subdivision,omitempty"`
	ZipCode     string `json:"zipCode,omitempty"`
	Country     string `json:"country,omitempty"`
}

type VendorLineItem struct {
	ID                string  `json:"id"`
	ProductID         string  `json:"productId,omitempty"`
	Name              string  `json:"name,omitempty"`
	Quantity          int     `json:"quantity"`
	FulfilledQuantity int     `json:"fulfilledQuantity"`
	Price             string  `json:"price,omitempty"`
	SKU               string  `json:"sku,omitempty"`
	Options           []VendorItemOption `json:"options,omitempty"`
}

type VendorItemOption struct {
	Option    string `json:"option"`
	Selection string `json:"selection"`
}
