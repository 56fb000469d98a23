package model

type OrderListResponse struct {
	Success    bool             `json:"success"`
	Error      string           `json:"error,omitempty"`
	Orders     []OrderOutput    `json:"orders"`
	Pagination PaginationOutput `json:"pagination"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Order   *OrderOutput `json:"order,omitempty"`
}

type FulfillResponse struct {
	Success     bool               `json:"success"`
	Error       string             `json:"error,omitempty"`
	Fulfillment *FulfillmentOutput `json:"fulfillment,omitempty"`
	EmailSent   bool               `json:"emailSent"`
}

type PaginationOutput struct {
	HasNext    bool   `json:"hasNext"`
	NextCursor string `json:"nextCursor,omitempty"`
	PrevCursor string `json:"prevCursor,omitempty"`
}

type OrderOutput struct {
	ID                    string              `json:"id"`
	Number                string              `json:"number"`
	DateCreated           string              `json:"dateCreated"`
	FulfillmentStatus     string              `json:"fulfillmentStatus"`
	PaymentStatus         string              `json:"paymentStatus"`
	Total                 string              `json:"total"`
	Customer              CustomerOutput      `json:"customer"`
	LineItems             []LineItemOutput    `json:"lineItems"`
	ShippingAddress       AddressOutput       `json:"shippingAddress"`
	BillingAddress        AddressOutput       `json:"billingAddress"`
	BillingSameAsShipping bool                `json:"billingSameAsShipping"`
	Summary               FulfillmentSummary  `json:"summary"`
	CanAddTracking        bool                `json:"canAddTracking"`
	CanEditTracking       bool                `json:"canEditTracking"`
	Extensions            map[string]string   `json:"extensions,omitempty"`
}

type CustomerOutput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Company   string `json:"company,omitempty"`
}

type AddressOutput struct {
	AddressLine string `json:"addressLine,omitempty"`
	Apartment   string `json:"apartment,omitempty"`
	City        string `json:"city,omitempty"`
	Subdivision string `json:"subdivision,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
}

type LineItemOutput struct {
	ID                string              `json:"id"`
	ProductName       string              `json:"productName"`
	Quantity          int                 `json:"quantity"`
	FulfilledQuantity int                 `json:"fulfilledQuantity"`
	Fulfillments      []FulfillmentOutput `json:"fulfillments,omitempty"`
}

type FulfillmentOutput struct {
	ID             string `json:"id"`
	DateCreated    string `json:"dateCreated,omitempty"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	TrackingURL    string `json:"trackingUrl,omitempty"`
	Carrier        string `json:"carrier,omitempty"`
}

type FulfillmentSummary struct {
	TotalItems     int  `json:"totalItems"`
	FulfilledItems int  `json:"fulfilledItems"`
	RemainingItems int  `json:"remainingItems"`
	HasAnyTracking bool `json:"hasAnyTracking"`
}

type FulfillOrderRequest struct {
	Items          []FulfillItemInput `json:"items,omitempty"`
	TrackingNumber string             `json:"trackingNumber,omitempty"`
	TrackingURL    string             `json:"trackingUrl,omitempty"`
	Carrier        string             `json:"carrier,omitempty"`
	SendEmail      bool               `json:"sendEmail"`
}

type FulfillItemInput struct {
	LineItemID string `json:"lineItemId"`
	Quantity   int    `json:"quantity"`
}

type BillingResponse struct {
	Premium         bool   `json:"premium"`
	VendorProductID string `json:"vendorProductId,omitempty"`
	BillingCycle    string `json:"cycle,omitempty"`
}
