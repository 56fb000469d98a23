package model

type VendorFulfillment struct {
	ID           string                      `json:"id"`
	DateCreated  string                      `json:"dateCreated,omitempty"`
	LineItems    []VendorFulfillmentLineItem `json:"lineItems,omitempty"`
	TrackingInfo *VendorTrackingInfo         `json:"trackingInfo,omitempty"`
}

type VendorFulfillmentLineItem struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type VendorTrackingInfo struct {
	TrackingNumber   string `json:"trackingNumber,omitempty"`
	ShippingProvider string `json:"shippingProvider,omitempty"`
	TrackingLink     string `json:"trackingLink,omitempty"`
}

type CreateFulfillmentRequest struct {
	OrderID        string                      `json:"orderId"`
	IdempotencyKey string                      `json:"idempotencyKey,omitempty"`
	LineItems      []VendorFulfillmentLineItem `json:"lineItems,omitempty"`
	TrackingInfo   *VendorTrackingInfo         `json:"trackingInfo,omitempty"`
	SendEmail      bool                        `json:"sendConfirmationEmail"`
}

type CreateFulfillmentResponse struct {
	Fulfillment VendorFulfillment `json:"fulfillment"`
	EmailSent   bool              `json:"emailSent"`
}
