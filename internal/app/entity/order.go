package entity

type FulfillmentStatus string

const (
	StatusNotFulfilled       FulfillmentStatus = `NOT_FULFILLED`
	StatusPartiallyFulfilled FulfillmentStatus = `PARTIALLY_FULFILLED`
	StatusFulfilled          FulfillmentStatus = `FULFILLED`
	StatusCanceled           FulfillmentStatus = `CANCELED`
)

type PaymentStatus string

const (
	StatusNotPaid           PaymentStatus = `NOT_PAID`
	StatusPaid              PaymentStatus = `PAID`
	StatusPartiallyRefunded PaymentStatus = `PARTIALLY_REFUNDED`
	StatusFullyRefunded     PaymentStatus = `FULLY_REFUNDED`
)

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	return len(id) != 0
}

type Orders []Order

type Order struct {
	ID                OrderID
	Number            string
	DateCreated       string
	Canceled          bool
	FulfillmentStatus FulfillmentStatus
	PaymentStatus     PaymentStatus
	FormattedTotal    string
	Customer          Customer
	LineItems         []LineItem
	ShippingAddress   Address
	BillingAddress    Address
	Extensions        Extensions
}

type LineItem struct {
	ID                string
	ProductID         string
	ProductName       string
	Quantity          int
	FulfilledQuantity int
	Fulfillments      []FulfillmentRecord
}

type FulfillmentRecord struct {
	ID             string
	DateCreated    string
	TrackingNumber string
	TrackingURL    string
	Carrier        string
	Items          []FulfilledItem
}

type FulfilledItem struct {
	LineItemID string
	Quantity   int
}

type Pagination struct {
	HasNext    bool
	NextCursor string
	PrevCursor string
}
