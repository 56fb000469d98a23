package order

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orderdeck/go-order-dashboard/internal/app/converter"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
)

const (
	defaultSearchLimit = 50

	// Orders still in checkout are hidden from the dashboard by default.
	excludeInitializedFilter = `{"status":{"$ne":"INITIALIZED"}}`

	newestFirstSort = `[{"dateCreated":"desc"}]`
)

type VendorGateway interface {
	SearchOrders(ctx context.Context, query model.SearchQuery) (model.OrdersSearchResponse, error)
	GetOrder(ctx context.Context, orderID string) (model.VendorOrder, error)
	CreateFulfillment(ctx context.Context, request model.CreateFulfillmentRequest) (model.CreateFulfillmentResponse, error)
	GetContact(ctx context.Context, contactID string) (model.ContactResponse, error)
}

type SearchOptions struct {
	Limit              int
	Cursor             string
	Filter             string
	IncludeInitialized bool
}

type SearchResult struct {
	Success    bool
	Error      string
	Orders     entity.Orders
	Pagination entity.Pagination
}

type OrderResult struct {
	Success bool
	Error   string
	Order   entity.Order
}

type RawOrderResult struct {
	Success bool
	Error   string
	Order   model.VendorOrder
}

type ItemSelection struct {
	LineItemID string `validate:"required"`
	Quantity   int    `validate:"gt=0"`
}

type FulfillRequest struct {
	OrderID        string          `validate:"required"`
	Items          []ItemSelection `validate:"dive"`
	TrackingNumber string
	TrackingURL    string
	Carrier        string
	SendEmail      bool
}

type FulfillResult struct {
	Success     bool
	Error       string
	Fulfillment entity.FulfillmentRecord
	EmailSent   bool
}

// Service wraps the vendor order API. Every operation reports failures
// through the result envelope and never returns an error to its caller.
type Service struct {
	gateway  VendorGateway
	validate *validator.Validate
}

func New(gateway VendorGateway) *Service {
	return &Service{
		gateway:  gateway,
		validate: validator.New(),
	}
}

func (s *Service) SearchOrders(ctx context.Context, options SearchOptions) SearchResult {
	query := model.SearchQuery{
		Limit:  options.Limit,
		Cursor: options.Cursor,
		Filter: options.Filter,
		Sort:   newestFirstSort,
	}

	if query.Limit <= 0 {
		query.Limit = defaultSearchLimit
	}

	if len(query.Filter) == 0 && !options.IncludeInitialized {
		query.Filter = excludeInitializedFilter
	}

	response, err := s.gateway.SearchOrders(ctx, query)
	if err != nil {
		zap.L().Error("error while searching orders", zap.Error(err))

		return SearchResult{
			Error:  err.Error(),
			Orders: entity.Orders{},
		}
	}

	orders := make(entity.Orders, 0, len(response.Orders))
	for _, vendorOrder := range response.Orders {
		orders = append(orders, converter.ConvertVendorOrderToOrder(vendorOrder))
	}

	return SearchResult{
		Success: true,
		Orders:  orders,
		Pagination: entity.Pagination{
			HasNext:    response.Metadata.HasNext,
			NextCursor: response.Metadata.NextCursor,
			PrevCursor: response.Metadata.PrevCursor,
		},
	}
}

func (s *Service) GetOrder(ctx context.Context, orderID entity.OrderID) OrderResult {
	vendorOrder, err := s.gateway.GetOrder(ctx, orderID.String())
	if err != nil {
		zap.L().Error("error while getting order", zap.Error(err), zap.String("order_id", orderID.String()))

		return OrderResult{
			Error: err.Error(),
		}
	}

	order := converter.ConvertVendorOrderToOrder(vendorOrder)
	s.enrichCustomer(ctx, vendorOrder, &order)

	return OrderResult{
		Success: true,
		Order:   order,
	}
}

// enrichCustomer fills contact fields the order payload lacks from the CRM
// contact record. The lookup is best-effort and failures leave the order
// untouched.
func (s *Service) enrichCustomer(ctx context.Context, vendorOrder model.VendorOrder, order *entity.Order) {
	if vendorOrder.BuyerInfo == nil || len(vendorOrder.BuyerInfo.ID) == 0 {
		return
	}

	if len(order.Customer.Email) != 0 && len(order.Customer.Phone) != 0 {
		return
	}

	contact, err := s.gateway.GetContact(ctx, vendorOrder.BuyerInfo.ID)
	if err != nil {
		zap.L().Error("error while getting crm contact", zap.Error(err), zap.String("contact_id", vendorOrder.BuyerInfo.ID))
		return
	}

	if len(order.Customer.Email) == 0 && len(contact.Emails) != 0 {
		order.Customer.Email = contact.Emails[0]
	}

	if len(order.Customer.Phone) == 0 && len(contact.Phones) != 0 {
		order.Customer.Phone = contact.Phones[0]
	}

	if len(order.Customer.Company) == 0 {
		order.Customer.Company = contact.Company
	}
}

func (s *Service) GetRawOrder(ctx context.Context, orderID entity.OrderID) RawOrderResult {
	vendorOrder, err := s.gateway.GetOrder(ctx, orderID.String())
	if err != nil {
		zap.L().Error("error while getting raw order", zap.Error(err), zap.String("order_id", orderID.String()))

		return RawOrderResult{
			Error: err.Error(),
		}
	}

	return RawOrderResult{
		Success: true,
		Order:   vendorOrder,
	}
}

func (s *Service) FulfillOrder(ctx context.Context, request FulfillRequest) FulfillResult {
	err := s.validate.Struct(request)
	if err != nil {
		zap.L().Error("invalid fulfill order request", zap.Error(err))

		return FulfillResult{
			Error: fmt.Sprintf("invalid fulfillment request: %s", err.Error()),
		}
	}

	vendorRequest := model.CreateFulfillmentRequest{
		OrderID:        request.OrderID,
		IdempotencyKey: uuid.NewString(),
		SendEmail:      request.SendEmail,
	}

	for _, item := range request.Items {
		vendorRequest.LineItems = append(vendorRequest.LineItems, model.VendorFulfillmentLineItem{
			ID:       item.LineItemID,
			Quantity: item.Quantity,
		})
	}

	if len(request.TrackingNumber) != 0 {
		vendorRequest.TrackingInfo = &model.VendorTrackingInfo{
			TrackingNumber:   request.TrackingNumber,
			ShippingProvider: request.Carrier,
			TrackingLink:     request.TrackingURL,
		}
	}

	response, err := s.gateway.CreateFulfillment(ctx, vendorRequest)
	if err != nil {
		zap.L().Error("error while fulfilling order", zap.Error(err), zap.String("order_id", request.OrderID))

		return FulfillResult{
			Error: err.Error(),
		}
	}

	return FulfillResult{
		Success:     true,
		Fulfillment: converter.ConvertVendorFulfillmentToRecord(response.Fulfillment),
		EmailSent:   response.EmailSent,
	}
}
