package order

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order/mock"
)

func TestSearchOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockVendorGateway(ctrl)
	service := New(gateway)

	t.Run("vendor failure returns failure envelope", func(t *testing.T) {
		gateway.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).Return(model.OrdersSearchResponse{}, errors.New("vendor down"))

		result := service.SearchOrders(context.Background(), SearchOptions{})

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
		assert.Empty(t, result.Orders)
		assert.Equal(t, entity.Pagination{}, result.Pagination)
	})

	t.Run("default filter excludes initialized orders", func(t *testing.T) {
		var capturedQuery model.SearchQuery
		gateway.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, query model.SearchQuery) (model.OrdersSearchResponse, error) {
				capturedQuery = query
				return model.OrdersSearchResponse{}, nil
			})

		result := service.SearchOrders(context.Background(), SearchOptions{})

		require.True(t, result.Success)
		assert.Equal(t, excludeInitializedFilter, capturedQuery.Filter)
		assert.Equal(t, defaultSearchLimit, capturedQuery.Limit)
	})

	t.Run("explicit inclusion drops the default filter", func(t *testing.T) {
		var capturedQuery model.SearchQuery
		gateway.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, query model.SearchQuery) (model.OrdersSearchResponse, error) {
				capturedQuery = query
				return model.OrdersSearchResponse{}, nil
			})

		service.SearchOrders(context.Background(), SearchOptions{IncludeInitialized: true})

		assert.Empty(t, capturedQuery.Filter)
	})

	t.Run("orders are normalized and pagination mapped", func(t *testing.T) {
		gateway.EXPECT().SearchOrders(gomock.Any(), gomock.Any()).Return(model.OrdersSearchResponse{
			Orders: []model.VendorOrder{
				{ID: "order-1", Number: "10001"},
			},
			Metadata: model.PagingMetadata{
				HasNext:    true,
				NextCursor: "cursor-2",
			},
		}, nil)

		result := service.SearchOrders(context.Background(), SearchOptions{})

		require.True(t, result.Success)
		require.Len(t, result.Orders, 1)
		assert.Equal(t, entity.OrderID("order-1"), result.Orders[0].ID)
		assert.Equal(t, "Unknown", result.Orders[0].Customer.FirstName)
		assert.True(t, result.Pagination.HasNext)
		assert.Equal(t, "cursor-2", result.Pagination.NextCursor)
	})
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockVendorGateway(ctrl)
	service := New(gateway)

	t.Run("normalized fetch", func(t *testing.T) {
		gateway.EXPECT().GetOrder(gomock.Any(), "order-1").Return(model.VendorOrder{
			ID:     "order-1",
			Number: "10001",
		}, nil)

		result := service.GetOrder(context.Background(), "order-1")

		assert.True(t, result.Success)
		assert.Equal(t, entity.OrderID("order-1"), result.Order.ID)
	})

	t.Run("raw fetch keeps the vendor shape", func(t *testing.T) {
		gateway.EXPECT().GetOrder(gomock.Any(), "order-1").Return(model.VendorOrder{
			ID:          "order-1",
			ChannelType: "POS",
		}, nil)

		result := service.GetRawOrder(context.Background(), "order-1")

		assert.True(t, result.Success)
		assert.Equal(t, "POS", result.Order.ChannelType)
	})

	t.Run("missing contact fields are enriched from crm", func(t *testing.T) {
		gateway.EXPECT().GetOrder(gomock.Any(), "order-3").Return(model.VendorOrder{
			ID: "order-3",
			BuyerInfo: &model.VendorBuyerInfo{
				ID:        "contact-1",
				FirstName: "Ada",
				LastName:  "Lovelace",
			},
		}, nil)
		gateway.EXPECT().GetContact(gomock.Any(), "contact-1").Return(model.ContactResponse{
			ID:     "contact-1",
			Emails: []string{"ada@example.com"},
			Phones: []string{"+15550100"},
		}, nil)

		result := service.GetOrder(context.Background(), "order-3")

		require.True(t, result.Success)
		assert.Equal(t, "ada@example.com", result.Order.Customer.Email)
		assert.Equal(t, "+15550100", result.Order.Customer.Phone)
	})

	t.Run("crm failure leaves the order untouched", func(t *testing.T) {
		gateway.EXPECT().GetOrder(gomock.Any(), "order-4").Return(model.VendorOrder{
			ID: "order-4",
			BuyerInfo: &model.VendorBuyerInfo{
				ID: "contact-2",
			},
		}, nil)
		gateway.EXPECT().GetContact(gomock.Any(), "contact-2").Return(model.ContactResponse{}, errors.New("crm down"))

		result := service.GetOrder(context.Background(), "order-4")

		require.True(t, result.Success)
		assert.Empty(t, result.Order.Customer.Email)
	})

	t.Run("fetch failure returns failure envelope", func(t *testing.T) {
		gateway.EXPECT().GetOrder(gomock.Any(), "order-2").Return(model.VendorOrder{}, errors.New("not found"))

		result := service.GetOrder(context.Background(), "order-2")

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	})
}

func TestFulfillOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockVendorGateway(ctrl)
	service := New(gateway)

	t.Run("invalid request never reaches the vendor", func(t *testing.T) {
		gateway.EXPECT().CreateFulfillment(gomock.Any(), gomock.Any()).Times(0)

		result := service.FulfillOrder(context.Background(), FulfillRequest{})

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	})

	t.Run("successful fulfillment maps the vendor response", func(t *testing.T) {
		var capturedRequest model.CreateFulfillmentRequest
		gateway.EXPECT().CreateFulfillment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request model.CreateFulfillmentRequest) (model.CreateFulfillmentResponse, error) {
				capturedRequest = request
				return model.CreateFulfillmentResponse{
					Fulfillment: model.VendorFulfillment{
						ID: "f-1",
						TrackingInfo: &model.VendorTrackingInfo{
							TrackingNumber:   "1Z999",
							ShippingProvider: "ups",
						},
					},
					EmailSent: true,
				}, nil
			})

		result := service.FulfillOrder(context.Background(), FulfillRequest{
			OrderID:        "order-1",
			TrackingNumber: "1Z999",
			Carrier:        "ups",
			SendEmail:      true,
			Items: []ItemSelection{
				{LineItemID: "item-1", Quantity: 2},
			},
		})

		assert.True(t, result.Success)
		assert.True(t, result.EmailSent)
		assert.Equal(t, "1Z999", result.Fulfillment.TrackingNumber)

		assert.Equal(t, "order-1", capturedRequest.OrderID)
		assert.NotEmpty(t, capturedRequest.IdempotencyKey)
		require.Len(t, capturedRequest.LineItems, 1)
		assert.Equal(t, 2, capturedRequest.LineItems[0].Quantity)
	})

	t.Run("vendor failure returns failure envelope", func(t *testing.T) {
		gateway.EXPECT().CreateFulfillment(gomock.Any(), gomock.Any()).Return(model.CreateFulfillmentResponse{}, errors.New("vendor down"))

		result := service.FulfillOrder(context.Background(), FulfillRequest{OrderID: "order-1"})

		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
	})
}
