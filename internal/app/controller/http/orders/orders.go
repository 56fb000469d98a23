package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/utils"
	"github.com/orderdeck/go-order-dashboard/internal/app/converter"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
	"github.com/orderdeck/go-order-dashboard/internal/app/store"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order"
)

const (
	ErrTokenExpired = "token has expired"
	ErrInvalidAuth  = "instance token is invalid"
)

type DashboardController interface {
	LoadOrders(ctx context.Context) order.SearchResult
	SelectOrderByID(ctx context.Context, orderID entity.OrderID) bool
	FulfillOrder(ctx context.Context, request order.FulfillRequest) order.FulfillResult
	OrderSummary(orderID entity.OrderID) (string, bool)
}

type Orders struct {
	controller DashboardController
	store      *store.OrderStore
}

func New(controller DashboardController, orderStore *store.OrderStore) Orders {
	return Orders{
		controller: controller,
		store:      orderStore,
	}
}

func (p *Orders) GetOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := p.parseInstance(w, r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting orders", zap.Error(err))
			return
		}

		result := p.controller.LoadOrders(r.Context())

		response := model.OrderListResponse{
			Success:    result.Success,
			Error:      result.Error,
			Orders:     converter.ConvertOrdersToOutput(result.Orders),
			Pagination: converter.ConvertPaginationToOutput(result.Pagination),
		}

		statusCode := http.StatusOK
		if !result.Success {
			statusCode = http.StatusBadGateway
		}

		httputils.WriteJSON(w, statusCode, response)
	}
}

func (p *Orders) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := p.parseInstance(w, r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting order", zap.Error(err))
			return
		}

		orderID := entity.OrderID(chi.URLParam(r, "orderID"))
		if !orderID.Valid() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if !p.controller.SelectOrderByID(r.Context(), orderID) {
			httputils.WriteJSON(w, http.StatusNotFound, model.OrderResponse{
				Error: "order not found",
			})
			return
		}

		selected, ok := p.store.Selected()
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		output := converter.ConvertOrderToOutput(selected)
		httputils.WriteJSON(w, http.StatusOK, model.OrderResponse{
			Success: true,
			Order:   &output,
		})
	}
}

func (p *Orders) FulfillOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := p.parseInstance(w, r)
		if err != nil {
			zap.L().Error("error while parsing instance id while fulfilling order", zap.Error(err))
			return
		}

		orderID := entity.OrderID(chi.URLParam(r, "orderID"))
		if !orderID.Valid() {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var request model.FulfillOrderRequest
		err = json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			zap.L().Error("error while decoding fulfill order request", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		fulfillRequest := order.FulfillRequest{
			OrderID:        orderID.String(),
			TrackingNumber: request.TrackingNumber,
			TrackingURL:    request.TrackingURL,
			Carrier:        request.Carrier,
			SendEmail:      request.SendEmail,
		}
		for _, item := range request.Items {
			fulfillRequest.Items = append(fulfillRequest.Items, order.ItemSelection{
				LineItemID: item.LineItemID,
				Quantity:   item.Quantity,
			})
		}

		result := p.controller.FulfillOrder(r.Context(), fulfillRequest)

		response := model.FulfillResponse{
			Success:   result.Success,
			Error:     result.Error,
			EmailSent: result.EmailSent,
		}
		if result.Success {
			output := converter.ConvertFulfillmentToOutput(result.Fulfillment)
			response.Fulfillment = &output
		}

		statusCode := http.StatusOK
		if !result.Success {
			statusCode = http.StatusBadGateway
		}

		httputils.WriteJSON(w, statusCode, response)
	}
}

// GetOrderSummary returns the plain-text order summary the UI copies to the
// clipboard.
func (p *Orders) GetOrderSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := p.parseInstance(w, r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting order summary", zap.Error(err))
			return
		}

		orderID := entity.OrderID(chi.URLParam(r, "orderID"))

		summary, ok := p.controller.OrderSummary(orderID)
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(summary))
	}
}

func (p *Orders) parseInstance(w http.ResponseWriter, r *http.Request) (entity.InstanceID, error) {
	instanceCtx, ok := r.Context().Value(entity.InstanceCtxKey{}).(entity.InstanceCtx)

	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.InstanceID(""), fmt.Errorf("instance id couldn't obtain from context")
	}

	if instanceCtx.StatusCode == http.StatusBadRequest {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.InstanceID(""), fmt.Errorf("failed instance credentials")
	}

	if instanceCtx.StatusCode == http.StatusUnauthorized {
		http.Error(w, ErrTokenExpired, http.StatusUnauthorized)
		return entity.InstanceID(""), fmt.Errorf("instance token expired or missing")
	}

	if instanceCtx.StatusCode == http.StatusOK && !instanceCtx.InstanceID.Valid() {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.InstanceID(""), fmt.Errorf("invalid instance id with status ok")
	}

	return instanceCtx.InstanceID, nil
}
