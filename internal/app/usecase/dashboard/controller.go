package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/store"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/fulfillment"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/realtime"
)

// refetchDelay gives the vendor backend time to propagate a fulfillment
// before the follow-up single-order fetch.
const refetchDelay = 2 * time.Second

type OrderProvider interface {
	SearchOrders(ctx context.Context, options order.SearchOptions) order.SearchResult
	GetOrder(ctx context.Context, orderID entity.OrderID) order.OrderResult
	FulfillOrder(ctx context.Context, request order.FulfillRequest) order.FulfillResult
}

type OrderWatcher interface {
	Register(callback realtime.NewOrderCallback) func()
	Stop()
}

// Controller coordinates the stores, the order service and the realtime
// watcher on behalf of the dashboard UI.
type Controller struct {
	service  OrderProvider
	watcher  OrderWatcher
	orders   *store.OrderStore
	ui       *store.UIStore
	settings *store.SettingsStore

	refetchDelay time.Duration
	unregister   func()
}

func New(service OrderProvider, watcher OrderWatcher, orders *store.OrderStore, ui *store.UIStore, settings *store.SettingsStore) *Controller {
	controller := &Controller{
		service:      service,
		watcher:      watcher,
		orders:       orders,
		ui:           ui,
		settings:     settings,
		refetchDelay: refetchDelay,
	}

	controller.unregister = watcher.Register(controller.onNewOrder)

	return controller
}

func (c *Controller) LoadOrders(ctx context.Context) order.SearchResult {
	c.orders.SetLoading(true)
	defer c.orders.SetLoading(false)

	preferences := c.settings.Preferences()

	result := c.service.SearchOrders(ctx, order.SearchOptions{
		Limit: preferences.PageSize,
	})
	if !result.Success {
		c.ui.PushToast(store.ToastError, "Couldn't load orders. Please try again.")
		return result
	}

	c.orders.SetOrders(result.Orders, result.Pagination)

	return result
}

func (c *Controller) RefreshOrders(ctx context.Context) order.SearchResult {
	return c.LoadOrders(ctx)
}

func (c *Controller) SelectOrder(selected entity.Order) {
	c.orders.Select(&selected)
}

// SelectOrderByID re-fetches the order when it is not already in the store.
func (c *Controller) SelectOrderByID(ctx context.Context, orderID entity.OrderID) bool {
	if stored, ok := c.orders.Get(orderID); ok {
		c.orders.Select(&stored)
		return true
	}

	result := c.service.GetOrder(ctx, orderID)
	if !result.Success {
		c.ui.PushToast(store.ToastError, "Couldn't open the order.")
		return false
	}

	c.orders.Upsert(result.Order)
	c.orders.Select(&result.Order)

	return true
}

// FulfillOrder submits tracking info and refreshes the stored order. A fresh
// single-order fetch is preferred so server-computed state wins; when that
// fetch fails the update is recomputed locally from the submitted quantities.
func (c *Controller) FulfillOrder(ctx context.Context, request order.FulfillRequest) order.FulfillResult {
	result := c.service.FulfillOrder(ctx, request)
	if !result.Success {
		c.ui.PushToast(store.ToastError, "Fulfillment failed. Please try again.")
		return result
	}

	if result.EmailSent {
		c.ui.PushToast(store.ToastInfo, "Shipping confirmation email sent to the customer.")
	}

	select {
	case <-time.After(c.refetchDelay):
	case <-ctx.Done():
	}

	refetched := c.service.GetOrder(ctx, entity.OrderID(request.OrderID))
	if refetched.Success {
		c.orders.Upsert(refetched.Order)
		return result
	}

	zap.L().Error("error while re-fetching fulfilled order, recomputing locally", zap.String("order_id", request.OrderID))
	c.applyFulfillmentLocally(request, result.Fulfillment)

	return result
}

// OrderSummary renders a plain-text summary for the UI's copy-to-clipboard
// action.
func (c *Controller) OrderSummary(orderID entity.OrderID) (string, bool) {
	stored, ok := c.orders.Get(orderID)
	if !ok {
		return "", false
	}

	summary := fulfillment.Summarize(stored.LineItems)

	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Order %s — %s\n", stored.Number, stored.FormattedTotal)
	fmt.Fprintf(builder, "Customer: %s %s %s\n", stored.Customer.FirstName, stored.Customer.LastName, stored.Customer.Email)
	fmt.Fprintf(builder, "Fulfilled %d of %d items\n", summary.FulfilledItems, summary.TotalItems)

	for _, item := range stored.LineItems {
		fmt.Fprintf(builder, "- %s x%d\n", item.ProductName, item.Quantity)
	}

	return builder.String(), true
}

func (c *Controller) Destroy() {
	if c.unregister != nil {
		c.unregister()
		c.unregister = nil
	}

	c.watcher.Stop()
}

func (c *Controller) onNewOrder(newOrder entity.Order) {
	c.orders.Prepend(newOrder)
	c.ui.PushToast(store.ToastInfo, fmt.Sprintf("New order #%s received", newOrder.Number))
}

func (c *Controller) applyFulfillmentLocally(request order.FulfillRequest, record entity.FulfillmentRecord) {
	stored, ok := c.orders.Get(entity.OrderID(request.OrderID))
	if !ok {
		return
	}

	requested := make(map[string]int, len(request.Items))
	for _, item := range request.Items {
		requested[item.LineItemID] = item.Quantity
	}

	for i := range stored.LineItems {
		item := &stored.LineItems[i]

		if len(request.Items) == 0 {
			// no explicit selection fulfills the whole order
			item.FulfilledQuantity = item.Quantity
		} else if quantity, ok := requested[item.ID]; ok {
			item.FulfilledQuantity += quantity
		} else {
			continue
		}

		item.Fulfillments = append(item.Fulfillments, record)
	}

	stored.FulfillmentStatus = fulfillment.DeriveStatus(stored.Canceled, stored.LineItems)

	c.orders.Upsert(stored)
}
