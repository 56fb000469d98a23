package http

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	billing_handler "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/billing"
	"github.com/orderdeck/go-order-dashboard/internal/app/controller/http/middleware/instance"
	"github.com/orderdeck/go-order-dashboard/internal/app/controller/http/middleware/logger"
	"github.com/orderdeck/go-order-dashboard/internal/app/controller/http/notifications"
	"github.com/orderdeck/go-order-dashboard/internal/app/controller/http/orders"
	"github.com/orderdeck/go-order-dashboard/internal/app/controller/http/settings"
	httputils "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/utils"
	"github.com/orderdeck/go-order-dashboard/internal/app/store"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/billing"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/dashboard"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/realtime"
	"github.com/orderdeck/go-order-dashboard/internal/app/vendor"
	"github.com/orderdeck/go-order-dashboard/internal/app/webhook"
)

type HTTPServer struct {
	server *http.Server

	config     config.Config
	controller *dashboard.Controller
	watcher    *realtime.Watcher
	gate       *billing.PlanGate
	notifier   *webhook.Notifier
}

func New(config config.Config) *HTTPServer {
	vendorClient, err := vendor.New(config)
	if err != nil {
		zap.L().Fatal("error while creating vendor api client", zap.Error(err))
	}

	orderStore := store.NewOrderStore()
	uiStore := store.NewUIStore()
	settingsStore := store.NewSettingsStore()

	orderService := order.New(vendorClient)
	watcher := realtime.CreateWatcher(orderService, config)
	controller := dashboard.New(orderService, watcher, orderStore, uiStore, settingsStore)
	gate := billing.New(vendorClient)
	notifier := webhook.New(config)

	mux := createMux(config, controller, orderStore, uiStore, settingsStore, watcher, gate)

	server := &http.Server{
		Addr:    config.NetAddr,
		Handler: mux,
	}

	return &HTTPServer{
		server:     server,
		config:     config,
		controller: controller,
		watcher:    watcher,
		gate:       gate,
		notifier:   notifier,
	}
}

func (s *HTTPServer) StartHTTPServer() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	s.watcher.Start()
	s.sendLifecycleEvent("app.started")

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("fatal error while starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	s.sendLifecycleEvent("app.stopped")
	s.controller.Destroy()

	err := s.server.Shutdown(context.Background())
	if err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
	}
}

func (s *HTTPServer) sendLifecycleEvent(event string) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	appInstance, err := s.gate.Instance(ctx)
	if err != nil {
		zap.L().Error("error while resolving app instance for lifecycle event", zap.Error(err))
	}

	s.notifier.Send(event, appInstance)
}

func createMux(
	config config.Config,
	controller *dashboard.Controller,
	orderStore *store.OrderStore,
	uiStore *store.UIStore,
	settingsStore *store.SettingsStore,
	watcher *realtime.Watcher,
	gate *billing.PlanGate,
) *chi.Mux {
	ordersHandler := orders.New(controller, orderStore)
	settingsHandler := settings.New(settingsStore)
	notificationsHandler := notifications.New(uiStore, watcher)
	billingHandler := billing_handler.New(gate)

	r := chi.NewRouter()

	r.Use(logger.LoggerMiddleware)
	r.Use(instance.TokenParserMiddleware(config.AppSecret))

	r.Get("/api/orders", ordersHandler.GetOrders())
	r.Get("/api/orders/{orderID}", ordersHandler.GetOrder())
	r.Post("/api/orders/{orderID}/fulfillments", ordersHandler.FulfillOrder())
	r.Get("/api/orders/{orderID}/summary", ordersHandler.GetOrderSummary())

	r.Get("/api/settings", settingsHandler.GetPreferences())
	r.Put("/api/settings", settingsHandler.SetPreferences())

	r.Get("/api/notifications", notificationsHandler.GetToasts())
	r.Delete("/api/notifications/{toastID}", notificationsHandler.DismissToast())
	r.Get("/api/notifications/alert.wav", notificationsHandler.GetAlertTone())

	r.Get("/api/billing", billingHandler.GetPlan())

	return r
}
