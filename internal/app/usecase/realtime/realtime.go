package realtime

import (
	"context"
	"sync"
	"time"

	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order"
	"go.uber.org/zap"
)

const (
	defaultInterval  = 10 * time.Second
	defaultPageLimit = 10

	checkTimeout = 5 * time.Second
)

type OrderSearcher interface {
	SearchOrders(ctx context.Context, options order.SearchOptions) order.SearchResult
}

type NewOrderCallback func(order entity.Order)

// Watcher polls the vendor order API on a fixed interval and announces
// orders it has not seen before to registered callbacks.
type Watcher struct {
	searcher  OrderSearcher
	interval  time.Duration
	pageLimit int

	mutex             sync.Mutex
	callbacks         map[int]NewOrderCallback
	nextCallbackID    int
	processedOrderIDs map[entity.OrderID]struct{}
	lastOrderCheck    time.Time

	toneOnce  sync.Once
	alertTone []byte

	done chan struct{}
	wg   sync.WaitGroup
}

func CreateWatcher(searcher OrderSearcher, config config.Config) *Watcher {
	interval := config.PollInterval
	if interval <= 0 {
		interval = defaultInterval
	}

	pageLimit := config.PollPageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	return &Watcher{
		searcher:          searcher,
		interval:          interval,
		pageLimit:         pageLimit,
		callbacks:         make(map[int]NewOrderCallback),
		processedOrderIDs: make(map[entity.OrderID]struct{}),
		lastOrderCheck:    time.Now(),
		done:              make(chan struct{}),
	}
}

func (w *Watcher) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.done:
				zap.L().Info("order watcher work has finished")
				return
			case <-ticker.C:
				w.checkForNewOrders()
			}
		}
	}()
}

func (w *Watcher) Stop() {
	close(w.done)
	w.wg.Wait()
}

// Register adds a new-order callback and returns a function that removes it.
func (w *Watcher) Register(callback NewOrderCallback) func() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	id := w.nextCallbackID
	w.nextCallbackID++
	w.callbacks[id] = callback

	return func() {
		w.mutex.Lock()
		defer w.mutex.Unlock()

		delete(w.callbacks, id)
	}
}

// Reset clears the seen-order set and moves the watermark to now.
func (w *Watcher) Reset() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	clear(w.processedOrderIDs)
	w.lastOrderCheck = time.Now()
}

func (w *Watcher) checkForNewOrders() {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	result := w.searcher.SearchOrders(ctx, order.SearchOptions{Limit: w.pageLimit})
	if !result.Success {
		// the tick is abandoned; the next tick retries unconditionally
		zap.L().Debug("order watcher tick abandoned", zap.String("error", result.Error))
		return
	}

	fresh := w.filterFresh(result.Orders)
	for _, newOrder := range fresh {
		zap.L().Info("new order detected", zap.String("order_id", newOrder.ID.String()), zap.String("number", newOrder.Number))
		w.announce(newOrder)
	}
}

func (w *Watcher) filterFresh(orders entity.Orders) entity.Orders {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	fresh := make(entity.Orders, 0, len(orders))
	maxCreated := w.lastOrderCheck

	for _, candidate := range orders {
		created, err := time.Parse(time.RFC3339, candidate.DateCreated)
		if err != nil {
			zap.L().Error("error while parsing order creation time", zap.Error(err), zap.String("order_id", candidate.ID.String()))
			continue
		}

		if !created.After(w.lastOrderCheck) {
			continue
		}

		if _, processed := w.processedOrderIDs[candidate.ID]; processed {
			continue
		}

		w.processedOrderIDs[candidate.ID] = struct{}{}
		fresh = append(fresh, candidate)

		if created.After(maxCreated) {
			maxCreated = created
		}
	}

	// the watermark advances to the newest observed order, not to "now",
	// so orders created during a slow poll are not skipped
	w.lastOrderCheck = maxCreated

	return fresh
}

func (w *Watcher) announce(newOrder entity.Order) {
	w.mutex.Lock()
	callbacks := make([]NewOrderCallback, 0, len(w.callbacks))
	for _, callback := range w.callbacks {
		callbacks = append(callbacks, callback)
	}
	w.mutex.Unlock()

	for _, callback := range callbacks {
		w.invoke(callback, newOrder)
	}
}

// invoke isolates listener panics so one failing callback cannot break the
// announcement of an order to the others.
func (w *Watcher) invoke(callback NewOrderCallback, newOrder entity.Order) {
	defer func() {
		if recovered := recover(); recovered != nil {
			zap.L().Error("new order callback panicked", zap.Any("panic", recovered))
		}
	}()

	callback(newOrder)
}

// AlertTone returns the synthesized notification sound, built on first use.
func (w *Watcher) AlertTone() []byte {
	w.toneOnce.Do(func() {
		w.alertTone = buildAlertTone()
	})

	return w.alertTone
}
