package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/usecase/order"
)

type stubSearcher struct {
	results []order.SearchResult
	calls   int
}

func (s *stubSearcher) SearchOrders(_ context.Context, _ order.SearchOptions) order.SearchResult {
	s.calls++
	if s.calls > len(s.results) {
		return order.SearchResult{Success: true}
	}

	return s.results[s.calls-1]
}

func testOrder(id string, created time.Time) entity.Order {
	return entity.Order{
		ID:          entity.OrderID(id),
		Number:      "1000" + id,
		DateCreated: created.Format(time.RFC3339),
	}
}

func createTestWatcher(searcher OrderSearcher) *Watcher {
	watcher := CreateWatcher(searcher, config.Config{})
	watcher.lastOrderCheck = time.Now().Add(-time.Hour)

	return watcher
}

func TestCheckForNewOrdersAnnouncesOnce(t *testing.T) {
	created := time.Now().Add(-time.Minute)
	result := order.SearchResult{
		Success: true,
		Orders:  entity.Orders{testOrder("1", created)},
	}

	searcher := &stubSearcher{results: []order.SearchResult{result, result}}
	watcher := createTestWatcher(searcher)

	announced := 0
	watcher.Register(func(entity.Order) {
		announced++
	})

	watcher.checkForNewOrders()
	watcher.checkForNewOrders()

	assert.Equal(t, 1, announced)
}

func TestCheckForNewOrdersSkipsStaleOrders(t *testing.T) {
	searcher := &stubSearcher{results: []order.SearchResult{
		{
			Success: true,
			Orders: entity.Orders{
				testOrder("1", time.Now().Add(-2*time.Hour)),
			},
		},
	}}
	watcher := createTestWatcher(searcher)

	announced := 0
	watcher.Register(func(entity.Order) {
		announced++
	})

	watcher.checkForNewOrders()

	assert.Zero(t, announced)
}

func TestCheckForNewOrdersAbandonsTickOnFailure(t *testing.T) {
	watermark := time.Now().Add(-time.Hour)

	searcher := &stubSearcher{results: []order.SearchResult{
		{Error: "vendor down"},
	}}
	watcher := CreateWatcher(searcher, config.Config{})
	watcher.lastOrderCheck = watermark

	announced := 0
	watcher.Register(func(entity.Order) {
		announced++
	})

	watcher.checkForNewOrders()

	assert.Zero(t, announced)
	assert.Equal(t, watermark, watcher.lastOrderCheck)
}

func TestWatermarkAdvancesToNewestObservedOrder(t *testing.T) {
	first := time.Now().Add(-10 * time.Minute).Truncate(time.Second)
	second := time.Now().Add(-5 * time.Minute).Truncate(time.Second)

	searcher := &stubSearcher{results: []order.SearchResult{
		{
			Success: true,
			Orders: entity.Orders{
				testOrder("2", second),
				testOrder("1", first),
			},
		},
	}}
	watcher := createTestWatcher(searcher)

	watcher.checkForNewOrders()

	assert.True(t, watcher.lastOrderCheck.Equal(second))
}

func TestCallbackPanicIsIsolated(t *testing.T) {
	created := time.Now().Add(-time.Minute)

	searcher := &stubSearcher{results: []order.SearchResult{
		{
			Success: true,
			Orders:  entity.Orders{testOrder("1", created)},
		},
	}}
	watcher := createTestWatcher(searcher)

	watcher.Register(func(entity.Order) {
		panic("broken listener")
	})

	announced := 0
	watcher.Register(func(entity.Order) {
		announced++
	})

	assert.NotPanics(t, func() {
		watcher.checkForNewOrders()
	})
	assert.Equal(t, 1, announced)
}

func TestUnregisterStopsAnnouncements(t *testing.T) {
	created := time.Now().Add(-time.Minute)

	searcher := &stubSearcher{results: []order.SearchResult{
		{
			Success: true,
			Orders:  entity.Orders{testOrder("1", created)},
		},
	}}
	watcher := createTestWatcher(searcher)

	announced := 0
	unregister := watcher.Register(func(entity.Order) {
		announced++
	})
	unregister()

	watcher.checkForNewOrders()

	assert.Zero(t, announced)
}

func TestResetClearsSeenOrders(t *testing.T) {
	created := time.Now().Add(-time.Minute)
	result := order.SearchResult{
		Success: true,
		Orders:  entity.Orders{testOrder("1", created)},
	}

	searcher := &stubSearcher{results: []order.SearchResult{result, result}}
	watcher := createTestWatcher(searcher)

	announced := 0
	watcher.Register(func(entity.Order) {
		announced++
	})

	watcher.checkForNewOrders()
	require.Equal(t, 1, announced)

	watcher.Reset()
	watcher.lastOrderCheck = time.Now().Add(-time.Hour)

	watcher.checkForNewOrders()

	assert.Equal(t, 2, announced)
}

func TestStartStop(t *testing.T) {
	searcher := &stubSearcher{}
	watcher := CreateWatcher(searcher, config.Config{PollInterval: 10 * time.Millisecond})

	watcher.Start()
	time.Sleep(35 * time.Millisecond)
	watcher.Stop()

	assert.Greater(t, searcher.calls, 0)
}

func TestAlertTone(t *testing.T) {
	watcher := CreateWatcher(&stubSearcher{}, config.Config{})

	tone := watcher.AlertTone()

	require.NotEmpty(t, tone)
	assert.Equal(t, "RIFF", string(tone[:4]))
	assert.Equal(t, "WAVE", string(tone[8:12]))

	// lazily built once and reused
	again := watcher.AlertTone()
	assert.Same(t, &tone[0], &again[0])
}
