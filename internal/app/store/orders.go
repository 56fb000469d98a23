package store

import (
	"sync"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

// OrderStore owns the order collection shown by the dashboard. The UI holds
// only the read snapshots returned here.
type OrderStore struct {
	Notifier

	mutex      sync.RWMutex
	orders     entity.Orders
	selected   *entity.Order
	pagination entity.Pagination
	loading    bool
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) SetOrders(orders entity.Orders, pagination entity.Pagination) {
	s.mutex.Lock()
	s.orders = orders
	s.pagination = pagination
	s.mutex.Unlock()

	s.notify()
}

func (s *OrderStore) Orders() entity.Orders {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	orders := make(entity.Orders, len(s.orders))
	copy(orders, s.orders)

	return orders
}

func (s *OrderStore) Pagination() entity.Pagination {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.pagination
}

// Prepend puts a freshly arrived order at the top of the collection.
func (s *OrderStore) Prepend(order entity.Order) {
	s.mutex.Lock()
	s.orders = append(entity.Orders{order}, s.orders...)
	s.mutex.Unlock()

	s.notify()
}

// Upsert replaces the stored order with the same id wholesale, or prepends
// it when unknown. The selection follows the replacement.
func (s *OrderStore) Upsert(order entity.Order) {
	s.mutex.Lock()

	replaced := false
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order
			replaced = true
			break
		}
	}

	if !replaced {
		s.orders = append(entity.Orders{order}, s.orders...)
	}

	if s.selected != nil && s.selected.ID == order.ID {
		selected := order
		s.selected = &selected
	}

	s.mutex.Unlock()

	s.notify()
}

func (s *OrderStore) Select(order *entity.Order) {
	s.mutex.Lock()
	s.selected = order
	s.mutex.Unlock()

	s.notify()
}

func (s *OrderStore) Selected() (entity.Order, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.selected == nil {
		return entity.Order{}, false
	}

	return *s.selected, true
}

func (s *OrderStore) Get(orderID entity.OrderID) (entity.Order, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return order, true
		}
	}

	return entity.Order{}, false
}

func (s *OrderStore) SetLoading(loading bool) {
	s.mutex.Lock()
	s.loading = loading
	s.mutex.Unlock()

	s.notify()
}

func (s *OrderStore) Loading() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.loading
}
