package store

import "sync"

type Subscriber func()

// Notifier is the shared subscription mechanism of the stores. Subscribers
// are invoked after each committed mutation, outside the store lock.
type Notifier struct {
	mutex       sync.Mutex
	nextID      int
	subscribers map[int]Subscriber
}

// Subscribe registers a callback and returns a function that removes it.
func (n *Notifier) Subscribe(subscriber Subscriber) func() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if n.subscribers == nil {
		n.subscribers = make(map[int]Subscriber)
	}

	id := n.nextID
	n.nextID++
	n.subscribers[id] = subscriber

	return func() {
		n.mutex.Lock()
		defer n.mutex.Unlock()

		delete(n.subscribers, id)
	}
}

func (n *Notifier) notify() {
	n.mutex.Lock()
	subscribers := make([]Subscriber, 0, len(n.subscribers))
	for _, subscriber := range n.subscribers {
		subscribers = append(subscribers, subscriber)
	}
	n.mutex.Unlock()

	for _, subscriber := range subscribers {
		subscriber()
	}
}
