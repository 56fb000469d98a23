package store

import (
	"sync"

	"github.com/google/uuid"
)

type ToastLevel string

const (
	ToastInfo  ToastLevel = `INFO`
	ToastError ToastLevel = `ERROR`
)

type Toast struct {
	ID      string     `json:"id"`
	Level   ToastLevel `json:"level"`
	Message string     `json:"message"`
}

// UIStore holds transient dashboard state such as toast messages.
type UIStore struct {
	Notifier

	mutex  sync.RWMutex
	toasts []Toast
}

func NewUIStore() *UIStore {
	return &UIStore{}
}

func (s *UIStore) PushToast(level ToastLevel, message string) Toast {
	toast := Toast{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}

	s.mutex.Lock()
	s.toasts = append(s.toasts, toast)
	s.mutex.Unlock()

	s.notify()

	return toast
}

func (s *UIStore) Toasts() []Toast {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	toasts := make([]Toast, len(s.toasts))
	copy(toasts, s.toasts)

	return toasts
}

func (s *UIStore) DismissToast(id string) {
	s.mutex.Lock()

	kept := s.toasts[:0]
	for _, toast := range s.toasts {
		if toast.ID != id {
			kept = append(kept, toast)
		}
	}
	s.toasts = kept

	s.mutex.Unlock()

	s.notify()
}
