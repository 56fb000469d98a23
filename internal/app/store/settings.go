package store

import "sync"

type DisplayPreferences struct {
	ShowFulfilled bool   `json:"showFulfilled"`
	SoundAlerts   bool   `json:"soundAlerts"`
	PageSize      int    `json:"pageSize"`
	DateFormat    string `json:"dateFormat"`
}

func DefaultDisplayPreferences() DisplayPreferences {
	return DisplayPreferences{
		ShowFulfilled: true,
		SoundAlerts:   true,
		PageSize:      50,
		DateFormat:    "2006-01-02 15:04",
	}
}

// SettingsStore holds merchant display preferences.
type SettingsStore struct {
	Notifier

	mutex       sync.RWMutex
	preferences DisplayPreferences
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		preferences: DefaultDisplayPreferences(),
	}
}

func (s *SettingsStore) Preferences() DisplayPreferences {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.preferences
}

func (s *SettingsStore) SetPreferences(preferences DisplayPreferences) {
	s.mutex.Lock()
	s.preferences = preferences
	s.mutex.Unlock()

	s.notify()
}
