package settings

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/utils"
	"github.com/orderdeck/go-order-dashboard/internal/app/store"
)

type Settings struct {
	store *store.SettingsStore
}

func New(settingsStore *store.SettingsStore) Settings {
	return Settings{
		store: settingsStore,
	}
}

func (p *Settings) GetPreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetInstanceFromContext(r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting preferences", zap.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, p.store.Preferences())
	}
}

func (p *Settings) SetPreferences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetInstanceFromContext(r)
		if err != nil {
			zap.L().Error("error while parsing instance id while setting preferences", zap.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var preferences store.DisplayPreferences
		err = json.NewDecoder(r.Body).Decode(&preferences)
		if err != nil {
			zap.L().Error("error while decoding display preferences", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if preferences.PageSize <= 0 {
			preferences.PageSize = store.DefaultDisplayPreferences().PageSize
		}

		p.store.SetPreferences(preferences)

		httputils.WriteJSON(w, http.StatusOK, preferences)
	}
}
