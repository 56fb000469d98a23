package notifications

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	httputils "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/utils"
	"github.com/orderdeck/go-order-dashboard/internal/app/store"
)

type ToneProvider interface {
	AlertTone() []byte
}

type Notifications struct {
	ui   *store.UIStore
	tone ToneProvider
}

func New(uiStore *store.UIStore, tone ToneProvider) Notifications {
	return Notifications{
		ui:   uiStore,
		tone: tone,
	}
}

func (p *Notifications) GetToasts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetInstanceFromContext(r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting toasts", zap.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, p.ui.Toasts())
	}
}

func (p *Notifications) DismissToast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetInstanceFromContext(r)
		if err != nil {
			zap.L().Error("error while parsing instance id while dismissing toast", zap.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		p.ui.DismissToast(chi.URLParam(r, "toastID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetAlertTone serves the synthesized new-order sound; playback on the UI
// side is best-effort.
func (p *Notifications) GetAlertTone() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/wav")
		w.WriteHeader(http.StatusOK)
		w.Write(p.tone.AlertTone())
	}
}
