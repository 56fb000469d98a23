package billing

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	httputils "github.com/orderdeck/go-order-dashboard/internal/app/controller/http/utils"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
)

type PlanResolver interface {
	Instance(ctx context.Context) (entity.AppInstance, error)
}

type Billing struct {
	gate PlanResolver
}

func New(gate PlanResolver) Billing {
	return Billing{
		gate: gate,
	}
}

// GetPlan tells the UI which premium features to unlock.
func (p *Billing) GetPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := httputils.GetInstanceFromContext(r)
		if err != nil {
			zap.L().Error("error while parsing instance id while getting plan", zap.Error(err))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		instance, err := p.gate.Instance(r.Context())
		if err != nil {
			zap.L().Error("error while getting app instance plan", zap.Error(err))

			// plan lookup failures gate to the free tier
			httputils.WriteJSON(w, http.StatusOK, model.BillingResponse{})
			return
		}

		httputils.WriteJSON(w, http.StatusOK, model.BillingResponse{
			Premium:         instance.Premium,
			VendorProductID: instance.VendorProductID,
			BillingCycle:    instance.BillingCycle,
		})
	}
}
