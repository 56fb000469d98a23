package billing

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
	"github.com/orderdeck/go-order-dashboard/internal/app/model"
)

const cacheTTL = 5 * time.Minute

type InstanceGateway interface {
	GetAppInstance(ctx context.Context) (model.AppInstanceResponse, error)
}

// PlanGate resolves the app instance's billing plan and answers premium
// checks for feature gating. Lookups are cached per instance.
type PlanGate struct {
	gateway InstanceGateway

	mutex     sync.Mutex
	cached    entity.AppInstance
	fetchedAt time.Time
}

func New(gateway InstanceGateway) *PlanGate {
	return &PlanGate{
		gateway: gateway,
	}
}

func (g *PlanGate) Instance(ctx context.Context) (entity.AppInstance, error) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.cached.InstanceID.Valid() && time.Since(g.fetchedAt) < cacheTTL {
		return g.cached, nil
	}

	response, err := g.gateway.GetAppInstance(ctx)
	if err != nil {
		return entity.AppInstance{}, err
	}

	g.cached = convertInstance(response.Instance)
	g.fetchedAt = time.Now()

	return g.cached, nil
}

// Premium reports whether the instance runs on a paid plan. Lookup failures
// gate conservatively to the free tier.
func (g *PlanGate) Premium(ctx context.Context) bool {
	instance, err := g.Instance(ctx)
	if err != nil {
		zap.L().Error("error while resolving app instance plan", zap.Error(err))
		return false
	}

	return instance.Premium
}

func convertInstance(instance model.VendorInstance) entity.AppInstance {
	converted := entity.AppInstance{
		InstanceID: entity.InstanceID(instance.InstanceID),
		Premium:    !instance.IsFree,
	}

	if instance.Billing != nil {
		converted.VendorProductID = instance.Billing.PackageName
		converted.BillingCycle = instance.Billing.BillingCycle
	}

	return converted
}
