package billing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/go-order-dashboard/internal/app/model"
)

type stubGateway struct {
	response model.AppInstanceResponse
	err      error
	calls    int
}

func (s *stubGateway) GetAppInstance(_ context.Context) (model.AppInstanceResponse, error) {
	s.calls++
	return s.response, s.err
}

func TestPremium(t *testing.T) {
	gateway := &stubGateway{
		response: model.AppInstanceResponse{
			Instance: model.VendorInstance{
				InstanceID: "instance-1",
				IsFree:     false,
				Billing: &model.VendorBillingPlan{
					PackageName:  "premium-monthly",
					BillingCycle: "MONTHLY",
				},
			},
		},
	}

	gate := New(gateway)

	assert.True(t, gate.Premium(context.Background()))

	instance, err := gate.Instance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "premium-monthly", instance.VendorProductID)
	assert.Equal(t, "MONTHLY", instance.BillingCycle)
}

func TestPremiumFreePlan(t *testing.T) {
	gateway := &stubGateway{
		response: model.AppInstanceResponse{
			Instance: model.VendorInstance{
				InstanceID: "instance-1",
				IsFree:     true,
			},
		},
	}

	gate := New(gateway)

	assert.False(t, gate.Premium(context.Background()))
}

func TestPremiumLookupFailureGatesToFreeTier(t *testing.T) {
	gateway := &stubGateway{
		err: errors.New("vendor down"),
	}

	gate := New(gateway)

	assert.False(t, gate.Premium(context.Background()))
}

func TestInstanceIsCached(t *testing.T) {
	gateway := &stubGateway{
		response: model.AppInstanceResponse{
			Instance: model.VendorInstance{
				InstanceID: "instance-1",
			},
		},
	}

	gate := New(gateway)

	_, err := gate.Instance(context.Background())
	require.NoError(t, err)
	_, err = gate.Instance(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, gateway.calls)
}
