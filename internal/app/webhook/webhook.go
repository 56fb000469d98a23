package webhook

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

const sendTimeout = 5 * time.Second

type payload struct {
	EventID         string `json:"eventId"`
	Event           string `json:"event"`
	InstanceID      string `json:"instanceId"`
	VendorProductID string `json:"vendorProductId,omitempty"`
	BillingCycle    string `json:"cycle,omitempty"`
	Premium         bool   `json:"premium"`
}

// Notifier posts app lifecycle events to the analytics endpoint. Delivery is
// fire-and-forget and never blocks the caller.
type Notifier struct {
	client http.Client
	url    string
}

func New(config config.Config) *Notifier {
	return &Notifier{
		client: http.Client{
			Timeout: sendTimeout,
		},
		url: config.WebhookURL,
	}
}

func (n *Notifier) Send(event string, instance entity.AppInstance) {
	if len(n.url) == 0 {
		return
	}

	body, err := json.Marshal(payload{
		EventID:         uuid.NewString(),
		Event:           event,
		InstanceID:      instance.InstanceID.String(),
		VendorProductID: instance.VendorProductID,
		BillingCycle:    instance.BillingCycle,
		Premium:         instance.Premium,
	})
	if err != nil {
		zap.L().Error("error while marshalling lifecycle webhook", zap.Error(err))
		return
	}

	go func() {
		res, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
		if err != nil {
			zap.L().Error("error while sending lifecycle webhook", zap.Error(err), zap.String("event", event))
			return
		}
		res.Body.Close()

		zap.L().Debug("lifecycle webhook sent", zap.String("event", event), zap.Int("status", res.StatusCode))
	}()
}
