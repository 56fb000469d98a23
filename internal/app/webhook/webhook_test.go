package webhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdeck/go-order-dashboard/internal/app/config"
	"github.com/orderdeck/go-order-dashboard/internal/app/entity"
)

func TestSend(t *testing.T) {
	received := make(chan payload, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body payload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		received <- body
	}))
	defer server.Close()

	notifier := New(config.Config{WebhookURL: server.URL})

	notifier.Send("app.started", entity.AppInstance{
		InstanceID:      "instance-1",
		VendorProductID: "premium-monthly",
		BillingCycle:    "MONTHLY",
		Premium:         true,
	})

	select {
	case body := <-received:
		assert.NotEmpty(t, body.EventID)
		assert.Equal(t, "app.started", body.Event)
		assert.Equal(t, "instance-1", body.InstanceID)
		assert.Equal(t, "premium-monthly", body.VendorProductID)
		assert.Equal(t, "MONTHLY", body.BillingCycle)
		assert.True(t, body.Premium)
	case <-time.After(time.Second):
		t.Fatal("lifecycle webhook was not delivered")
	}
}

func TestSendWithoutURL(t *testing.T) {
	notifier := New(config.Config{})

	assert.NotPanics(t, func() {
		notifier.Send("app.started", entity.AppInstance{InstanceID: "instance-1"})
	})
}
