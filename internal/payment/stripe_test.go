package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testSecret = "whsec_test_secret"

func signed(t *testing.T, payload string) *webhook.SignedPayload {
	t.Helper()
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
}

func TestParseWebhook(t *testing.T) {
	provider := NewStripeProvider("sk_test_unused", testSecret)

	testCases := []struct {
		name          string
		payload       string
		wantCompleted *CompletedCheckout
	}{
		{
			name: "completed and paid",
			payload: `{"id":"evt_1","object":"event","type":"checkout.session.completed",
				"data":{"object":{"id":"cs_1","object":"checkout.session","customer_email":"a@example.com","payment_status":"paid"}}}`,
			wantCompleted: &CompletedCheckout{SessionID: "cs_1", Email: "a@example.com", Paid: true},
		},
		{
			name: "completed but unpaid",
			payload: `{"id":"evt_2","object":"event","type":"checkout.session.completed",
				"data":{"object":{"id":"cs_2","object":"checkout.session","customer_details":{"email":"b@example.com"},"payment_status":"unpaid"}}}`,
			wantCompleted: &CompletedCheckout{SessionID: "cs_2", Email: "b@example.com", Paid: false},
		},
		{
			name:    "other event",
			payload: `{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sp := signed(t, tc.payload)

			event, err := provider.ParseWebhook(sp.Payload, sp.Header)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCompleted, event.Completed)
		})
	}
}

func TestParseWebhook_BadSignature(t *testing.T) {
	provider := NewStripeProvider("sk_test_unused", testSecret)
	sp := signed(t, `{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{}}}`)

	_, err := provider.ParseWebhook(sp.Payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	tampered := append([]byte{}, sp.Payload...)
	tampered[len(tampered)-2] = ' '
	_, err = provider.ParseWebhook(tampered, sp.Header)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
