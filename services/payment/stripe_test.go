package payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"lensbook/models"

	"github.com/stripe/stripe-go/v76"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     int64
	}{
		{6125, "inr", 612500},
		{1007.5, "INR", 100750},
		{19.99, "usd", 1999},
		{0.29, "usd", 29},
		{4500, "jpy", 4500},
		{4500.6, "jpy", 4501},
	}
	for _, tt := range tests {
		if got := MinorUnits(tt.amount, tt.currency); got != tt.want {
			t.Errorf("MinorUnits(%v, %q) = %d, want %d", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func newTestGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	return NewStripeGateway("sk_test_123", backend, nil)
}

func TestCreatePaymentIntent(t *testing.T) {
	var form map[string]string
	var idempotency, path string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		idempotency = r.Header.Get("Idempotency-Key")
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm: %v", err)
		}
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret_abc","amount":612500,"currency":"inr","status":"requires_payment_method"}`))
	})

	intent, err := g.CreatePaymentIntent(context.Background(), models.PaymentRequest{
		BookingID:   "b-1",
		ClientID:    "client-1",
		Amount:      6125,
		Currency:    "INR",
		Description: "Wedding shoot",
		Metadata:    map[string]string{"serviceId": "svc-1"},
	})
	if err != nil {
		t.Fatalf("CreatePaymentIntent returned error: %v", err)
	}

	if path != "/v1/payment_intents" {
		t.Errorf("path = %q, want /v1/payment_intents", path)
	}
	if idempotency != "booking-b-1" {
		t.Errorf("Idempotency-Key = %q, want booking-b-1", idempotency)
	}
	want := map[string]string{
		"amount":                             "612500",
		"currency":                           "inr",
		"automatic_payment_methods[enabled]": "true",
		"metadata[bookingId]":                "b-1",
		"metadata[serviceId]":                "svc-1",
	}
	for k, v := range want {
		if form[k] != v {
			t.Errorf("form[%q] = %q, want %q", k, form[k], v)
		}
	}

	if intent.ID != "pi_123" || intent.ClientSecret != "pi_123_secret_abc" || intent.Amount != 612500 {
		t.Fatalf("intent = %+v", intent)
	}
}

func TestCreatePaymentIntent_Errors(t *testing.T) {
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	if _, err := g.CreatePaymentIntent(context.Background(), models.PaymentRequest{BookingID: "b-1", Amount: 0.1, Currency: "usd"}); err == nil {
		t.Fatalf("expected stripe error to surface")
	}
	if _, err := g.CreatePaymentIntent(context.Background(), models.PaymentRequest{BookingID: "b-1", Amount: 0, Currency: "usd"}); err != ErrInvalidAmount {
		t.Fatalf("zero amount: err = %v, want ErrInvalidAmount", err)
	}
}

func TestCancelPaymentIntent(t *testing.T) {
	var path string
	g := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"pi_123","object":"payment_intent","status":"canceled"}`))
	})

	if err := g.CancelPaymentIntent(context.Background(), "pi_123"); err != nil {
		t.Fatalf("CancelPaymentIntent returned error: %v", err)
	}
	if path != "/v1/payment_intents/pi_123/cancel" {
		t.Fatalf("path = %q", path)
	}
}
