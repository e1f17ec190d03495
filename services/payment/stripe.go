package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"lensbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// Currencies Stripe charges in whole units.
var zeroDecimal = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// MinorUnits converts a major-unit amount to the integer Stripe expects.
func MinorUnits(amount float64, currency string) int64 {
	if zeroDecimal[strings.ToLower(currency)] {
		return int64(math.Round(amount))
	}
	return int64(math.Round(amount * 100))
}

// StripeGateway opens and voids Stripe PaymentIntents for bookings.
type StripeGateway struct {
	intents *paymentintent.Client
	logger  *zap.Logger
}

// NewStripeGateway builds a gateway for key. A nil backend uses the live Stripe API.
func NewStripeGateway(key string, backend stripe.Backend, logger *zap.Logger) *StripeGateway {
	if backend == nil {
		backend = stripe.GetBackend(stripe.APIBackend)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StripeGateway{
		intents: &paymentintent.Client{B: backend, Key: key},
		logger:  logger,
	}
}

// CreatePaymentIntent opens an intent for req.Amount. The booking ID is the
// idempotency key so a retried confirmation never charges twice.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req models.PaymentRequest) (*models.PaymentIntent, error) {
	amount := MinorUnits(req.Amount, req.Currency)
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(strings.ToLower(req.Currency)),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey("booking-" + req.BookingID)
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("clientId", req.ClientID)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		g.logger.Error("stripe payment intent failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		return nil, fmt.Errorf("stripe: create payment intent: %w", err)
	}

	g.logger.Info("payment intent created",
		zap.String("bookingId", req.BookingID),
		zap.String("paymentIntentId", pi.ID),
		zap.Int64("amount", pi.Amount))

	return &models.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// CancelPaymentIntent voids an unpaid intent.
func (g *StripeGateway) CancelPaymentIntent(ctx context.Context, paymentIntentID string) error {
	params := &stripe.PaymentIntentCancelParams{}
	params.Context = ctx
	if _, err := g.intents.Cancel(paymentIntentID, params); err != nil {
		return fmt.Errorf("stripe: cancel payment intent %s: %w", paymentIntentID, err)
	}
	return nil
}
