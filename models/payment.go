package models

// PaymentRequest asks the payment gateway to collect a booking total.
type PaymentRequest struct {
	BookingID   string
	ClientID    string
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// PaymentIntent is the gateway's handle for a pending charge.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"` // minor units
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}
