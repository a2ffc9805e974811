package models

// PaymentOrder pairs a booking intent with a gateway session. Created
// once per booking intent immediately before the gateway is opened and
// never reused: a retry after failure requests a fresh order.
type PaymentOrder struct {
	OrderID  string  `json:"orderId"`
	KeyID    string  `json:"keyId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// GatewayResult is the verdict reported by the payment gateway SDK.
// It is recorded for UI sequencing only and never drives booking state;
// the authoritative outcome comes from the status poll.
type GatewayResult string

const (
	GatewayCompleted GatewayResult = "completed"
	GatewayCancelled GatewayResult = "cancelled"
	GatewayFailed    GatewayResult = "failed"
)
