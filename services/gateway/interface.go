package gateway

import (
	"context"

	"courtside/models"
)

// CheckoutGateway opens the external payment flow for one order and
// reports the gateway's own verdict once the flow resolves.
//
// The verdict is advisory. Gateway callbacks race the backend's webhook,
// so callers must treat it as a UI-sequencing hint only and wait for the
// authoritative booking status poll before deciding anything.
type CheckoutGateway interface {
	Name() string
	OpenCheckout(ctx context.Context, order models.PaymentOrder) (models.GatewayResult, error)
}
