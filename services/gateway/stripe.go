package gateway

import (
	"context"
	"fmt"

	"courtside/models"
	"courtside/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway resolves a checkout via a Stripe PaymentIntent. The
// server-issued order id is the PaymentIntent id.
type StripeGateway struct{}

func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

func (g *StripeGateway) Name() string {
	return "stripe"
}

func (g *StripeGateway) OpenCheckout(ctx context.Context, order models.PaymentOrder) (models.GatewayResult, error) {
	intent, err := paymentintent.Get(order.OrderID, nil)
	if err != nil {
		return models.GatewayFailed, fmt.Errorf("stripe payment intent %s: %w", order.OrderID, err)
	}

	utils.GetLogger().Info("stripe payment intent resolved",
		zap.String("orderId", order.OrderID),
		zap.String("status", string(intent.Status)))

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return models.GatewayCompleted, nil
	case stripe.PaymentIntentStatusCanceled:
		return models.GatewayCancelled, nil
	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		return models.GatewayFailed, nil
	default:
		return models.GatewayCancelled, nil
	}
}
