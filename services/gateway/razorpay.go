package gateway

import (
	"context"
	"fmt"

	"courtside/models"
	"courtside/utils"

	razorpay "github.com/razorpay/razorpay-go"
	"go.uber.org/zap"
)

// RazorpayGateway resolves a checkout via the Razorpay Orders API.
type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (g *RazorpayGateway) Name() string {
	return "razorpay"
}

// OpenCheckout validates the server-issued order and checks whether a
// payment was captured against it. An uncaptured order maps to a
// cancelled verdict, not an error.
func (g *RazorpayGateway) OpenCheckout(ctx context.Context, order models.PaymentOrder) (models.GatewayResult, error) {
	logger := utils.GetLogger()

	if _, err := g.client.Order.Fetch(order.OrderID, nil, nil); err != nil {
		return models.GatewayFailed, fmt.Errorf("razorpay order %s not found: %w", order.OrderID, err)
	}

	payments, err := g.client.Order.Payments(order.OrderID, nil, nil)
	if err != nil {
		return models.GatewayFailed, fmt.Errorf("razorpay payments lookup for order %s: %w", order.OrderID, err)
	}

	items, _ := payments["items"].([]interface{})
	for _, raw := range items {
		payment, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		status, _ := payment["status"].(string)
		switch status {
		case "captured", "authorized":
			logger.Info("razorpay reported payment",
				zap.String("orderId", order.OrderID),
				zap.String("status", status))
			return models.GatewayCompleted, nil
		case "failed":
			return models.GatewayFailed, nil
		}
	}

	logger.Info("razorpay checkout resolved without a captured payment",
		zap.String("orderId", order.OrderID))
	return models.GatewayCancelled, nil
}
