package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// CashfreeGateway resolves a checkout via the Cashfree PG orders API.
// Cashfree ships no Go SDK, so this talks to the REST API directly.
type CashfreeGateway struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	HTTP         *http.Client
}

func NewCashfreeGateway(baseURL, clientID, clientSecret string) *CashfreeGateway {
	return &CashfreeGateway{
		BaseURL:      baseURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTP: &http.Client{
			Timeout: 25 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (g *CashfreeGateway) Name() string {
	return "cashfree"
}

// OpenCheckout fetches the Cashfree order and maps its order_status to a
// gateway verdict.
func (g *CashfreeGateway) OpenCheckout(ctx context.Context, order models.PaymentOrder) (models.GatewayResult, error) {
	url := fmt.Sprintf("%s/orders/%s", g.BaseURL, order.OrderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.GatewayFailed, fmt.Errorf("build cashfree request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-version", "2023-08-01")
	req.Header.Set("x-client-id", g.ClientID)
	req.Header.Set("x-client-secret", g.ClientSecret)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return models.GatewayFailed, fmt.Errorf("cashfree order fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.GatewayFailed, fmt.Errorf("cashfree order fetch returned %d", resp.StatusCode)
	}

	var payload struct {
		OrderID     string `json:"order_id"`
		OrderStatus string `json:"order_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.GatewayFailed, fmt.Errorf("decode cashfree order: %w", err)
	}

	utils.GetLogger().Info("cashfree order resolved",
		zap.String("orderId", payload.OrderID),
		zap.String("orderStatus", payload.OrderStatus))

	switch payload.OrderStatus {
	case "PAID":
		return models.GatewayCompleted, nil
	case "EXPIRED", "TERMINATED":
		return models.GatewayFailed, nil
	default: // ACTIVE and anything unrecognized: the shopper walked away.
		return models.GatewayCancelled, nil
	}
}
