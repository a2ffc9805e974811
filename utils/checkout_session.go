// File: utils/checkout_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const CheckoutSessionPrefix = "checkoutSession:"

// CheckoutSession records one payment attempt for a booking. A fresh
// session is written per attempt; retries never reuse an old one.
type CheckoutSession struct {
	AttemptID     string    `json:"attemptId"`
	BookingID     int64     `json:"bookingId"`
	OrderID       string    `json:"orderId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"` // e.g., "pending", "confirmed", "failed"
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveCheckoutSession saves the checkout session in Redis with a TTL of 30 minutes.
func SaveCheckoutSession(client *redis.Client, session CheckoutSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, CheckoutSessionPrefix+session.AttemptID, data, 30*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to save checkout session: %w", err)
	}
	return nil
}

// GetCheckoutSession retrieves a checkout session from Redis.
func GetCheckoutSession(client *redis.Client, attemptID string) (*CheckoutSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, CheckoutSessionPrefix+attemptID).Result()
	if err != nil {
		return nil, fmt.Errorf("checkout session not found or expired: %w", err)
	}
	var session CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}
	return &session, nil
}

// DeleteCheckoutSession removes a checkout session from Redis.
func DeleteCheckoutSession(client *redis.Client, attemptID string) error {
	ctx := context.Background()
	return client.Del(ctx, CheckoutSessionPrefix+attemptID).Err()
}
