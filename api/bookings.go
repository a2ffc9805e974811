package api

import (
	"context"
	"fmt"
	"net/http"

	"courtside/models"
)

// CreateBookingRequest is the body of the booking-creation call.
type CreateBookingRequest struct {
	SlotKeys       []string `json:"slotKeys"`
	IdempotencyKey string   `json:"idempotencyKey"`
	AllowSplit     bool     `json:"allowSplit"`
	PaymentMethod  string   `json:"paymentMethod"`
}

// CreateBooking submits a slot selection and returns the booking intent.
// Semantic outcomes (PARTIAL_AVAILABLE, FAILED) come back as a normal
// intent whose Status carries the branch; only transport/HTTP failures
// return an error.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.BookingIntent, error) {
	var intent models.BookingIntent
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// CreatePaymentOrder requests a fresh gateway order for a booking.
// Orders are single-use; callers must request a new one per attempt.
func (c *Client) CreatePaymentOrder(ctx context.Context, bookingID int64) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	path := fmt.Sprintf("/bookings/%d/payment-order", bookingID)
	if err := c.do(ctx, http.MethodPost, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetBookingStatus fetches the authoritative booking status.
func (c *Client) GetBookingStatus(ctx context.Context, bookingID int64) (*models.BookingStatusPayload, error) {
	var payload models.BookingStatusPayload
	path := fmt.Sprintf("/bookings/%d/status", bookingID)
	if err := c.do(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// RefundPreview fetches the refund breakdown a cancellation would yield.
func (c *Client) RefundPreview(ctx context.Context, bookingID int64) (*models.RefundPreview, error) {
	var preview models.RefundPreview
	path := fmt.Sprintf("/bookings/%d/refund-preview", bookingID)
	if err := c.do(ctx, http.MethodGet, path, nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// CancelBooking cancels a booking and returns the refund result.
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) (*models.CancellationResult, error) {
	var result models.CancellationResult
	path := fmt.Sprintf("/bookings/%d/cancel", bookingID)
	if err := c.do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
