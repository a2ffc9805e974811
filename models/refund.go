package models

import "time"

// RefundPreview is the server-computed refund breakdown shown before a
// cancellation is committed. All amounts are computed server-side.
type RefundPreview struct {
	BookingID       int64   `json:"bookingId"`
	PaidAmount      float64 `json:"paidAmount"`
	CancellationFee float64 `json:"cancellationFee"`
	RefundAmount    float64 `json:"refundAmount"`
	Currency        string  `json:"currency"`
	Message         string  `json:"message,omitempty"`
}

// CancellationResult is returned after a cancellation is committed.
type CancellationResult struct {
	BookingID    int64     `json:"bookingId"`
	Status       string    `json:"status"`
	RefundAmount float64   `json:"refundAmount"`
	Currency     string    `json:"currency"`
	CancelledAt  time.Time `json:"cancelledAt"`
}
