package models

// BookingStatus is the server-owned lifecycle state of a booking intent.
// The client never sets it; only server responses carry it.
type BookingStatus string

const (
	BookingCreated          BookingStatus = "CREATED"
	BookingPartialAvailable BookingStatus = "PARTIAL_AVAILABLE"
	BookingPaymentPending   BookingStatus = "PAYMENT_PENDING"
	BookingPending          BookingStatus = "PENDING"
	BookingConfirmed        BookingStatus = "CONFIRMED"
	BookingFailed           BookingStatus = "FAILED"
	BookingCancelled        BookingStatus = "CANCELLED"
)

// Terminal reports whether the status ends the confirmation wait.
func (s BookingStatus) Terminal() bool {
	return s == BookingConfirmed || s == BookingFailed || s == BookingCancelled
}

// AmountBreakdown is the server-computed pricing for a booking intent.
type AmountBreakdown struct {
	SlotSubtotal float64 `json:"slotSubtotal"`
	PlatformFee  float64 `json:"platformFee"`
	TotalAmount  float64 `json:"totalAmount"`
	Currency     string  `json:"currency"`
}

// BookingIntent is the server's tentative reservation record. Read-only
// on the client after creation: only poll responses move it forward.
type BookingIntent struct {
	ID             int64           `json:"id"`
	Status         BookingStatus   `json:"status"`
	SlotKeys       []string        `json:"slotKeys"`
	IdempotencyKey string          `json:"idempotencyKey"`
	Amount         AmountBreakdown `json:"amountBreakdown"`
	ResourceName   string          `json:"resourceName,omitempty"`
	Message        string          `json:"message,omitempty"`
}

// BookingStatusPayload is the response of the booking status endpoint.
type BookingStatusPayload struct {
	BookingID     int64         `json:"bookingId"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	IsCompleted   bool          `json:"isCompleted"`
	ResourceName  string        `json:"resourceName,omitempty"`
	Message       string        `json:"message,omitempty"`
}
