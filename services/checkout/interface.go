package checkout

import (
	"context"
	"time"

	"courtside/api"
	"courtside/models"
	"courtside/services/gateway"

	"github.com/go-redis/redis/v8"
)

// BookingAPI is the slice of the backend client the checkout core uses.
type BookingAPI interface {
	CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*models.BookingIntent, error)
	CreatePaymentOrder(ctx context.Context, bookingID int64) (*models.PaymentOrder, error)
	GetBookingStatus(ctx context.Context, bookingID int64) (*models.BookingStatusPayload, error)
}

// CheckoutService drives a slot selection through booking creation,
// gateway launch, and authoritative confirmation.
type CheckoutService interface {
	Submit(ctx context.Context, sel *SlotSelection, allowSplit bool) (*PreCommitOutcome, error)
	BeginPayment(ctx context.Context, intent *models.BookingIntent) (*Attempt, error)
	AwaitConfirmation(ctx context.Context, att *Attempt) models.ConfirmationView
	Abandon(att *Attempt)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	API           BookingAPI
	Gateway       gateway.CheckoutGateway
	SessionCache  *redis.Client // optional attempt-session store
	PaymentMethod string
	PollInterval  time.Duration
}
