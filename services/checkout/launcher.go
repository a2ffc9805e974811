package checkout

import (
	"context"
	"sync/atomic"

	"courtside/models"
	"courtside/services/gateway"
	"courtside/utils"

	"go.uber.org/zap"
)

// Handoff passes control to the confirmation flow for a booking.
type Handoff func(bookingID int64)

// PaymentLauncher opens the external gateway exactly once per instance
// and hands off to the confirmation flow whatever the gateway says.
//
// The gateway verdict is logged but never branched on: the client-side
// callback can race the backend webhook in either direction, so booking
// state is decided only by the authoritative status poll.
type PaymentLauncher struct {
	gateway gateway.CheckoutGateway
	handoff Handoff
	logger  *zap.Logger
	fired   atomic.Bool
}

func NewPaymentLauncher(gw gateway.CheckoutGateway, handoff Handoff) *PaymentLauncher {
	return &PaymentLauncher{
		gateway: gw,
		handoff: handoff,
		logger:  utils.GetLogger(),
	}
}

// Launch opens the checkout once. A second call on the same instance is
// a no-op, including while the first is still outstanding.
func (l *PaymentLauncher) Launch(ctx context.Context, bookingID int64, order models.PaymentOrder) {
	if !l.fired.CompareAndSwap(false, true) {
		return
	}

	result, err := l.gateway.OpenCheckout(ctx, order)
	if err != nil {
		l.logger.Warn("gateway checkout errored, deferring to status poll",
			zap.Int64("bookingId", bookingID),
			zap.String("gateway", l.gateway.Name()),
			zap.Error(err))
	} else {
		l.logger.Info("gateway checkout resolved",
			zap.Int64("bookingId", bookingID),
			zap.String("gateway", l.gateway.Name()),
			zap.String("verdict", string(result)))
	}

	l.handoff(bookingID)
}
