package checkout

import (
	"context"
	"fmt"
	"time"

	"courtside/models"
	"courtside/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Attempt is one payment attempt for one booking intent. Every attempt
// gets a fresh poller and launcher; nothing is inherited from a prior
// attempt, so stale timers or latches cannot leak across retries.
type Attempt struct {
	ID        string
	BookingID int64
	Order     models.PaymentOrder
	Poller    *StatusPoller

	launcher *PaymentLauncher
}

// BeginPayment requests a fresh payment order for the intent, records
// the attempt, and launches the gateway in the background. The status
// poller starts on the launcher's hand-off, whatever the gateway said.
func (s *DefaultCheckoutService) BeginPayment(ctx context.Context, intent *models.BookingIntent) (*Attempt, error) {
	logger := utils.GetLogger()

	order, err := s.API.CreatePaymentOrder(ctx, intent.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment order: %w", err)
	}

	att := &Attempt{
		ID:        uuid.New().String(),
		BookingID: intent.ID,
		Order:     *order,
		Poller:    NewStatusPoller(intent.ID, s.API, s.PollInterval),
	}
	att.launcher = NewPaymentLauncher(s.Gateway, func(bookingID int64) {
		att.Poller.Start()
	})

	if s.SessionCache != nil {
		session := utils.CheckoutSession{
			AttemptID: att.ID,
			BookingID: intent.ID,
			OrderID:   order.OrderID,
			Amount:    order.Amount,
			Currency:  order.Currency,
			Status:    "pending",
			CreatedAt: time.Now(),
		}
		if err := utils.SaveCheckoutSession(s.SessionCache, session); err != nil {
			logger.Warn("failed to record checkout session", zap.Error(err))
		}
	}

	logger.Info("launching payment gateway",
		zap.Int64("bookingId", intent.ID),
		zap.String("attemptId", att.ID),
		zap.String("orderId", order.OrderID))

	go att.launcher.Launch(ctx, intent.ID, *order)

	return att, nil
}

// AwaitConfirmation blocks until the attempt's poller reaches a terminal
// state or ctx ends, then returns the presented outcome. A ctx cutoff
// leaves the booking pending; it is never reported as failed.
func (s *DefaultCheckoutService) AwaitConfirmation(ctx context.Context, att *Attempt) models.ConfirmationView {
	select {
	case <-att.Poller.Done():
		state, payload := att.Poller.Snapshot()
		s.recordOutcome(att, state)
		return PresentConfirmation(state, payload)
	case <-ctx.Done():
		att.Poller.Stop()
		state, payload := att.Poller.Snapshot()
		return PresentConfirmation(state, payload)
	}
}

// Abandon tears down an attempt's poller. Safe to call repeatedly and
// after a terminal state.
func (s *DefaultCheckoutService) Abandon(att *Attempt) {
	att.Poller.Stop()
}

func (s *DefaultCheckoutService) recordOutcome(att *Attempt, state PollState) {
	if s.SessionCache == nil {
		return
	}
	session, err := utils.GetCheckoutSession(s.SessionCache, att.ID)
	if err != nil {
		return
	}
	session.Status = string(state)
	if err := utils.SaveCheckoutSession(s.SessionCache, *session); err != nil {
		utils.GetLogger().Warn("failed to update checkout session", zap.Error(err))
	}
}
