package checkout

import (
	"context"
	"fmt"

	"courtside/api"
	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// PreCommitOutcomeKind tags the semantic result of a booking-creation call.
type PreCommitOutcomeKind string

const (
	// OutcomeReady means the intent exists and payment can begin.
	OutcomeReady PreCommitOutcomeKind = "ready"
	// OutcomeSplitRequired means one resource cannot cover the whole
	// range; the user may resubmit with allowSplit=true (same slot keys,
	// same idempotency key) or abandon.
	OutcomeSplitRequired PreCommitOutcomeKind = "splitRequired"
	// OutcomeUnavailable means the slots were taken between selection
	// and submission. The idempotency key has been discarded; a new
	// attempt needs a refreshed slot view.
	OutcomeUnavailable PreCommitOutcomeKind = "unavailable"
)

// PreCommitOutcome is the parsed result of submitting a selection.
type PreCommitOutcome struct {
	Kind    PreCommitOutcomeKind
	Intent  *models.BookingIntent
	Message string
}

// Submit converts the selection into a booking intent. Semantic
// branches (PARTIAL_AVAILABLE, FAILED) come back as outcomes; a
// transport failure on the call itself comes back as an error and is
// left to the caller's manual refresh-and-retry, never auto-retried.
func (s *DefaultCheckoutService) Submit(ctx context.Context, sel *SlotSelection, allowSplit bool) (*PreCommitOutcome, error) {
	logger := utils.GetLogger()

	slotKeys := sel.SlotKeys()
	if len(slotKeys) == 0 {
		return nil, NewFlowError("emptySelection", "no slots selected")
	}

	req := api.CreateBookingRequest{
		SlotKeys:       slotKeys,
		IdempotencyKey: sel.IdempotencyKey(),
		AllowSplit:     allowSplit,
		PaymentMethod:  s.PaymentMethod,
	}

	intent, err := s.API.CreateBooking(ctx, req)
	if err != nil {
		logger.Warn("booking creation failed",
			zap.Strings("slotKeys", slotKeys),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	switch intent.Status {
	case models.BookingPartialAvailable:
		logger.Info("booking requires split across resources",
			zap.Strings("slotKeys", slotKeys),
			zap.String("message", intent.Message))
		return &PreCommitOutcome{
			Kind:    OutcomeSplitRequired,
			Intent:  intent,
			Message: intent.Message,
		}, nil
	case models.BookingFailed:
		// Slots were lost to someone else. The key is dead with them.
		sel.Invalidate()
		logger.Info("selected slots no longer available",
			zap.Strings("slotKeys", slotKeys),
			zap.String("message", intent.Message))
		return &PreCommitOutcome{
			Kind:    OutcomeUnavailable,
			Intent:  intent,
			Message: intent.Message,
		}, nil
	default:
		logger.Info("booking intent created",
			zap.Int64("bookingId", intent.ID),
			zap.String("status", string(intent.Status)))
		return &PreCommitOutcome{
			Kind:   OutcomeReady,
			Intent: intent,
		}, nil
	}
}
