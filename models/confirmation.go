package models

// ConfirmationOutcome is what the confirmation screen shows.
type ConfirmationOutcome string

const (
	OutcomePending   ConfirmationOutcome = "pending"
	OutcomeConfirmed ConfirmationOutcome = "confirmed"
	OutcomeFailed    ConfirmationOutcome = "failed"
)

// ConfirmationAction is a user escape hatch offered alongside an outcome.
type ConfirmationAction string

const (
	// ActionDone returns the user to the home context. It is never a
	// history pop, so the payment flow cannot be re-entered.
	ActionDone ConfirmationAction = "done"
	// ActionRetry re-enters the booking flow's pre-commit step with a
	// freshly generated idempotency key.
	ActionRetry ConfirmationAction = "retry"
	// ActionHome abandons the attempt and returns home.
	ActionHome ConfirmationAction = "home"
)

// ConfirmationView is the presented shape of one poll state. Pure data;
// the presenter that builds it holds no state and performs no I/O.
type ConfirmationView struct {
	Outcome    ConfirmationOutcome  `json:"outcome"`
	BookingRef string               `json:"bookingRef,omitempty"`
	Message    string               `json:"message,omitempty"`
	Actions    []ConfirmationAction `json:"actions"`
}
