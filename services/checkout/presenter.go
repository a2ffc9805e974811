package checkout

import (
	"strconv"

	"courtside/models"
)

// PresentConfirmation maps a poll state and its captured terminal
// payload to the confirmation view. Pure mapping; every non-pending
// outcome carries at least one next action so there is no dead end.
func PresentConfirmation(state PollState, payload *models.BookingStatusPayload) models.ConfirmationView {
	switch state {
	case PollStateConfirmed:
		view := models.ConfirmationView{
			Outcome: models.OutcomeConfirmed,
			Actions: []models.ConfirmationAction{models.ActionDone},
		}
		if payload != nil {
			view.BookingRef = strconv.FormatInt(payload.BookingID, 10)
			view.Message = payload.Message
		}
		return view
	case PollStateFailed:
		view := models.ConfirmationView{
			Outcome: models.OutcomeFailed,
			Actions: []models.ConfirmationAction{models.ActionRetry, models.ActionHome},
		}
		if payload != nil {
			view.Message = payload.Message
		}
		return view
	default:
		return models.ConfirmationView{Outcome: models.OutcomePending}
	}
}
