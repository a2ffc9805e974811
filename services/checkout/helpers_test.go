package checkout

import (
	"context"
	"sync"

	"courtside/api"
	"courtside/models"
)

// statusStep scripts one response of the booking status endpoint.
type statusStep struct {
	payload *models.BookingStatusPayload
	err     error
}

// fakeAPI is a scripted BookingAPI. Status steps are consumed in order;
// the last step repeats once the script is exhausted.
type fakeAPI struct {
	mu sync.Mutex

	createResponses []*models.BookingIntent
	createErr       error
	createReqs      []api.CreateBookingRequest

	orderResponse *models.PaymentOrder
	orderErr      error
	orderCalls    int

	statusScript []statusStep
	statusCalls  int

	// statusGate, when non-nil, blocks every status call until it is
	// closed. Used to hold a request in flight.
	statusGate chan struct{}
}

func (f *fakeAPI) CreateBooking(ctx context.Context, req api.CreateBookingRequest) (*models.BookingIntent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createReqs = append(f.createReqs, req)
	if f.createErr != nil {
		return nil, f.createErr
	}
	intent := f.createResponses[0]
	if len(f.createResponses) > 1 {
		f.createResponses = f.createResponses[1:]
	}
	return intent, nil
}

func (f *fakeAPI) CreatePaymentOrder(ctx context.Context, bookingID int64) (*models.PaymentOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orderCalls++
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	order := *f.orderResponse
	return &order, nil
}

func (f *fakeAPI) GetBookingStatus(ctx context.Context, bookingID int64) (*models.BookingStatusPayload, error) {
	f.mu.Lock()
	gate := f.statusGate
	step := f.statusScript[0]
	if len(f.statusScript) > 1 {
		f.statusScript = f.statusScript[1:]
	}
	f.statusCalls++
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return step.payload, step.err
}

func (f *fakeAPI) statusCallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls
}

// fakeGateway reports a scripted verdict or error.
type fakeGateway struct {
	mu      sync.Mutex
	verdict models.GatewayResult
	err     error
	calls   int
}

func (g *fakeGateway) Name() string { return "fake" }

func (g *fakeGateway) OpenCheckout(ctx context.Context, order models.PaymentOrder) (models.GatewayResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls++
	return g.verdict, g.err
}

func pending() *models.BookingStatusPayload {
	return &models.BookingStatusPayload{BookingStatus: models.BookingPending}
}

func confirmed(bookingID int64) *models.BookingStatusPayload {
	return &models.BookingStatusPayload{
		BookingID:     bookingID,
		BookingStatus: models.BookingConfirmed,
		IsCompleted:   true,
	}
}
