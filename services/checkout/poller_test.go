package checkout

import (
	"errors"
	"testing"
	"time"

	"courtside/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 10 * time.Millisecond

func waitDone(t *testing.T, p *StatusPoller) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not reach a terminal state in time")
	}
}

func TestStatusPoller_SingleInFlightRequest(t *testing.T) {
	gate := make(chan struct{})
	f := &fakeAPI{
		statusScript: []statusStep{{payload: pending()}},
		statusGate:   gate,
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Start()
	defer p.Stop()

	// Several intervals pass while the first request is still blocked;
	// every one of those ticks must be skipped, not queued.
	time.Sleep(6 * testInterval)
	assert.Equal(t, 1, f.statusCallCount())

	close(gate)
}

func TestStatusPoller_ConfirmedIsTerminal(t *testing.T) {
	f := &fakeAPI{
		statusScript: []statusStep{{payload: confirmed(42)}},
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Start()
	waitDone(t, p)

	state, payload := p.Snapshot()
	assert.Equal(t, PollStateConfirmed, state)
	require.NotNil(t, payload)
	assert.Equal(t, int64(42), payload.BookingID)

	// No further requests once terminal, even across several intervals.
	calls := f.statusCallCount()
	time.Sleep(5 * testInterval)
	assert.Equal(t, calls, f.statusCallCount())
}

func TestStatusPoller_FailedAndCancelledAreTerminal(t *testing.T) {
	for _, status := range []models.BookingStatus{models.BookingFailed, models.BookingCancelled} {
		f := &fakeAPI{
			statusScript: []statusStep{
				{payload: &models.BookingStatusPayload{BookingID: 7, BookingStatus: status}},
			},
		}

		p := NewStatusPoller(7, f, testInterval)
		p.Start()
		waitDone(t, p)

		state, payload := p.Snapshot()
		assert.Equal(t, PollStateFailed, state, "status %s", status)
		require.NotNil(t, payload)
		assert.Equal(t, status, payload.BookingStatus)
	}
}

func TestStatusPoller_SelfHealsAcrossTransientErrors(t *testing.T) {
	netErr := errors.New("connection reset")
	f := &fakeAPI{
		statusScript: []statusStep{
			{err: netErr},
			{err: netErr},
			{err: netErr},
			{payload: confirmed(42)},
		},
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Start()
	waitDone(t, p)

	state, _ := p.Snapshot()
	assert.Equal(t, PollStateConfirmed, state)
	assert.GreaterOrEqual(t, f.statusCallCount(), 4)
}

func TestStatusPoller_UnknownStatusKeepsPolling(t *testing.T) {
	f := &fakeAPI{
		statusScript: []statusStep{
			{payload: pending()},
			{payload: &models.BookingStatusPayload{BookingStatus: models.BookingPaymentPending}},
			{payload: confirmed(42)},
		},
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Start()
	waitDone(t, p)

	state, _ := p.Snapshot()
	assert.Equal(t, PollStateConfirmed, state)
}

func TestStatusPoller_StopDiscardsInFlightResponse(t *testing.T) {
	gate := make(chan struct{})
	f := &fakeAPI{
		statusScript: []statusStep{{payload: confirmed(42)}},
		statusGate:   gate,
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Start()

	// Let the first request get in flight, then tear down.
	time.Sleep(2 * testInterval)
	p.Stop()
	p.Stop() // idempotent

	close(gate)
	time.Sleep(2 * testInterval)

	state, payload := p.Snapshot()
	assert.Equal(t, PollStatePolling, state)
	assert.Nil(t, payload)
	assert.Equal(t, 1, f.statusCallCount())
}

func TestStatusPoller_StartAfterStopIsNoop(t *testing.T) {
	f := &fakeAPI{
		statusScript: []statusStep{{payload: confirmed(42)}},
	}

	p := NewStatusPoller(42, f, testInterval)
	p.Stop()
	p.Start()

	time.Sleep(3 * testInterval)
	assert.Equal(t, 0, f.statusCallCount())
}
