package checkout

import (
	"context"
	"sync"
	"time"

	"courtside/models"
	"courtside/utils"

	"go.uber.org/zap"
)

// PollState is the client-side confirmation state machine. It starts at
// polling and moves to exactly one of confirmed or failed; terminal
// states absorb all later ticks and responses.
type PollState string

const (
	PollStatePolling   PollState = "polling"
	PollStateConfirmed PollState = "confirmed"
	PollStateFailed    PollState = "failed"
)

// StatusSource fetches the authoritative booking status. Satisfied by
// *api.Client; narrowed so the poller can be swapped onto a push or
// streaming source later without touching its consumers.
type StatusSource interface {
	GetBookingStatus(ctx context.Context, bookingID int64) (*models.BookingStatusPayload, error)
}

// StatusPoller polls one booking's status at a fixed interval until a
// terminal state is observed or Stop is called.
//
// There is deliberately no retry cap and no overall timeout: the backend
// webhook is treated as eventually consistent, and an indefinite pending
// state is an accepted outcome. Callers bound the wait with a context if
// they need a policy on top.
type StatusPoller struct {
	bookingID int64
	source    StatusSource
	interval  time.Duration
	logger    *zap.Logger

	mu       sync.Mutex
	state    PollState
	payload  *models.BookingStatusPayload
	inFlight bool
	started  bool
	stopped  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewStatusPoller(bookingID int64, source StatusSource, interval time.Duration) *StatusPoller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &StatusPoller{
		bookingID: bookingID,
		source:    source,
		interval:  interval,
		logger:    utils.GetLogger(),
		state:     PollStatePolling,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start issues an immediate status check, then one per interval.
// Starting twice, or after Stop, is a no-op.
func (p *StatusPoller) Start() {
	p.mu.Lock()
	if p.started || p.stopped {
		p.mu.Unlock()
		return
	}
	p.started = true
	p.mu.Unlock()

	go p.loop()
}

// Stop tears the poller down. Idempotent; the timer is cleared
// synchronously and no state mutation can happen afterward. An in-flight
// request is not aborted; its response is discarded.
func (p *StatusPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// Done is closed when the poller reaches a terminal state. It is never
// closed by Stop alone.
func (p *StatusPoller) Done() <-chan struct{} {
	return p.doneCh
}

// Snapshot returns the current state and, once terminal, the response
// payload that ended the poll.
func (p *StatusPoller) Snapshot() (PollState, *models.BookingStatusPayload) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state, p.payload
}

func (p *StatusPoller) loop() {
	p.tick()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.tick()
		}
	}
}

// tick issues one status check. A tick that fires while a check is still
// awaiting its response is skipped outright, never queued, so the
// backend sees at most one in-flight request per poller.
func (p *StatusPoller) tick() {
	p.mu.Lock()
	if p.stopped || p.state != PollStatePolling || p.inFlight {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	go func() {
		payload, err := p.source.GetBookingStatus(context.Background(), p.bookingID)
		p.handleResult(payload, err)
	}()
}

func (p *StatusPoller) handleResult(payload *models.BookingStatusPayload, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false

	// Torn down or already terminal: the response is stale, drop it.
	if p.stopped || p.state != PollStatePolling {
		return
	}

	if err != nil {
		// Transient by definition here; the next tick retries silently.
		p.logger.Debug("booking status check failed, retrying on next tick",
			zap.Int64("bookingId", p.bookingID),
			zap.Error(err))
		return
	}

	switch {
	case payload.BookingStatus == models.BookingConfirmed || payload.IsCompleted:
		p.state = PollStateConfirmed
		p.payload = payload
		p.finishLocked()
	case payload.BookingStatus == models.BookingFailed || payload.BookingStatus == models.BookingCancelled:
		p.state = PollStateFailed
		p.payload = payload
		p.finishLocked()
	default:
		// Still pending; keep polling.
	}
}

func (p *StatusPoller) finishLocked() {
	p.logger.Info("booking reached terminal state",
		zap.Int64("bookingId", p.bookingID),
		zap.String("state", string(p.state)))
	p.stopLocked()
	close(p.doneCh)
}

func (p *StatusPoller) stopLocked() {
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.stopCh)
}
